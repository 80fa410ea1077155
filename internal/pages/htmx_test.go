package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func Test_mixedCase(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{name: "Empty string", s: "", want: ""},
		{name: "Single word", s: "content", want: "Content"},
		{name: "Hyphenated words", s: "site-nav", want: "SiteNav"},
		{name: "Mixed case with hyphens", s: "site-Nav", want: "SiteNav"},
		{name: "Trailing hyphen", s: "site-", want: "Site"},
		{name: "Spaces are rejected", s: "site nav", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mixedCase(tt.s)); diff != "" {
				t.Errorf("mixedCase() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHTMXPageConfig(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if name, _ := HTMXPageConfig(req); name != "Page" {
		t.Errorf("regular request: expected Page, got %q", name)
	}
	req.Header.Set("Hx-Target", "site-nav")
	if name, _ := HTMXPageConfig(req); name != "Page" {
		t.Errorf("HX-Target without HX-Request: expected Page, got %q", name)
	}
	req.Header.Set("Hx-Request", "true")
	if name, _ := HTMXPageConfig(req); name != "SiteNav" {
		t.Errorf("htmx request: expected SiteNav, got %q", name)
	}
}

type navigatePage struct{}

func (navigatePage) Page() component { return testComponent{} }

func TestURLFor(t *testing.T) {
	type topPage struct {
		nav navigatePage `route:"POST /ui/navigate/{target} Navigate"`
	}
	pc, err := parsePageTree("/", "", &topPage{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ctx := pcCtx.WithValue(context.Background(), pc)

	got, err := URLFor(ctx, navigatePage{}, "publications")
	if err != nil {
		t.Fatalf("URLFor failed: %v", err)
	}
	if got != "/ui/navigate/publications" {
		t.Errorf("unexpected url %q", got)
	}
	got, err = URLFor(ctx, &navigatePage{}, map[string]any{"target": "about"})
	if err != nil || got != "/ui/navigate/about" {
		t.Errorf("named args: got %q, %v", got, err)
	}
	if _, err := URLFor(ctx, navigatePage{}); err == nil {
		t.Error("expected error for missing argument")
	}
	if _, err := URLFor(ctx, time.Time{}); err == nil {
		t.Error("expected error for unknown page type")
	}
	if _, err := URLFor(context.Background(), navigatePage{}, "x"); err == nil {
		t.Error("expected error without parse context")
	}
	got, err = URLFor(ctx, func(n *PageNode) bool { return n.Title == "Navigate" }, "home")
	if err != nil || got != "/ui/navigate/home" {
		t.Errorf("predicate lookup: got %q, %v", got, err)
	}
}

func Test_parseSegments(t *testing.T) {
	if _, err := parseSegments("/a/{b"); err == nil {
		t.Error("expected unmatched brace error")
	}
	got, err := formatPath("/{$}")
	if err != nil || got != "/{$}" {
		t.Errorf("unexpected %q %v", got, err)
	}
	got, err = formatPath("/files/{path...}", "a/b")
	if err != nil || got != "/files/a/b" {
		t.Errorf("unexpected %q %v", got, err)
	}
}

func TestBuffered(t *testing.T) {
	rec := httptest.NewRecorder()
	bw := newBuffered(rec)
	bw.WriteHeader(http.StatusCreated)
	_, _ = bw.Write([]byte("test"))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("buffered writer leaked before close: %d %q", rec.Code, rec.Body.String())
	}
	if bw.Unwrap() != rec {
		t.Errorf("Unwrap should return the wrapped writer")
	}
	if err := bw.close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if rec.Code != http.StatusCreated || rec.Body.String() != "test" {
		t.Errorf("after close: got %d %q", rec.Code, rec.Body.String())
	}
}
