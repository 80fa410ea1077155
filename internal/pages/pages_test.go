//lint:file-ignore U1000 Ignore unused code in test file

package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
)

type testComponent struct {
	content string
}

func (t testComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte(t.content))
	return err
}

type failingComponent struct {
	partial string
}

func (c failingComponent) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, c.partial); err != nil {
		return err
	}
	return errors.New("component render failed")
}

type plainHandlerPage struct{}

func (plainHandlerPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("plain handler"))
}

func newTestRouter() *chiRouter {
	return NewChiRouter(chi.NewRouter())
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHttpHandler(t *testing.T) {
	type topPage struct {
		s plainHandlerPage  `route:"/struct Struct handler"`
		p *plainHandlerPage `route:"POST /pointer Pointer handler"`
	}
	r := newTestRouter()
	if err := New().MountPages(r, &topPage{}, "/", ""); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	rec := serve(t, r, httptest.NewRequest(http.MethodGet, "/struct", http.NoBody))
	if rec.Code != http.StatusOK || rec.Body.String() != "plain handler" {
		t.Errorf("GET /struct: got %d %q", rec.Code, rec.Body.String())
	}
	rec = serve(t, r, httptest.NewRequest(http.MethodPost, "/pointer", http.NoBody))
	if rec.Code != http.StatusOK || rec.Body.String() != "plain handler" {
		t.Errorf("POST /pointer: got %d %q", rec.Code, rec.Body.String())
	}
	rec = serve(t, r, httptest.NewRequest(http.MethodGet, "/pointer", http.NoBody))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /pointer: expected %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

type greeting string

type injectedHandlerPage struct{}

func (injectedHandlerPage) ServeHTTP(w http.ResponseWriter, r *http.Request, g greeting) error {
	fmt.Fprintf(w, "%s from handler", g)
	if r.URL.Query().Get("fail") == "true" {
		return errors.New("handler failed")
	}
	return nil
}

func TestInjectedServeHTTP(t *testing.T) {
	type topPage struct {
		injectedHandlerPage `route:"POST /act Act"`
	}
	var captured error
	sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		captured = err
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}))
	r := newTestRouter()
	if err := sp.MountPages(r, &topPage{}, "/", "top", greeting("hello")); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	rec := serve(t, r, httptest.NewRequest(http.MethodPost, "/act", http.NoBody))
	if diff := cmp.Diff("hello from handler", rec.Body.String()); diff != "" {
		t.Errorf("unexpected body (-want +got):\n%s", diff)
	}

	rec = serve(t, r, httptest.NewRequest(http.MethodPost, "/act?fail=true", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if strings.Contains(rec.Body.String(), "from handler") {
		t.Errorf("partial handler output leaked into error response: %q", rec.Body.String())
	}
	if captured == nil || captured.Error() != "handler failed" {
		t.Errorf("expected captured error %q, got %v", "handler failed", captured)
	}
}

type middlewarePages struct {
	child middlewareChildPage `route:"/child Child"`
}

type middlewareChildPage struct{}

func (middlewareChildPage) Page() component {
	return testComponent{content: "child page"}
}

func (middlewarePages) Middlewares() []MiddlewareFunc {
	return []MiddlewareFunc{
		func(next http.Handler, node *PageNode) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Test-Middleware", "foobar")
				next.ServeHTTP(w, r)
			})
		},
	}
}

func (middlewarePages) Page() component {
	return testComponent{content: "parent page"}
}

func TestMiddlewares(t *testing.T) {
	type topPage struct {
		mw middlewarePages `route:"/middleware Middleware"`
	}
	r := newTestRouter()
	if err := New().MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	for path, body := range map[string]string{
		"/middleware":       "parent page",
		"/middleware/child": "child page",
	} {
		rec := serve(t, r, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		if rec.Header().Get("X-Test-Middleware") != "foobar" {
			t.Errorf("%s: expected middleware header, got %q", path, rec.Header().Get("X-Test-Middleware"))
		}
		if rec.Body.String() != body {
			t.Errorf("%s: expected body %q, got %q", path, body, rec.Body.String())
		}
	}
}

func makeOrderMiddleware(name string) MiddlewareFunc {
	return func(next http.Handler, node *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "%s before,", name)
			next.ServeHTTP(w, r)
			fmt.Fprintf(w, ",%s after", name)
		})
	}
}

type orderTestPage struct{}

func (orderTestPage) Page() component { return testComponent{content: "order test page"} }

func (orderTestPage) Middlewares() []MiddlewareFunc {
	return []MiddlewareFunc{makeOrderMiddleware("page1"), makeOrderMiddleware("page2")}
}

func TestMiddlewareExecutionOrder(t *testing.T) {
	sp := New(WithMiddlewares(makeOrderMiddleware("global1"), makeOrderMiddleware("global2")))
	r := newTestRouter()
	type topPage struct {
		order orderTestPage `route:"/order Order"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := serve(t, r, httptest.NewRequest(http.MethodGet, "/order", http.NoBody))
	want := "global1 before,global2 before,page1 before,page2 before," +
		"order test page,page2 after,page1 after,global2 after,global1 after"
	if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
		t.Errorf("unexpected middleware order (-want +got):\n%s", diff)
	}
}

type testPropsPage struct{}

func (testPropsPage) Page(s string) component             { return testComponent{content: s} }
func (testPropsPage) Content(s string) component          { return testComponent{content: s} }
func (testPropsPage) Another(s string) component          { return testComponent{content: s} }
func (testPropsPage) Props() (string, error)              { return "Default Props", nil }
func (testPropsPage) PageProps(r *http.Request) string    { return "Page Props" }
func (testPropsPage) ContentProps(r *http.Request) string { return "Content Props" }

func TestHTMXPageConfigSelectsComponent(t *testing.T) {
	sp := New(WithDefaultPageConfig(HTMXPageConfig))
	r := newTestRouter()
	type topPage struct {
		props testPropsPage `route:"/props Props"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	tests := []struct {
		name     string
		hxTarget string
		want     string
	}{
		{name: "regular request renders Page", want: "Page Props"},
		{name: "content target", hxTarget: "content", want: "Content Props"},
		{name: "Another falls back to Props", hxTarget: "another", want: "Default Props"},
		{name: "unknown target falls back to Page", hxTarget: "missing-thing", want: "Page Props"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/props", http.NoBody)
			if tt.hxTarget != "" {
				req.Header.Set("Hx-Request", "true")
				req.Header.Set("Hx-Target", tt.hxTarget)
			}
			rec := serve(t, r, req)
			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if diff := cmp.Diff(tt.want, rec.Body.String()); diff != "" {
				t.Errorf("unexpected body (-want +got):\n%s", diff)
			}
		})
	}
}

type injectedPropsPage struct{}

type siteName string

func (injectedPropsPage) Page(title string) component { return testComponent{content: title} }

func (injectedPropsPage) Props(r *http.Request, name *siteName, node *PageNode) (string, error) {
	if r.URL.Query().Get("fail") != "" {
		return "", errors.New("props failed")
	}
	return fmt.Sprintf("%s at %s", *name, node.FullRoute()), nil
}

func TestPropsInjection(t *testing.T) {
	name := siteName("faculty")
	var captured error
	sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		captured = err
		w.WriteHeader(http.StatusTeapot)
	}))
	r := newTestRouter()
	type topPage struct {
		inj injectedPropsPage `route:"/inj"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top", &name); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := serve(t, r, httptest.NewRequest(http.MethodGet, "/inj", http.NoBody))
	if diff := cmp.Diff("faculty at /inj", rec.Body.String()); diff != "" {
		t.Errorf("unexpected body (-want +got):\n%s", diff)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}

	rec = serve(t, r, httptest.NewRequest(http.MethodGet, "/inj?fail=1", http.NoBody))
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected error handler status, got %d", rec.Code)
	}
	if captured == nil || !strings.Contains(captured.Error(), "props failed") {
		t.Errorf("expected props error, got %v", captured)
	}
}

type partialWriteErrorPage struct{}

func (partialWriteErrorPage) Page() component {
	return failingComponent{partial: "This content should be discarded"}
}

func TestComponentPartialWriteDiscardedOnError(t *testing.T) {
	type topPage struct {
		failing partialWriteErrorPage `route:"/partial-error"`
	}
	sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, "Component Error: "+err.Error(), http.StatusInternalServerError)
	}))
	r := newTestRouter()
	if err := sp.MountPages(r, &topPage{}, "/", "Test"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := serve(t, r, httptest.NewRequest(http.MethodGet, "/partial-error", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "discarded") {
		t.Errorf("partial content leaked: %q", body)
	}
	if !strings.Contains(body, "component render failed") {
		t.Errorf("expected error message in body, got %q", body)
	}
}

type noPageComponent struct{}

func (noPageComponent) Content() component { return testComponent{content: "content"} }

type missingArgPage struct{}

func (missingArgPage) Page(n *siteName) component { return testComponent{content: string(*n)} }

func TestMountPagesErrors(t *testing.T) {
	t.Run("component without Page", func(t *testing.T) {
		type topPage struct {
			c noPageComponent `route:"/c"`
		}
		err := New().MountPages(newTestRouter(), &topPage{}, "/", "")
		if err == nil || !strings.Contains(err.Error(), "does not have a Page component") {
			t.Errorf("expected missing Page error, got %v", err)
		}
	})
	t.Run("duplicate injected type", func(t *testing.T) {
		type topPage struct{}
		err := New().MountPages(newTestRouter(), &topPage{}, "/", "", greeting("a"), greeting("b"))
		if err == nil || !strings.Contains(err.Error(), "duplicate type") {
			t.Errorf("expected duplicate type error, got %v", err)
		}
	})
	t.Run("non struct page", func(t *testing.T) {
		err := New().MountPages(newTestRouter(), 42, "/", "")
		if err == nil {
			t.Error("expected error for non struct page")
		}
	})
	t.Run("missing injected argument surfaces at request time", func(t *testing.T) {
		type topPage struct {
			m missingArgPage `route:"/m"`
		}
		var captured error
		sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			captured = err
			w.WriteHeader(http.StatusInternalServerError)
		}))
		r := newTestRouter()
		if err := sp.MountPages(r, &topPage{}, "/", ""); err != nil {
			t.Fatalf("MountPages failed: %v", err)
		}
		serve(t, r, httptest.NewRequest(http.MethodGet, "/m", http.NoBody))
		if captured == nil || !strings.Contains(captured.Error(), "but not found") {
			t.Errorf("expected missing argument error, got %v", captured)
		}
	})
}

func TestChiRouter(t *testing.T) {
	type topPage struct {
		s plainHandlerPage  `route:"GET /plain"`
		i injectedPropsPage `route:"/items/{id}"`
	}
	name := siteName("chi")
	r := NewChiRouter(chi.NewRouter())
	if err := New().MountPages(r, &topPage{}, "/", "", &name); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := serve(t, r, httptest.NewRequest(http.MethodGet, "/plain", http.NoBody))
	if rec.Body.String() != "plain handler" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	rec = serve(t, r, httptest.NewRequest(http.MethodPost, "/plain", http.NoBody))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected %d for POST /plain, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
	rec = serve(t, r, httptest.NewRequest(http.MethodGet, "/items/7", http.NoBody))
	if diff := cmp.Diff("chi at /items/{id}", rec.Body.String()); diff != "" {
		t.Errorf("unexpected body (-want +got):\n%s", diff)
	}
}

func TestRoutes(t *testing.T) {
	type topPage struct {
		s plainHandlerPage `route:"GET /plain Plain page"`
		c noPageComponent
	}
	root, err := Parse(&topPage{}, "/", "Root")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"GET    /plain  Plain page"}
	if diff := cmp.Diff(want, root.Routes()); diff != "" {
		t.Errorf("unexpected routes (-want +got):\n%s", diff)
	}
	if !strings.Contains(root.String(), "handler: pages.plainHandlerPage.ServeHTTP") {
		t.Errorf("String() missing handler line:\n%s", root.String())
	}
}
