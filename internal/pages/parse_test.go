package pages

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		route                   string
		method, path, wantTitle string
	}{
		{route: "", method: methodAll, path: "/"},
		{route: "/", method: methodAll, path: "/"},
		{route: "/about", method: methodAll, path: "/about"},
		{route: "/about About me", method: methodAll, path: "/about", wantTitle: "About me"},
		{route: "POST /ui/menu", method: http.MethodPost, path: "/ui/menu"},
		{route: "post /ui/menu Toggle menu", method: http.MethodPost, path: "/ui/menu", wantTitle: "Toggle menu"},
		{route: "GET /{$} Home", method: http.MethodGet, path: "/{$}", wantTitle: "Home"},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			method, path, title := parseTag(tt.route)
			got := []string{method, path, title}
			want := []string{tt.method, tt.path, tt.wantTitle}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("parseTag(%q) mismatch (-want +got):\n%s", tt.route, diff)
			}
		})
	}
}

type treeLeaf struct{}

func (treeLeaf) Page() component { return testComponent{content: "leaf"} }

type treeBranch struct {
	leaf  treeLeaf  `route:"/leaf Leaf"`
	leaf2 *treeLeaf `route:"GET /leaf2"`
}

func (*treeBranch) Page() component { return testComponent{content: "branch"} }

func TestParsePageTree(t *testing.T) {
	type top struct {
		branch treeBranch `route:"/branch Branch"`
		ignored string
	}
	root, err := Parse(&top{}, "/", "Top")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var names, routes []string
	for n := range root.All() {
		names = append(names, n.Name)
		routes = append(routes, n.FullRoute())
	}
	if diff := cmp.Diff([]string{"top", "branch", "leaf", "leaf2"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/", "/branch", "/branch/leaf", "/branch/leaf2"}, routes); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
	if root.Title != "Top" {
		t.Errorf("expected root title %q, got %q", "Top", root.Title)
	}
	branch := root.Children[0]
	if _, ok := branch.Components["Page"]; !ok {
		t.Errorf("pointer receiver Page not detected on branch")
	}
	if branch.Children[1].Method != http.MethodGet {
		t.Errorf("expected GET for leaf2, got %s", branch.Children[1].Method)
	}
}

func TestPageNodeAllBreak(t *testing.T) {
	root := &PageNode{Name: "a", Children: []*PageNode{{Name: "b"}, {Name: "c"}}}
	var got []string
	for n := range root.All() {
		got = append(got, n.Name)
		if n.Name == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("unexpected walk (-want +got):\n%s", diff)
	}
}

type service interface{ Name() string }

type namedService struct{ name string }

func (s *namedService) Name() string { return s.name }

func TestArgRegistry_getArg(t *testing.T) {
	args := make(argRegistry)
	svc := &namedService{name: "svc"}
	if err := args.addArg(svc); err != nil {
		t.Fatalf("addArg failed: %v", err)
	}
	if err := args.addArg(nil); err != nil {
		t.Fatalf("addArg(nil) should be ignored, got %v", err)
	}
	if err := args.addArg(svc); err == nil {
		t.Fatal("expected duplicate type error")
	}

	v, ok := args.getArg(reflect.TypeOf(svc))
	if !ok || v.Interface() != svc {
		t.Errorf("exact pointer lookup failed")
	}
	v, ok = args.getArg(reflect.TypeOf(namedService{}))
	if !ok || v.Interface().(namedService).name != "svc" {
		t.Errorf("value lookup from pointer failed")
	}
	v, ok = args.getArg(reflect.TypeOf((*service)(nil)).Elem())
	if !ok || v.Interface().(service).Name() != "svc" {
		t.Errorf("interface lookup failed")
	}
	if _, ok := args.getArg(reflect.TypeOf("")); ok {
		t.Errorf("unexpected match for string")
	}

	vals := make(argRegistry)
	_ = vals.addArg(greeting("hi"))
	v, ok = vals.getArg(reflect.TypeOf(new(greeting)))
	if !ok || *(v.Interface().(*greeting)) != "hi" {
		t.Errorf("pointer lookup from value failed")
	}
}
