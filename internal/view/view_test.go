package view

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jackielii/facultypage/internal/controller"
	"github.com/jackielii/facultypage/internal/profile"
	"github.com/jackielii/facultypage/internal/seo"
)

func testModel(t *testing.T, st controller.UIState, interactive bool) PageModel {
	t.Helper()
	p := profile.Default()
	bio, err := profile.RenderMarkdown(p.About)
	require.NoError(t, err)
	theme, err := LookupTheme(DefaultTheme)
	require.NoError(t, err)
	vm := PageModel{State: st, Profile: p, About: bio, Theme: theme, Meta: seo.ForProfile(p, "")}
	if interactive {
		vm.Routes = Routes{Menu: "/ui/menu", Scroll: "/ui/scroll", Navigate: map[controller.NavigationTarget]string{}}
		for _, tg := range controller.Targets() {
			vm.Routes.Navigate[tg] = "/ui/navigate/" + tg.String()
		}
	}
	return vm
}

func render(t *testing.T, ctx context.Context, c templ.Component) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return out
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func byID(doc *html.Node, v string) *html.Node {
	found := findAll(doc, func(n *html.Node) bool { return attrOf(n, "id") == v })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func hasClass(n *html.Node, c string) bool {
	for _, f := range strings.Fields(attrOf(n, "class")) {
		if f == c {
			return true
		}
	}
	return false
}

func TestPageHasEveryLandmark(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, true)))
	for _, tg := range controller.Targets() {
		n := byID(doc, tg.String())
		if assert.NotNil(t, n, tg.String()) {
			assert.Equal(t, "section", n.Data)
		}
	}
	assert.NotNil(t, byID(doc, NavID))
	assert.NotNil(t, byID(doc, ErrorSlotID))
}

func TestResearchListHasSixEntries(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, true)))
	cards := findAll(doc, func(n *html.Node) bool { return hasClass(n, "research-card") })
	require.Len(t, cards, 6)
	for _, c := range cards {
		h := findAll(c, func(n *html.Node) bool { return n.Data == "h3" })
		p := findAll(c, func(n *html.Node) bool { return n.Data == "p" })
		require.Len(t, h, 1)
		require.Len(t, p, 1)
		assert.NotEmpty(t, strings.TrimSpace(h[0].FirstChild.Data))
		assert.NotEmpty(t, strings.TrimSpace(p[0].FirstChild.Data))
	}
}

func TestNavState(t *testing.T) {
	tests := []struct {
		name     string
		state    controller.UIState
		surface  string
		menu     bool
		expanded string
		label    string
	}{
		{"mount", controller.UIState{}, "shadow-sm", false, "false", "Open menu"},
		{"scrolled", controller.UIState{Scrolled: true}, "shadow-lg", false, "false", "Open menu"},
		{"menu open", controller.UIState{MenuOpen: true}, "shadow-sm", true, "true", "Close menu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, doc := render(t, context.Background(), Nav(testModel(t, tt.state, true)))
			nav := byID(doc, NavID)
			require.NotNil(t, nav)
			assert.True(t, hasClass(nav, tt.surface), attrOf(nav, "class"))
			assert.Equal(t, tt.menu, byID(doc, "mobile-menu") != nil)

			btn := byID(doc, "menu-button")
			require.NotNil(t, btn)
			assert.Equal(t, tt.expanded, attrOf(btn, "aria-expanded"))
			assert.Equal(t, tt.label, attrOf(btn, "aria-label"))
			assert.Equal(t, "/ui/menu", attrOf(btn, "hx-post"))
		})
	}
}

func TestNavReportsScroll(t *testing.T) {
	_, doc := render(t, context.Background(), Nav(testModel(t, controller.UIState{}, true)))
	nav := byID(doc, NavID)
	assert.Equal(t, "/ui/scroll", attrOf(nav, "hx-post"))
	assert.Equal(t, "scroll from:window", attrOf(nav, "hx-trigger"))
	assert.Equal(t, "js:{offset: window.scrollY}", attrOf(nav, "hx-vals"))
}

func TestNavigationControls(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{MenuOpen: true}, true)))
	controls := findAll(doc, func(n *html.Node) bool { return attrOf(n, "data-target") != "" })
	// desktop, mobile, and the hero's contact button
	require.Len(t, controls, 11)
	for _, c := range controls {
		assert.Equal(t, "button", c.Data)
		assert.Equal(t, "/ui/navigate/"+attrOf(c, "data-target"), attrOf(c, "hx-post"))
		assert.Equal(t, "#"+NavID, attrOf(c, "hx-target"))
	}
}

func TestStaticPageFallsBackToAnchors(t *testing.T) {
	out, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, false)))
	assert.NotContains(t, out, "hx-post")
	assert.NotContains(t, out, htmxCDN)
	controls := findAll(doc, func(n *html.Node) bool { return attrOf(n, "data-target") != "" })
	require.Len(t, controls, 6)
	for _, c := range controls {
		assert.Equal(t, "a", c.Data)
		assert.Equal(t, "#"+attrOf(c, "data-target"), attrOf(c, "href"))
	}
}

func TestFooterYearFromClock(t *testing.T) {
	ctx := WithClock(context.Background(), func() time.Time {
		return time.Date(2031, 3, 1, 0, 0, 0, 0, time.UTC)
	})
	out, _ := render(t, ctx, Page(testModel(t, controller.UIState{}, true)))
	assert.Contains(t, out, "© 2031 Prof. T. Madhusudana Reddy. All rights reserved.")
}

func TestContactLinks(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, true)))
	links := map[string]*html.Node{}
	for _, n := range findAll(doc, func(n *html.Node) bool { return n.Data == "a" }) {
		links[attrOf(n, "href")] = n
	}
	require.Contains(t, links, "tel:+919441088587")
	require.Contains(t, links, "mailto:tmsreddysvu@gmail.com")
	scholar := links[profile.ScholarURL]
	require.NotNil(t, scholar)
	assert.Equal(t, "_blank", attrOf(scholar, "target"))
	assert.Equal(t, "noopener noreferrer", attrOf(scholar, "rel"))
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"classic", "slate"}, ThemeNames())
	_, err := LookupTheme("neon")
	assert.Error(t, err)

	vm := testModel(t, controller.UIState{}, true)
	vm.Theme, err = LookupTheme("slate")
	require.NoError(t, err)
	assert.Equal(t, profile.StockPortrait, vm.portrait())
	vm.Assets = "/static/"
	assert.Equal(t, "/static/portrait.svg", vm.portrait())

	_, doc := render(t, context.Background(), Page(vm))
	body := findAll(doc, func(n *html.Node) bool { return n.Data == "body" })[0]
	assert.Equal(t, "slate", attrOf(body, "data-theme"))
	for _, tg := range controller.Targets() {
		assert.NotNil(t, byID(doc, tg.String()))
	}
}

func TestErrorComponents(t *testing.T) {
	out, _ := render(t, context.Background(), ErrorPage(404, "no such page <here>"))
	assert.Contains(t, out, "404 Not Found")
	assert.Contains(t, out, "no such page &lt;here&gt;")

	out, doc := render(t, context.Background(), ErrorFragment(500, "boom"))
	alert := findAll(doc, func(n *html.Node) bool { return attrOf(n, "role") == "alert" })
	require.Len(t, alert, 1)
	assert.Equal(t, "500", attrOf(alert[0], "data-status"))
	assert.Contains(t, out, "boom")
}

func TestHeadCarriesStructuredData(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, true)))
	ld := byID(doc, "profile-jsonld")
	require.NotNil(t, ld)
	assert.Equal(t, "script", ld.Data)
	assert.Equal(t, "application/ld+json", attrOf(ld, "type"))
	require.NotNil(t, ld.FirstChild)
	var person map[string]any
	require.NoError(t, json.Unmarshal([]byte(ld.FirstChild.Data), &person))
	assert.Equal(t, "Person", person["@type"])
	assert.Equal(t, "Prof. T. Madhusudana Reddy", person["name"])
}

func TestCardsStaggerFadeIn(t *testing.T) {
	_, doc := render(t, context.Background(), Page(testModel(t, controller.UIState{}, false)))
	cards := findAll(doc, func(n *html.Node) bool { return hasClass(n, "research-card") })
	require.Len(t, cards, 6)
	for i, c := range cards {
		assert.Equal(t, fmt.Sprintf("animation-delay: %dms;", i*100), attrOf(c, "style"))
	}
}

func TestIconClassIsOptional(t *testing.T) {
	out, _ := render(t, context.Background(), icon(iconMenu, 24, ""))
	assert.NotContains(t, out, "class=")
	assert.Contains(t, out, `width="24"`)

	out, _ = render(t, context.Background(), icon(iconMapPin, 22, "text-white"))
	assert.Contains(t, out, `class="text-white"`)
}
