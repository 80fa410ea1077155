// Package view renders the profile page and its navigation bar partial.
package view

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.865 generate

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jackielii/ctxkey"

	"github.com/jackielii/facultypage/internal/controller"
	"github.com/jackielii/facultypage/internal/profile"
	"github.com/jackielii/facultypage/internal/seo"
)

// NavID is the id of the navigation bar, the swap target of every UI event.
const NavID = "site-nav"

// Routes are the UI event endpoints. A zero Routes renders a static page whose
// navigation falls back to in-page anchors.
type Routes struct {
	Menu     string
	Scroll   string
	Navigate map[controller.NavigationTarget]string
}

func (r Routes) navigate(t controller.NavigationTarget) string {
	return r.Navigate[t]
}

// PageModel is everything a render needs.
type PageModel struct {
	State     controller.UIState
	Profile   profile.Profile
	About     string // sanitized HTML of Profile.About
	Theme     Theme
	Routes    Routes
	Meta      seo.Meta
	Assets    string // prefix of embedded assets, "" for none
	InlineCSS string
}

// Theme is a visual variant of the page. Themes differ only in palette and
// portrait; the interactive contract is the same.
type Theme struct {
	Name      string
	Accent    string // tailwind color of primary chrome
	Secondary string // tailwind color paired with Accent in gradients
	Hero      string // classes of the hero background
	Portrait  string // overrides the profile portrait when set
}

var themes = map[string]Theme{
	"classic": {
		Name:      "classic",
		Accent:    "blue",
		Secondary: "indigo",
		Hero:      "from-blue-50 via-indigo-50 to-purple-50",
	},
	"slate": {
		Name:      "slate",
		Accent:    "teal",
		Secondary: "slate",
		Hero:      "from-slate-50 via-teal-50 to-cyan-50",
		Portrait:  "portrait.svg",
	},
}

// DefaultTheme is used when none is configured.
const DefaultTheme = "classic"

// LookupTheme returns the theme called name.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (have %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// portrait resolves the portrait URL for the model.
func (vm PageModel) portrait() string {
	if vm.Theme.Portrait != "" && vm.Assets != "" {
		return vm.Assets + vm.Theme.Portrait
	}
	return vm.Profile.Person.Portrait
}

var clockKey = ctxkey.New[func() time.Time]("view.clock", time.Now)

// WithClock makes renders under ctx read the time from now.
func WithClock(ctx context.Context, now func() time.Time) context.Context {
	return clockKey.WithValue(ctx, now)
}

func year(ctx context.Context) int {
	return clockKey.Value(ctx)().Year()
}
