package controller

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocument struct {
	ids      map[string]bool
	scrolled []string
}

func newFakeDocument(ids ...string) *fakeDocument {
	d := &fakeDocument{ids: map[string]bool{}}
	for _, id := range ids {
		d.ids[id] = true
	}
	return d
}

func (d *fakeDocument) Landmark(id string) (Landmark, bool) {
	if !d.ids[id] {
		return Landmark{}, false
	}
	return Landmark{ID: id, Tag: "section"}, true
}

func (d *fakeDocument) ScrollIntoView(l Landmark) {
	d.scrolled = append(d.scrolled, l.ID)
}

func allSections() *fakeDocument {
	return newFakeDocument("home", "about", "research", "publications", "contact")
}

func TestMountState(t *testing.T) {
	c := New(allSections())
	assert.Equal(t, UIState{}, c.State())
}

func TestOnScrollThreshold(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{offset: math.Inf(-1), want: false},
		{offset: -120, want: false},
		{offset: 0, want: false},
		{offset: 49.9, want: false},
		{offset: 50, want: false},
		{offset: 50.01, want: true},
		{offset: 51, want: true},
		{offset: 120, want: true},
		{offset: math.Inf(1), want: true},
	}
	for _, tt := range tests {
		c := New(nil)
		c.OnScroll(tt.offset)
		assert.Equal(t, tt.want, c.State().Scrolled, "offset %v", tt.offset)
		// idempotent
		c.OnScroll(tt.offset)
		assert.Equal(t, tt.want, c.State().Scrolled, "offset %v repeated", tt.offset)
	}
}

func TestOnScrollLeavesMenuAlone(t *testing.T) {
	c := Restore(nil, UIState{MenuOpen: true})
	c.OnScroll(200)
	assert.Equal(t, UIState{MenuOpen: true, Scrolled: true}, c.State())
}

func TestScrollScenario(t *testing.T) {
	c := New(allSections())
	c.OnScroll(0)
	assert.False(t, c.State().Scrolled)
	c.OnScroll(120)
	assert.True(t, c.State().Scrolled)
	c.OnScroll(10)
	assert.False(t, c.State().Scrolled)
}

func TestToggleMobileMenuIsAnInvolution(t *testing.T) {
	c := New(allSections())
	c.ToggleMobileMenu()
	assert.True(t, c.State().MenuOpen)
	c.ToggleMobileMenu()
	assert.False(t, c.State().MenuOpen)
}

func TestNavigateToAlwaysClosesMenu(t *testing.T) {
	for _, target := range Targets() {
		for _, open := range []bool{false, true} {
			for _, doc := range []*fakeDocument{allSections(), newFakeDocument()} {
				c := Restore(doc, UIState{MenuOpen: open})
				found := c.NavigateTo(target)
				assert.False(t, c.State().MenuOpen, "target %s open=%v", target, open)
				assert.Equal(t, len(doc.ids) > 0, found, "target %s", target)
			}
		}
	}
}

func TestNavigateToMissingLandmarkIsSilent(t *testing.T) {
	doc := newFakeDocument("home")
	c := Restore(doc, UIState{MenuOpen: true, Scrolled: true})
	assert.False(t, c.NavigateTo(Publications))
	assert.Empty(t, doc.scrolled)
	assert.Equal(t, UIState{Scrolled: true}, c.State())

	c = Restore(nil, UIState{MenuOpen: true})
	assert.False(t, c.NavigateTo(Home))
	assert.False(t, c.State().MenuOpen)
}

func TestOpenMenuThenNavigateToPublications(t *testing.T) {
	doc := allSections()
	c := New(doc)
	c.ToggleMobileMenu()
	require.True(t, c.State().MenuOpen)

	require.True(t, c.NavigateTo(Publications))
	assert.False(t, c.State().MenuOpen)
	assert.Equal(t, []string{"publications"}, doc.scrolled)
}

func TestParseTarget(t *testing.T) {
	for _, target := range Targets() {
		got, err := ParseTarget(target.String())
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}
	_, err := ParseTarget("teaching")
	assert.True(t, errors.Is(err, ErrUnknownTarget))
	_, err = ParseTarget("Home")
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestTargetOrderAndLabels(t *testing.T) {
	var ids, labels []string
	for _, target := range Targets() {
		ids = append(ids, target.String())
		labels = append(labels, target.Label())
	}
	assert.Equal(t, []string{"home", "about", "research", "publications", "contact"}, ids)
	assert.Equal(t, []string{"Home", "About", "Research", "Publications", "Contact"}, labels)
	assert.Equal(t, "NavigationTarget(9)", NavigationTarget(9).String())
}
