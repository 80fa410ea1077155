package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchInterests(t *testing.T) {
	p := Default()
	require.Len(t, p.Research, 6)
	for _, r := range p.Research {
		assert.NotEmpty(t, strings.TrimSpace(r.Title))
		assert.NotEmpty(t, strings.TrimSpace(r.Description), r.Title)
		assert.NotEmpty(t, r.Accent, r.Title)
	}
}

func TestDefaultReturnsFreshTables(t *testing.T) {
	a := Default()
	a.Research[0].Title = "changed"
	a.Stats = a.Stats[:1]
	b := Default()
	assert.Equal(t, "Electrochemical Sensors", b.Research[0].Title)
	assert.Len(t, b.Stats, 4)
}

func TestContactChannels(t *testing.T) {
	p := Default()
	byKind := map[ChannelKind]ContactChannel{}
	for _, c := range p.Contact {
		byKind[c.Kind] = c
	}
	assert.Equal(t, "tel:+919441088587", byKind[ChannelPhone].Href)
	assert.Equal(t, "mailto:tmsreddysvu@gmail.com", byKind[ChannelEmail].Href)
	assert.True(t, byKind[ChannelProfile].External)
	assert.False(t, byKind[ChannelPhone].External)
}

func TestStaticTables(t *testing.T) {
	p := Default()
	assert.Len(t, p.Stats, 4)
	assert.Len(t, p.Academic, 5)
	assert.Len(t, p.Projects, 2)
	assert.Len(t, p.Guidance, 2)
	assert.Equal(t, 73, p.Publications.Count)
	for _, l := range append(p.Links, p.Publications.Links...) {
		assert.True(t, strings.HasPrefix(l.Href, "https://"), l.Label)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown(Default().About)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(html, "<p>"))
	assert.Contains(t, html, "<strong>Electrochemical sensors and Biosensors</strong>")
	assert.Contains(t, html, "<em>")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("hello <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "hello")
}
