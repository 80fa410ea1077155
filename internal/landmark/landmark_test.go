package landmark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackielii/facultypage/internal/controller"
)

const doc = `<!doctype html>
<html><head><title>t</title></head>
<body>
  <nav id="site-nav"><a href="#about">About</a></nav>
  <section id="home"><h1>Home</h1></section>
  <section id="about"><p id="">empty ids are ignored</p></section>
  <div id="about">duplicate</div>
  <section id="contact"></section>
</body></html>`

func TestBuild(t *testing.T) {
	idx, err := Build(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"site-nav", "home", "about", "contact"}, idx.IDs())

	l, ok := idx.Landmark("about")
	require.True(t, ok)
	assert.Equal(t, controller.Landmark{ID: "about", Tag: "section", Position: 2}, l)

	_, ok = idx.Landmark("publications")
	assert.False(t, ok)
}

func TestMissing(t *testing.T) {
	idx, err := Build(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"research", "publications"},
		Missing(idx, "home", "about", "research", "publications", "contact"))
	assert.Empty(t, Missing(idx, "home"))
}

func TestRecorderDrivesController(t *testing.T) {
	idx, err := Build(strings.NewReader(doc))
	require.NoError(t, err)

	rec := idx.Recorder()
	c := controller.Restore(rec, controller.UIState{MenuOpen: true})
	assert.True(t, c.NavigateTo(controller.Contact))
	target, ok := rec.Target()
	require.True(t, ok)
	assert.Equal(t, "contact", target.ID)
	assert.False(t, c.State().MenuOpen)

	rec = idx.Recorder()
	c = controller.Restore(rec, controller.UIState{MenuOpen: true})
	assert.False(t, c.NavigateTo(controller.Research))
	_, ok = rec.Target()
	assert.False(t, ok)
	assert.False(t, c.State().MenuOpen)
}
