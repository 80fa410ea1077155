package site

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/jackielii/facultypage/internal/controller"
	"github.com/jackielii/facultypage/internal/view"
)

// index is the profile page. Its children are the UI event endpoints, each
// answering with the re-rendered navigation bar.
type index struct {
	menu     menuEvent     `route:"POST /ui/menu Toggle menu"`
	scroll   scrollEvent   `route:"POST /ui/scroll Report scroll"`
	navigate navigateEvent `route:"POST /ui/navigate/{target} Navigate"`
	health   healthCheck   `route:"GET /healthz Health"`
}

func (index) Page(vm view.PageModel) templ.Component {
	return view.Page(vm)
}

// SiteNav serves htmx requests targeting the navigation bar.
func (index) SiteNav(vm view.PageModel) templ.Component {
	return view.Nav(vm)
}

// PageProps mounts the page: whatever state the visitor had is replaced by a
// fresh one.
func (index) PageProps(r *http.Request, s *Site) (view.PageModel, error) {
	c := controller.New(nil)
	s.saveState(r.Context(), c.State())
	return s.model(r.Context(), c.State())
}

func (index) SiteNavProps(r *http.Request, s *Site) (view.PageModel, error) {
	return s.model(r.Context(), s.loadState(r.Context()))
}

type menuEvent struct{}

func (menuEvent) ServeHTTP(w http.ResponseWriter, r *http.Request, s *Site) error {
	c := controller.Restore(nil, s.loadState(r.Context()))
	c.ToggleMobileMenu()
	return s.reply(w, r, c.State(), "")
}

type scrollForm struct {
	Offset float64 `form:"offset"`
}

type scrollEvent struct{}

// ServeHTTP reads the window offset. A missing or malformed offset counts as
// the top of the page.
func (scrollEvent) ServeHTTP(w http.ResponseWriter, r *http.Request, s *Site) error {
	var f scrollForm
	if err := r.ParseForm(); err != nil {
		s.logger.Debug("unreadable scroll event", zap.Error(err))
	} else if err := s.forms.Decode(&f, r.Form); err != nil {
		s.logger.Debug("malformed scroll offset", zap.String("offset", r.Form.Get("offset")), zap.Error(err))
		f.Offset = 0
	}
	c := controller.Restore(nil, s.loadState(r.Context()))
	c.OnScroll(f.Offset)
	return s.reply(w, r, c.State(), "")
}

type navigateEvent struct{}

// ServeHTTP navigates to the section named in the path. An unknown section has
// no landmark: the menu closes and nothing scrolls.
func (navigateEvent) ServeHTTP(w http.ResponseWriter, r *http.Request, s *Site) error {
	rec := s.landmarks.Recorder()
	var doc controller.Document = rec
	target, err := controller.ParseTarget(r.PathValue("target"))
	if err != nil {
		s.logger.Debug("navigation to unknown section", zap.Error(err))
		doc = nil
	}
	c := controller.Restore(doc, s.loadState(r.Context()))
	c.NavigateTo(target)

	var scrollTo string
	if l, ok := rec.Target(); ok {
		scrollTo = l.ID
	}
	return s.reply(w, r, c.State(), scrollTo)
}

type healthCheck struct{}

func (healthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
