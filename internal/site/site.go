// Package site serves the profile page. Each visitor's UI state lives in their
// session; UI events re-render the navigation bar and tell htmx where to
// scroll.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/form/v4"
	"go.uber.org/zap"

	"github.com/jackielii/facultypage/internal/config"
	"github.com/jackielii/facultypage/internal/controller"
	"github.com/jackielii/facultypage/internal/landmark"
	"github.com/jackielii/facultypage/internal/pages"
	"github.com/jackielii/facultypage/internal/profile"
	"github.com/jackielii/facultypage/internal/seo"
	"github.com/jackielii/facultypage/internal/view"
)

const (
	keyMenuOpen = "ui.menu_open"
	keyScrolled = "ui.scrolled"
)

// Site holds the services shared by every request. Everything but the session
// store is read-only after New.
type Site struct {
	cfg       config.Config
	logger    *zap.Logger
	store     *memstore.MemStore
	sessions  *scs.SessionManager
	forms     *form.Decoder
	landmarks *landmark.Index
	profile   profile.Profile
	about     string
	theme     view.Theme
	meta      seo.Meta
	now       func() time.Time
}

// Option configures a Site.
type Option func(*Site)

// WithClock sets the clock used for the footer year and request timing.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		s.now = now
	}
}

// New builds the site from cfg. It renders the page once to index its
// landmarks and fails if a navigation target has none.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Site, error) {
	theme, err := view.LookupTheme(cfg.Site.Theme)
	if err != nil {
		return nil, err
	}
	p := profile.Default()
	about, err := profile.RenderMarkdown(p.About)
	if err != nil {
		return nil, fmt.Errorf("render biography: %w", err)
	}

	s := &Site{
		cfg:     *cfg,
		logger:  logger,
		forms:   form.NewDecoder(),
		profile: p,
		about:   about,
		theme:   theme,
		meta:    seo.ForProfile(p, cfg.Site.BaseURL),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.forms.SetTagName("form")
	s.store = memstore.NewWithCleanupInterval(cfg.Session.CleanupInterval)
	s.sessions = newSessionManager(cfg.Session, s.store, s.handleError)

	ctx := view.WithClock(context.Background(), s.now)
	s.landmarks, err = indexLandmarks(ctx, view.Page(s.staticModel()))
	if err != nil {
		s.store.StopCleanup()
		return nil, err
	}
	return s, nil
}

// newSessionManager builds the manager by hand: scs.New starts a memstore
// cleanup goroutine that cannot be stopped reliably once store replaces it.
func newSessionManager(cfg config.SessionConfig, store scs.Store, onError func(http.ResponseWriter, *http.Request, error)) *scs.SessionManager {
	return &scs.SessionManager{
		Lifetime:  cfg.Lifetime,
		Store:     store,
		Codec:     scs.GobCodec{},
		ErrorFunc: onError,
		Cookie: scs.SessionCookie{
			Name:     cfg.CookieName,
			HttpOnly: true,
			Path:     "/",
			Persist:  false, // UI state ends with the browser session
			Secure:   cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// indexLandmarks renders page and indexes its ids. Every navigation target
// must resolve.
func indexLandmarks(ctx context.Context, page templ.Component) (*landmark.Index, error) {
	var buf bytes.Buffer
	if err := page.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	idx, err := landmark.Build(&buf)
	if err != nil {
		return nil, err
	}
	targets := controller.Targets()
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = t.String()
	}
	if missing := landmark.Missing(idx, ids...); len(missing) > 0 {
		return nil, fmt.Errorf("page has no landmark for %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// Close stops background session cleanup.
func (s *Site) Close() {
	s.store.StopCleanup()
}

func (s *Site) loadState(ctx context.Context) controller.UIState {
	return controller.UIState{
		MenuOpen: s.sessions.GetBool(ctx, keyMenuOpen),
		Scrolled: s.sessions.GetBool(ctx, keyScrolled),
	}
}

func (s *Site) saveState(ctx context.Context, st controller.UIState) {
	s.sessions.Put(ctx, keyMenuOpen, st.MenuOpen)
	s.sessions.Put(ctx, keyScrolled, st.Scrolled)
}

// staticModel is the page at mount without event routes.
func (s *Site) staticModel() view.PageModel {
	return view.PageModel{
		Profile: s.profile,
		About:   s.about,
		Theme:   s.theme,
		Meta:    s.meta,
	}
}

// model is the page for a request, with event routes resolved against the
// mounted page tree.
func (s *Site) model(ctx context.Context, st controller.UIState) (view.PageModel, error) {
	routes, err := eventRoutes(ctx)
	if err != nil {
		return view.PageModel{}, err
	}
	vm := s.staticModel()
	vm.State = st
	vm.Routes = routes
	vm.Assets = AssetPrefix
	return vm, nil
}

func eventRoutes(ctx context.Context) (view.Routes, error) {
	var routes view.Routes
	var err error
	if routes.Menu, err = pages.URLFor(ctx, menuEvent{}); err != nil {
		return routes, err
	}
	if routes.Scroll, err = pages.URLFor(ctx, scrollEvent{}); err != nil {
		return routes, err
	}
	routes.Navigate = make(map[controller.NavigationTarget]string)
	for _, t := range controller.Targets() {
		u, err := pages.URLFor(ctx, navigateEvent{}, t.String())
		if err != nil {
			return routes, err
		}
		routes.Navigate[t] = u
	}
	return routes, nil
}

// reply persists st and answers with the navigation bar. scrollTo, when set,
// is the id htmx scrolls to the top of the viewport after the swap.
func (s *Site) reply(w http.ResponseWriter, r *http.Request, st controller.UIState, scrollTo string) error {
	s.saveState(r.Context(), st)
	vm, err := s.model(r.Context(), st)
	if err != nil {
		return err
	}
	res := htmx.NewResponse()
	if scrollTo != "" {
		res = res.Reswap(htmx.SwapOuterHTML.ShowOn("#"+scrollTo, htmx.Top))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return res.RenderTempl(r.Context(), w, view.Nav(vm))
}

// Handler builds the HTTP handler serving the site.
func (s *Site) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.logRequests,
		middleware.Recoverer,
		middleware.Compress(5),
		middleware.Timeout(s.cfg.Server.RequestTimeout),
	)
	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	assets, err := assetsWithCache()
	if err != nil {
		return nil, fmt.Errorf("index assets: %w", err)
	}
	r.Handle(AssetPrefix+"*", http.StripPrefix(strings.TrimSuffix(AssetPrefix, "/"), assets))

	sp := pages.New(
		pages.WithDefaultPageConfig(pages.HTMXPageConfig),
		pages.WithErrorHandler(s.handleError),
		pages.WithMiddlewares(
			wrapMiddleware(s.sessions.LoadAndSave),
			s.withClock,
		),
	)
	if err := sp.MountPages(pages.NewChiRouter(r), index{}, "GET /", s.profile.Person.Name, s); err != nil {
		return nil, fmt.Errorf("mount pages: %w", err)
	}
	return r, nil
}

// Routes lists the served routes.
func (s *Site) Routes() ([]string, error) {
	root, err := pages.Parse(index{}, "GET /", s.profile.Person.Name)
	if err != nil {
		return nil, err
	}
	return append(root.Routes(), fmt.Sprintf("%-6s %s*  Assets", http.MethodGet, AssetPrefix)), nil
}

// RenderStatic writes the page at mount as a self-contained document: no
// event routes, the stylesheet inlined.
func (s *Site) RenderStatic(ctx context.Context, w io.Writer) error {
	css, err := Stylesheet()
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	vm := s.staticModel()
	vm.InlineCSS = css
	return view.Page(vm).Render(view.WithClock(ctx, s.now), w)
}

// NewServer wraps h in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, h http.Handler, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}
}

// Serve runs the site on ln until ctx is done, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Site) Serve(ctx context.Context, ln net.Listener) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}
	srv := NewServer(s.cfg.Server, h, s.logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("serving", zap.String("addr", ln.Addr().String()), zap.String("theme", s.theme.Name))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Site) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}
