package site

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jackielii/facultypage/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Session.CleanupInterval = 0
	return cfg
}

var fixedNow = func() time.Time { return time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC) }

func newTestSite(t *testing.T, opts ...Option) (*Site, http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(testConfig(), zap.New(core), append([]Option{WithClock(fixedNow)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	h, err := s.Handler()
	require.NoError(t, err)
	return s, h, logs
}

// visitor replays the session cookie between requests like a browser.
type visitor struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newVisitor(t *testing.T, h http.Handler) *visitor {
	return &visitor{t: t, h: h, cookies: map[string]*http.Cookie{}}
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	v.t.Helper()
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	v.h.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		v.cookies[c.Name] = c
	}
	return rec
}

func (v *visitor) load() *httptest.ResponseRecorder {
	return v.do(httptest.NewRequest(http.MethodGet, "/", nil))
}

func (v *visitor) event(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "site-nav")
	return v.do(req)
}

// nav re-renders the bar from the stored state without mounting.
func (v *visitor) nav() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "site-nav")
	return v.do(req)
}

func menuOpen(body string) bool {
	return strings.Contains(body, `id="mobile-menu"`)
}

func scrolled(body string) bool {
	return strings.Contains(body, `data-scrolled="true"`)
}

func TestMountRendersFullPage(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)

	rec := v.load()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	for _, id := range []string{"home", "about", "research", "publications", "contact", "site-nav"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.False(t, menuOpen(body))
	assert.False(t, scrolled(body))
	assert.Contains(t, body, `hx-post="/ui/navigate/publications"`)
	assert.Contains(t, body, `hx-post="/ui/scroll"`)
	assert.Contains(t, body, "© 2030 Prof. T. Madhusudana Reddy. All rights reserved.")
	assert.Contains(t, v.cookies, "facultypage_session")
}

func TestSiteNavPartial(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()

	rec := v.nav()
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<nav id="site-nav"`), body)
	assert.NotContains(t, body, "<html")
}

func TestToggleMobileMenu(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()

	rec := v.event("/ui/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, menuOpen(rec.Body.String()))
	assert.Contains(t, rec.Body.String(), `aria-expanded="true"`)
	assert.True(t, menuOpen(v.nav().Body.String()), "state persists")

	rec = v.event("/ui/menu", nil)
	assert.False(t, menuOpen(rec.Body.String()), "toggling twice closes the menu")
	assert.Contains(t, rec.Body.String(), `aria-expanded="false"`)
}

func TestScrollEvents(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()

	for _, tt := range []struct {
		offset string
		want   bool
	}{
		{"0", false},
		{"120", true},
		{"10", false},
		{"50", false},
		{"51", true},
		{"50.5", true},
		{"-30", false},
		{"not-a-number", false},
		{"", false},
	} {
		rec := v.event("/ui/scroll", url.Values{"offset": {tt.offset}})
		require.Equal(t, http.StatusOK, rec.Code, tt.offset)
		assert.Equal(t, tt.want, scrolled(rec.Body.String()), "offset %q", tt.offset)
		assert.Empty(t, rec.Header().Get("HX-Reswap"))
	}
}

func TestScrollKeepsMenu(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()
	v.event("/ui/menu", nil)

	rec := v.event("/ui/scroll", url.Values{"offset": {"200"}})
	assert.True(t, scrolled(rec.Body.String()))
	assert.True(t, menuOpen(rec.Body.String()))
}

func TestNavigateClosesMenuAndScrolls(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()
	require.True(t, menuOpen(v.event("/ui/menu", nil).Body.String()))

	rec := v.event("/ui/navigate/publications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("HX-Reswap"), "show:#publications:top")
	assert.False(t, menuOpen(rec.Body.String()))
	assert.False(t, menuOpen(v.nav().Body.String()))
}

func TestNavigateEveryTarget(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()
	for _, target := range []string{"home", "about", "research", "publications", "contact"} {
		rec := v.event("/ui/navigate/"+target, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("HX-Reswap"), "show:#"+target+":top")
	}
}

func TestNavigateUnknownTarget(t *testing.T) {
	_, h, logs := newTestSite(t)
	v := newVisitor(t, h)
	v.load()
	v.event("/ui/menu", nil)

	rec := v.event("/ui/navigate/teaching", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Reswap"))
	assert.False(t, menuOpen(rec.Body.String()))
	assert.Equal(t, 1, logs.FilterMessage("navigation to unknown section").Len())
}

func TestPageLoadResetsState(t *testing.T) {
	_, h, _ := newTestSite(t)
	v := newVisitor(t, h)
	v.load()
	v.event("/ui/menu", nil)
	v.event("/ui/scroll", url.Values{"offset": {"300"}})
	body := v.nav().Body.String()
	require.True(t, menuOpen(body))
	require.True(t, scrolled(body))

	body = v.load().Body.String()
	assert.False(t, menuOpen(body))
	assert.False(t, scrolled(body))

	body = v.nav().Body.String()
	assert.False(t, menuOpen(body))
	assert.False(t, scrolled(body))
}

func TestVisitorsAreIsolated(t *testing.T) {
	_, h, _ := newTestSite(t)
	a, b := newVisitor(t, h), newVisitor(t, h)
	a.load()
	b.load()
	a.event("/ui/menu", nil)
	assert.True(t, menuOpen(a.nav().Body.String()))
	assert.False(t, menuOpen(b.nav().Body.String()))
}

func TestHealthz(t *testing.T) {
	_, h, _ := newTestSite(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	_, h, _ := newTestSite(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "@keyframes fade-in")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/portrait.svg", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotFound(t *testing.T) {
	_, h, logs := newTestSite(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teaching", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
	assert.Equal(t, 1, logs.FilterMessage("request rejected").Len())

	req := httptest.NewRequest(http.MethodGet, "/teaching", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "#ui-error", rec.Header().Get("HX-Retarget"))
	assert.Contains(t, rec.Body.String(), `role="alert"`)
}

func TestHandleError(t *testing.T) {
	s, _, logs := newTestSite(t)

	rec := httptest.NewRecorder()
	s.handleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), HTTPError{Code: http.StatusTeapot, Message: "short and stout"})
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Body.String(), "short and stout")

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ui/menu", nil)
	req.Header.Set("HX-Request", "true")
	s.handleError(rec, req, errors.New("database on fire"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database on fire")
	assert.Equal(t, "innerHTML", rec.Header().Get("HX-Reswap"))
	assert.Equal(t, 1, logs.FilterMessage("request failed").FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRequestLogging(t *testing.T) {
	_, h, logs := newTestSite(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, false, fields["htmx"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestNewCloseDoesNotLeak(t *testing.T) {
	for range 20 {
		s, err := New(testConfig(), zap.NewNop())
		require.NoError(t, err)
		assert.Same(t, s.store, s.sessions.Store)
		s.Close()
	}
	goleak.VerifyNone(t)
}

func TestIndexLandmarksReportsMissing(t *testing.T) {
	_, err := indexLandmarks(context.Background(), templ.Raw(`<section id="home"></section><section id="contact"></section>`))
	assert.EqualError(t, err, "page has no landmark for about, research, publications")
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := testConfig()
	cfg.Site.Theme = "neon"
	_, err := New(cfg, zap.NewNop())
	assert.ErrorContains(t, err, `unknown theme "neon"`)
}

func TestSlateTheme(t *testing.T) {
	cfg := testConfig()
	cfg.Site.Theme = "slate"
	s, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	h, err := s.Handler()
	require.NoError(t, err)

	body := newVisitor(t, h).load().Body.String()
	assert.Contains(t, body, `src="/static/portrait.svg"`)
	assert.Contains(t, body, `data-theme="slate"`)
}

func TestRoutes(t *testing.T) {
	s, _, _ := newTestSite(t)
	routes, err := s.Routes()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"GET    /  Prof. T. Madhusudana Reddy",
		"POST   /ui/menu  Toggle menu",
		"POST   /ui/scroll  Report scroll",
		"POST   /ui/navigate/{target}  Navigate",
		"GET    /healthz  Health",
		"GET    /static/*  Assets",
	}, routes)
}

func TestRenderStatic(t *testing.T) {
	s, _, _ := newTestSite(t)
	var sb strings.Builder
	require.NoError(t, s.RenderStatic(context.Background(), &sb))
	out := sb.String()
	assert.NotContains(t, out, "hx-post")
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `href="#publications"`)
	assert.Contains(t, out, "© 2030")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _, _ := newTestSite(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
