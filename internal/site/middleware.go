package site

import (
	"net/http"
	"time"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jackielii/facultypage/internal/pages"
	"github.com/jackielii/facultypage/internal/view"
)

// logRequests emits one structured log line per request.
func (s *Site) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Bool("htmx", htmx.IsHTMX(r)),
		)
	})
}

// withClock makes the site clock available to components.
func (s *Site) withClock(next http.Handler, _ *pages.PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(view.WithClock(r.Context(), s.now)))
	})
}

// wrapMiddleware converts a standard middleware to a pages.MiddlewareFunc
func wrapMiddleware(mw func(http.Handler) http.Handler) pages.MiddlewareFunc {
	return func(next http.Handler, _ *pages.PageNode) http.Handler {
		return mw(next)
	}
}
