package site

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jackielii/facultypage/internal/view"
)

// HTTPError represents an HTTP error with a status code
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
}

// handleError answers a failed request. htmx requests get a fragment swapped
// into the page's error slot, others a full error page.
func (s *Site) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := http.StatusInternalServerError, "Something went wrong. Please try again."
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code, message = httpErr.Code, httpErr.Message
	}

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", code),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Warn("request rejected", fields...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if htmx.IsHTMX(r) {
		err = htmx.NewResponse().
			Retarget("#"+view.ErrorSlotID).
			Reswap(htmx.SwapInnerHTML).
			StatusCode(code).
			RenderTempl(r.Context(), w, view.ErrorFragment(code, message))
	} else {
		w.WriteHeader(code)
		err = view.ErrorPage(code, message).Render(r.Context(), w)
	}
	if err != nil {
		s.logger.Error("rendering error response", zap.Error(err))
	}
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request) {
	s.handleError(w, r, HTTPError{Code: http.StatusNotFound, Message: "Page not found: " + r.URL.Path})
}

func (s *Site) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.handleError(w, r, HTTPError{Code: http.StatusMethodNotAllowed, Message: r.Method + " is not allowed here"})
}
