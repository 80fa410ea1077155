package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is an interface for registering HTTP routes.
// Routes arrive fully joined, so implementations need no grouping support.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts a chi router.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == methodAll || method == "" {
		r.router.Handle(path, handler)
		return
	}
	r.router.Method(method, path, handler)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
