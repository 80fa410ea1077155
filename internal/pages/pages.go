package pages

import (
	"fmt"
	"net/http"
	"reflect"
)

// MiddlewareFunc wraps the handler of a page node.
type MiddlewareFunc = func(http.Handler, *PageNode) http.Handler

// PageConfig picks the component method name to render for a request.
type PageConfig = func(*http.Request) (string, error)

// Pages mounts page trees onto routers.
type Pages struct {
	onError       func(http.ResponseWriter, *http.Request, error)
	middlewares   []MiddlewareFunc
	defaultConfig PageConfig
}

// Option configures a [Pages].
type Option func(*Pages)

// New creates a Pages. Without options errors answer 500 and every request
// renders the Page component.
func New(options ...Option) *Pages {
	sp := &Pages{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

// WithErrorHandler sets the handler for errors from page methods, component
// rendering and error returning ServeHTTP methods.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(sp *Pages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page. The first one listed
// runs first.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(sp *Pages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

// WithDefaultPageConfig sets the component selector used by pages that don't
// declare a PageConfig method.
func WithDefaultPageConfig(config PageConfig) Option {
	return func(sp *Pages) {
		sp.defaultConfig = config
	}
}

// MountPages parses the tree rooted at page and registers every node that can
// serve requests. args are services injected into page methods by type.
func (sp *Pages) MountPages(router Router, page any, route, title string, args ...any) error {
	pc, err := parsePageTree(route, title, page, args...)
	if err != nil {
		return err
	}
	for node := range pc.root.All() {
		if err := sp.registerPageItem(router, pc, node); err != nil {
			return err
		}
	}
	return nil
}

func (sp *Pages) registerPageItem(router Router, pc *parseContext, node *PageNode) error {
	if node.Route == "" {
		return fmt.Errorf("page item route is empty: %s", node.Name)
	}
	handler, err := sp.buildHandler(pc, node)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	var chain []MiddlewareFunc
	chain = append(chain, withPcCtx(pc))
	chain = append(chain, sp.middlewares...)
	for _, n := range node.ancestors() {
		if n.Middlewares == nil {
			continue
		}
		mws, err := sp.pageMiddlewares(pc, n)
		if err != nil {
			return err
		}
		chain = append(chain, mws...)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler, node)
	}
	router.HandleMethod(node.Method, node.FullRoute(), handler)
	return nil
}

func (sp *Pages) pageMiddlewares(pc *parseContext, node *PageNode) ([]MiddlewareFunc, error) {
	res, err := pc.callMethod(node, node.Middlewares)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("middlewares method on %s did not return single result", node.Name)
	}
	mws, ok := res[0].Interface().([]MiddlewareFunc)
	if !ok {
		return nil, fmt.Errorf("middlewares method on %s did not return []MiddlewareFunc", node.Name)
	}
	return mws, nil
}

func (sp *Pages) buildHandler(pc *parseContext, node *PageNode) (http.Handler, error) {
	if node.Handler != nil {
		return sp.asHandler(pc, node)
	}
	if len(node.Components) == 0 {
		return nil, nil
	}
	if _, ok := node.Components["Page"]; !ok {
		return nil, fmt.Errorf("page item %s does not have a Page component", node.Name)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		comp, err := sp.findComponent(pc, node, r)
		if err != nil {
			sp.onError(w, r, err)
			return
		}
		bw := newBuffered(w)
		if err := comp.Render(r.Context(), bw); err != nil {
			bw.discard()
			sp.onError(w, r, fmt.Errorf("render %s: %w", node.Name, err))
			return
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		_ = bw.close()
	}), nil
}

func (sp *Pages) findComponent(pc *parseContext, node *PageNode, r *http.Request) (component, error) {
	name := "Page"
	switch {
	case node.Config != nil:
		res, err := pc.callMethod(node, node.Config, reflect.ValueOf(r))
		if err != nil {
			return nil, err
		}
		res, err = extractError(res)
		if err != nil {
			return nil, fmt.Errorf("PageConfig on %s: %w", node.Name, err)
		}
		if len(res) != 1 || res[0].Kind() != reflect.String {
			return nil, fmt.Errorf("PageConfig on %s must return a component name", node.Name)
		}
		name = res[0].String()
	case sp.defaultConfig != nil:
		n, err := sp.defaultConfig(r)
		if err != nil {
			return nil, err
		}
		name = n
	}
	method, ok := node.Components[name]
	if !ok {
		method = node.Components["Page"]
		name = "Page"
	}
	props, err := sp.getProps(pc, node, name, r)
	if err != nil {
		return nil, err
	}
	return pc.callComponentMethod(node, &method, props...)
}

// getProps calls <name>Props, falling back to Props. Its results, minus a
// trailing error, become the component method's arguments.
func (sp *Pages) getProps(pc *parseContext, node *PageNode, name string, r *http.Request) ([]reflect.Value, error) {
	method, ok := node.Props[name+"Props"]
	if !ok {
		method, ok = node.Props["Props"]
	}
	if !ok {
		return nil, nil
	}
	res, err := pc.callMethod(node, &method, reflect.ValueOf(r))
	if err != nil {
		return nil, err
	}
	res, err = extractError(res)
	if err != nil {
		return nil, fmt.Errorf("error calling props method %s: %w", formatMethod(&method), err)
	}
	return res, nil
}

// asHandler adapts a ServeHTTP method. Plain http.Handler values are used as
// is; methods taking injected services or returning an error are called through
// reflection with a buffered writer so a failed handler leaves no output.
func (sp *Pages) asHandler(pc *parseContext, node *PageNode) (http.Handler, error) {
	if h, ok := node.Value.Interface().(http.Handler); ok && node.Handler.Type.NumIn() == 3 {
		return h, nil
	}
	method := node.Handler
	if method.Type.NumIn() < 3 {
		return nil, fmt.Errorf("ServeHTTP on %s must accept http.ResponseWriter and *http.Request", node.Name)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := newBuffered(w)
		res, err := pc.callMethod(node, method, reflect.ValueOf(bw).Convert(responseWriterType), reflect.ValueOf(r))
		if err != nil {
			bw.discard()
			sp.onError(w, r, err)
			return
		}
		if _, err := extractError(res); err != nil {
			bw.discard()
			sp.onError(w, r, err)
			return
		}
		_ = bw.close()
	}), nil
}

var responseWriterType = reflect.TypeOf((*http.ResponseWriter)(nil)).Elem()
