package pages

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

type parseContext struct {
	root *PageNode
	args argRegistry
}

// Parse builds the page tree for page without mounting it.
func Parse(page any, route, title string) (*PageNode, error) {
	pc, err := parsePageTree(route, title, page)
	if err != nil {
		return nil, err
	}
	return pc.root, nil
}

func parsePageTree(route, title string, page any, args ...any) (*parseContext, error) {
	pc := &parseContext{args: make(argRegistry)}
	for _, v := range args {
		if err := pc.args.addArg(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	root, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return nil, err
	}
	if title != "" {
		root.Title = title
	}
	pc.root = root
	return pc, nil
}

func (p *parseContext) parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, errors.New("page is nil")
	}
	st := reflect.TypeOf(page) // struct type
	pt := reflect.TypeOf(page) // pointer type
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s is not a struct", st)
	}
	// always hold an addressable pointer so both receiver kinds can be called
	v := reflect.ValueOf(page)
	if v.Kind() != reflect.Ptr {
		pv := reflect.New(st)
		pv.Elem().Set(v)
		v = pv
	}
	item := &PageNode{Value: v, Name: cmp.Or(fieldName, st.Name())}
	item.Method, item.Route, item.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := p.parsePageTree(tag, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", item.Name, err)
		}
		child.Parent = item
		item.Children = append(item.Children, child)
	}

	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			switch {
			case method.Name == "ServeHTTP":
				item.Handler = &method
			case isComponent(&method):
				if item.Components == nil {
					item.Components = make(map[string]reflect.Method)
				}
				item.Components[method.Name] = method
			case strings.HasSuffix(method.Name, "Props"):
				if item.Props == nil {
					item.Props = make(map[string]reflect.Method)
				}
				item.Props[method.Name] = method
			case method.Name == "PageConfig":
				item.Config = &method
			case method.Name == "Middlewares":
				item.Middlewares = &method
			}
		}
	}

	return item, nil
}

// callMethod calls method on the node's value. Positional args are consumed in
// order while they fit the next parameter; every remaining parameter is filled
// with the current *PageNode or a registered service.
func (p *parseContext) callMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) ([]reflect.Value, error) {
	v := pn.Value
	receiver := method.Type.In(0)
	if receiver.Kind() != reflect.Ptr && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if receiver != v.Type() {
		return nil, fmt.Errorf("method %s receiver type mismatch: expected %s, got %s",
			formatMethod(method), receiver, v.Type())
	}
	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = v
	pnv := reflect.ValueOf(pn)
	for i := 1; i < len(in); i++ {
		want := method.Type.In(i)
		if len(args) > 0 && args[0].IsValid() && args[0].Type().AssignableTo(want) {
			in[i] = args[0]
			args = args[1:]
			continue
		}
		switch {
		case want == pnv.Type():
			in[i] = pnv
		case want == pnv.Type().Elem():
			in[i] = pnv.Elem()
		default:
			val, ok := p.args.getArg(want)
			if !ok {
				return nil, fmt.Errorf("method %s requires argument of type %s, but not found",
					formatMethod(method), want)
			}
			in[i] = val
		}
	}
	return method.Func.Call(in), nil
}

func (p *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) (component, error) {
	results, err := p.callMethod(pn, method, args...)
	if err != nil {
		return nil, fmt.Errorf("error calling component method %s: %w", formatMethod(method), err)
	}
	results, err = extractError(results)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("method %s must return a single result, got %d", formatMethod(method), len(results))
	}
	comp, ok := results[0].Interface().(component)
	if !ok {
		return nil, fmt.Errorf("method %s does not return value of type component", formatMethod(method))
	}
	return comp, nil
}

func (p *parseContext) urlFor(v any) (string, error) {
	if f, ok := v.(func(*PageNode) bool); ok {
		for node := range p.root.All() {
			if f(node) {
				return node.FullRoute(), nil
			}
		}
		return "", errors.New("urlfor: no page node matched")
	}
	ptv := pointerType(reflect.TypeOf(v))
	for node := range p.root.All() {
		if pointerType(node.Value.Type()) == ptv {
			return node.FullRoute(), nil
		}
	}
	return "", fmt.Errorf("urlfor: no page node found for %s", ptv)
}

func pointerType(v reflect.Type) reflect.Type {
	if v.Kind() == reflect.Ptr {
		return v
	}
	return reflect.PointerTo(v)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// extractError strips a trailing error result.
func extractError(args []reflect.Value) ([]reflect.Value, error) {
	if len(args) == 0 || args[len(args)-1].Type() != errorType {
		return args, nil
	}
	last := args[len(args)-1]
	args = args[:len(args)-1]
	if last.IsNil() {
		return args, nil
	}
	return args, last.Interface().(error)
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethod, m) {
		method = m
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

type component interface {
	Render(context.Context, io.Writer) error
}

var componentType = reflect.TypeOf((*component)(nil)).Elem()

func isComponent(t *reflect.Method) bool {
	switch t.Type.NumOut() {
	case 1:
		return t.Type.Out(0).Implements(componentType)
	case 2:
		return t.Type.Out(0).Implements(componentType) && t.Type.Out(1) == errorType
	}
	return false
}

func isPromotedMethod(method *reflect.Method) bool {
	// Methods promoted from embedded types, and value methods seen through the
	// pointer method set, are compiler generated wrappers.
	// https://github.com/golang/go/issues/73883
	wPC := method.Func.Pointer()
	wFunc := runtime.FuncForPC(wPC)
	if wFunc == nil {
		return false
	}
	wFile, wLine := wFunc.FileLine(wPC)
	return wFile == "<autogenerated>" && wLine == 1
}
