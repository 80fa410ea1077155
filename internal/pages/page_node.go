package pages

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"slices"
	"strings"
)

// PageNode is one page of a mounted tree.
type PageNode struct {
	Name        string
	Title       string
	Method      string
	Route       string
	Value       reflect.Value
	Handler     *reflect.Method
	Config      *reflect.Method
	Components  map[string]reflect.Method
	Props       map[string]reflect.Method
	Middlewares *reflect.Method
	Parent      *PageNode
	Children    []*PageNode
}

// FullRoute joins the routes from the root down to pn.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// All iterates the tree depth first, parents before children.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// ancestors returns the chain from the root down to pn, inclusive.
func (pn *PageNode) ancestors() []*PageNode {
	var chain []*PageNode
	for n := pn; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	slices.Reverse(chain)
	return chain
}

func (pn PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.Route)
	if pn.Handler != nil {
		sb.WriteString("\n  handler: " + formatMethod(pn.Handler))
	}
	if pn.Middlewares != nil {
		sb.WriteString("\n  middlewares: " + formatMethod(pn.Middlewares))
	}
	for _, name := range sortedKeys(pn.Components) {
		m := pn.Components[name]
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(&m))
	}
	for _, name := range sortedKeys(pn.Props) {
		m := pn.Props[name]
		sb.WriteString("\n  props: " + name + " -> " + formatMethod(&m))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		childStr := strings.TrimRight(child.String(), "\n")
		for _, line := range strings.SplitAfter(childStr, "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}

// Routes lists method, full route and title of every node that serves requests.
func (pn *PageNode) Routes() []string {
	var out []string
	for n := range pn.All() {
		if n.Handler == nil && len(n.Components) == 0 {
			continue
		}
		line := fmt.Sprintf("%-6s %s", n.Method, n.FullRoute())
		if n.Title != "" {
			line += "  " + n.Title
		}
		out = append(out, line)
	}
	return out
}

func sortedKeys(m map[string]reflect.Method) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0).String(), method.Name)
}
