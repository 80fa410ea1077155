// Package landmark indexes the identified elements of a rendered HTML document
// so navigation can be resolved against what the page actually contains.
package landmark

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/jackielii/facultypage/internal/controller"
)

// Index maps element ids to landmarks. It is immutable after Build.
type Index struct {
	byID  map[string]controller.Landmark
	order []string
}

// Build parses an HTML document and records every element carrying an id.
// When an id repeats, the first element wins.
func Build(r io.Reader) (*Index, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	idx := &Index{byID: make(map[string]controller.Landmark)}
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key != "id" || a.Val == "" {
					continue
				}
				if _, seen := idx.byID[a.Val]; !seen {
					idx.byID[a.Val] = controller.Landmark{ID: a.Val, Tag: n.Data, Position: len(idx.order)}
					idx.order = append(idx.order, a.Val)
				}
				break
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return idx, nil
}

// Landmark looks up an element by id.
func (idx *Index) Landmark(id string) (controller.Landmark, bool) {
	l, ok := idx.byID[id]
	return l, ok
}

// IDs returns the recorded ids in document order.
func (idx *Index) IDs() []string {
	return append([]string(nil), idx.order...)
}

// Missing returns the ids that have no landmark in idx.
func Missing(idx *Index, ids ...string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := idx.byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Recorder is a controller.Document over an Index that remembers the last
// scroll request instead of performing it. The host turns the recorded target
// into a scroll instruction for the browser. Use one Recorder per event.
type Recorder struct {
	*Index
	target *controller.Landmark
}

// Recorder returns a fresh Recorder over idx.
func (idx *Index) Recorder() *Recorder {
	return &Recorder{Index: idx}
}

func (r *Recorder) ScrollIntoView(l controller.Landmark) {
	r.target = &l
}

// Target returns the requested scroll target, if any.
func (r *Recorder) Target() (controller.Landmark, bool) {
	if r.target == nil {
		return controller.Landmark{}, false
	}
	return *r.target, true
}

var _ controller.Document = (*Recorder)(nil)
