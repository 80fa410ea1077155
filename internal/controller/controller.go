// Package controller holds the page controller: the transient UI state of one
// visitor and the handlers that translate navigation gestures and scroll
// position into that state and into scroll requests on the document.
package controller

// ScrollThreshold is the vertical offset past which the page counts as scrolled.
const ScrollThreshold = 50

// UIState is the transient state of the page. The zero value is the state at
// mount: menu closed, not scrolled.
type UIState struct {
	MenuOpen bool
	Scrolled bool
}

// Landmark is an identified anchor in the rendered document.
type Landmark struct {
	ID       string
	Tag      string
	Position int
}

// Document is the rendered page as seen by the controller.
type Document interface {
	// Landmark finds the element whose identifier is id.
	Landmark(id string) (Landmark, bool)
	// ScrollIntoView asks the host to smooth scroll to l. The request is fire
	// and forget.
	ScrollIntoView(l Landmark)
}

// Controller mutates a UIState in response to page events. It is not safe for
// concurrent use; each event is handled to completion before the next.
type Controller struct {
	doc   Document
	state UIState
}

// New mounts a controller over doc with the initial state.
func New(doc Document) *Controller {
	return &Controller{doc: doc}
}

// Restore resumes a controller from a previously saved state.
func Restore(doc Document, state UIState) *Controller {
	return &Controller{doc: doc, state: state}
}

// State returns the current state.
func (c *Controller) State() UIState {
	return c.state
}

// OnScroll records whether offset is past the scroll threshold.
func (c *Controller) OnScroll(offset float64) {
	c.state.Scrolled = offset > ScrollThreshold
}

// ToggleMobileMenu opens a closed menu and closes an open one.
func (c *Controller) ToggleMobileMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
}

// NavigateTo scrolls to the landmark of target and closes the menu. A missing
// landmark is ignored; the menu closes either way. It reports whether a scroll
// was requested.
func (c *Controller) NavigateTo(target NavigationTarget) bool {
	defer func() { c.state.MenuOpen = false }()
	if c.doc == nil {
		return false
	}
	l, ok := c.doc.Landmark(target.String())
	if !ok {
		return false
	}
	c.doc.ScrollIntoView(l)
	return true
}
