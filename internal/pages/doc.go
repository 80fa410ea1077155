// Package pages provides a way to define routing using struct tags and methods.
// A tree of page structs is mounted onto a [Router]; each page renders through
// component methods (Page, or the method named after the HX-Target of an htmx
// request) or handles requests itself through a ServeHTTP method. Services passed
// to [Pages.MountPages] are injected into page methods by type.
package pages
