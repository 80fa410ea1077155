package pages

import (
	"net/http"
	"strings"
)

// HTMXPageConfig selects the component method from the HX-Target header of an
// htmx request:
//   - HX-Target: "content" -> Content()
//   - HX-Target: "site-nav" -> SiteNav()
//   - no HX-Target or a regular request -> Page()
//
// Use it with WithDefaultPageConfig to serve partials from every page.
func HTMXPageConfig(r *http.Request) (string, error) {
	if isHTMX(r) {
		if hxTarget := r.Header.Get("Hx-Target"); hxTarget != "" {
			return mixedCase(hxTarget), nil
		}
	}
	return "Page", nil
}

// mixedCase turns a kebab-case element id into a method name.
func mixedCase(s string) string {
	if s == "" {
		return s
	}
	if strings.Contains(s, " ") {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}
