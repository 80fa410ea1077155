package view

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/jackielii/facultypage/internal/controller"
	"github.com/jackielii/facultypage/internal/profile"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
	// smooth scrolling for show: modifiers; error replies are swapped so the
	// error fragment reaches the page
	htmxConfig = `{"scrollBehavior":"smooth","responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":true}]}`
)

// ErrorSlotID is where htmx error fragments are swapped in.
const ErrorSlotID = "ui-error"

const container = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"

const (
	navScrolled = "bg-white/95 backdrop-blur-md shadow-lg"
	navResting  = "bg-white/80 backdrop-blur-sm shadow-sm"
)

func navSurface(st controller.UIState) string {
	if st.Scrolled {
		return navScrolled
	}
	return navResting
}

func menuLabel(open bool) string {
	if open {
		return "Close menu"
	}
	return "Open menu"
}

// scrollReporter posts the window offset on every scroll event. The offset is
// not debounced.
func scrollReporter(route string) templ.OrderedAttributes {
	if route == "" {
		return nil
	}
	return templ.OrderedAttributes{
		{Key: "hx-post", Value: route},
		{Key: "hx-trigger", Value: "scroll from:window"},
		{Key: "hx-vals", Value: "js:{offset: window.scrollY}"},
		{Key: "hx-target", Value: "this"},
		{Key: "hx-swap", Value: "outerHTML"},
	}
}

func hxPost(route string) templ.OrderedAttributes {
	if route == "" {
		return nil
	}
	return templ.OrderedAttributes{
		{Key: "hx-post", Value: route},
		{Key: "hx-target", Value: "#" + NavID},
		{Key: "hx-swap", Value: "outerHTML"},
	}
}

func desktopLink(acc string) string {
	return cls("text-gray-700 transition-colors duration-200 relative group", "hover:text-"+acc+"-600")
}

func mobileLink(acc string) string {
	return cls("block w-full text-left text-gray-700 py-2 px-3 rounded-md transition-colors",
		"hover:text-"+acc+"-600", "hover:bg-"+acc+"-50")
}

func heroContact(acc string) string {
	return cls("px-6 py-3 border-2 rounded-lg hover:text-white transition-all duration-200 shadow-md hover:shadow-lg transform hover:-translate-y-0.5",
		"border-"+acc+"-600", "text-"+acc+"-600", "hover:bg-"+acc+"-600")
}

func cls(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// delay staggers the fade-in of the i-th card.
func delay(i int) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("animation-delay: %dms;", i*100))
}

func summaryMargin(i, n int) string {
	if i == n-1 {
		return "mb-6"
	}
	return "mb-4"
}

// addressLine styles the office address: the department heads it and the
// last two lines name the institution.
func addressLine(i, n int) string {
	switch {
	case i == 0:
		return "font-bold mb-3 text-lg text-gray-900"
	case i == n-1:
		return "font-semibold text-gray-900"
	case i == n-2:
		return "mb-1 font-semibold text-gray-900"
	default:
		return "mb-1"
	}
}

var channelStyle = map[profile.ChannelKind]struct {
	color, glyph, link string
}{
	profile.ChannelPhone:   {"blue", iconPhone, "font-semibold text-lg"},
	profile.ChannelEmail:   {"green", iconMail, "font-semibold break-all"},
	profile.ChannelProfile: {"purple", iconExternalLink, "font-semibold"},
}

func copyright(ctx context.Context, name string) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year(ctx), name)
}

func statusTitle(code int) string {
	return strconv.Itoa(code) + " " + http.StatusText(code)
}
