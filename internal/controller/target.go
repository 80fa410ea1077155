package controller

import (
	"errors"
	"fmt"
	"strings"
)

// NavigationTarget identifies one section of the profile page.
type NavigationTarget int

const (
	Home NavigationTarget = iota
	About
	Research
	Publications
	Contact
)

var targetNames = [...]string{
	Home:         "home",
	About:        "about",
	Research:     "research",
	Publications: "publications",
	Contact:      "contact",
}

// ErrUnknownTarget is returned by ParseTarget for names outside the fixed set.
var ErrUnknownTarget = errors.New("unknown navigation target")

// Targets returns every target in navigation order.
func Targets() []NavigationTarget {
	return []NavigationTarget{Home, About, Research, Publications, Contact}
}

// ParseTarget maps a section identifier to its target.
func ParseTarget(s string) (NavigationTarget, error) {
	for i, name := range targetNames {
		if name == s {
			return NavigationTarget(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// String is the landmark identifier of the section.
func (t NavigationTarget) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return fmt.Sprintf("NavigationTarget(%d)", int(t))
	}
	return targetNames[t]
}

// Label is the text shown in the navigation bar.
func (t NavigationTarget) Label() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
