// Package seo builds head metadata and structured data for the profile page.
package seo

import (
	"encoding/json"
	"strings"

	"github.com/jackielii/facultypage/internal/profile"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	JSONLD      string
}

// ForProfile derives the page metadata from p. baseURL may be empty, in which
// case no canonical link is emitted.
func ForProfile(p profile.Profile, baseURL string) Meta {
	desc := p.Person.Headline + ", " + strings.Join(p.Person.Affiliation, ", ") + ". " + p.Person.Credentials + "."
	return Meta{
		Title:       p.Person.Name + " | " + p.Person.Headline,
		Description: desc,
		Canonical:   baseURL,
		OG: OpenGraph{
			Title:       p.Person.Name,
			Description: desc,
			Image:       p.Person.Portrait,
			Type:        "profile",
		},
		JSONLD: JSON(Person(p, baseURL)),
	}
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Person returns a schema.org Person payload.
func Person(p profile.Profile, url string) map[string]any {
	m := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "Person",
		"name":      p.Person.Name,
		"jobTitle":  p.Person.Headline,
		"email":     "mailto:" + p.Person.Email,
		"telephone": p.Person.Telephone,
		"worksFor": map[string]any{
			"@type": "CollegeOrUniversity",
			"name":  lastOr(p.Person.Affiliation, ""),
		},
		"knowsAbout": interests(p),
	}
	if url != "" {
		m["url"] = url
	}
	if p.Person.Portrait != "" {
		m["image"] = p.Person.Portrait
	}
	var sameAs []string
	for _, l := range p.Links {
		sameAs = append(sameAs, l.Href)
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

func interests(p profile.Profile) []string {
	out := make([]string, 0, len(p.Research))
	for _, r := range p.Research {
		out = append(out, r.Title)
	}
	return out
}

func lastOr(s []string, def string) string {
	if len(s) == 0 {
		return def
	}
	return s[len(s)-1]
}
