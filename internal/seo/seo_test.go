package seo

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackielii/facultypage/internal/profile"
)

func TestPerson(t *testing.T) {
	p := profile.Default()
	var got map[string]any
	if err := json.Unmarshal([]byte(JSON(Person(p, "https://example.edu/"))), &got); err != nil {
		t.Fatal(err)
	}
	if got["@type"] != "Person" || got["name"] != p.Person.Name {
		t.Errorf("unexpected person: %v", got)
	}
	wantSameAs := []any{profile.ScholarURL, profile.UniversityURL}
	if diff := cmp.Diff(wantSameAs, got["sameAs"]); diff != "" {
		t.Errorf("sameAs mismatch (-want +got):\n%s", diff)
	}
	if n := len(got["knowsAbout"].([]any)); n != 6 {
		t.Errorf("knowsAbout has %d entries, want 6", n)
	}
}

func TestForProfile(t *testing.T) {
	m := ForProfile(profile.Default(), "")
	if m.Canonical != "" {
		t.Errorf("canonical = %q, want empty", m.Canonical)
	}
	want := "Professor of Chemistry, Department of Chemistry, S. V. U. College of Sciences, Sri Venkateswara University. Ph.D., PDF (France), UGC-Raman Fellow (USA)."
	if m.Description != want {
		t.Errorf("description = %q", m.Description)
	}
	if m.JSONLD == "" {
		t.Error("missing JSON-LD")
	}
}

func TestJSONError(t *testing.T) {
	if got := JSON(func() {}); got != "" {
		t.Errorf("JSON(func) = %q, want empty", got)
	}
}
