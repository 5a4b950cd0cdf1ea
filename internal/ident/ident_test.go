package ident

import (
	"regexp"
	"testing"
)

func TestUUIDGenerator_Forms(t *testing.T) {
	gen := NewUUIDGenerator()

	tests := []struct {
		name    string
		scope   Scope
		pattern string
	}{
		{"wiki page", ScopeWikiPage, `^g[0-9a-f]{32}$`},
		{"resource", ScopeResource, `^g[0-9a-f]{32}$`},
		{"manifest", ScopeManifest, `^g[0-9a-f]{32}$`},
		{"course entity", ScopeCourseEntity, `^g[0-9a-f]{32}$`},
		{"module", ScopeModule, `^m_[0-9a-f]{8}$`},
		{"item", ScopeItem, `^i_[0-9a-f]{8}$`},
		{"organization", ScopeOrganization, `^scorm_package_[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := gen.NewID(tt.scope)
			if !regexp.MustCompile(tt.pattern).MatchString(id) {
				t.Errorf("expected id matching %s, got %q", tt.pattern, id)
			}
		})
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID(ScopeWikiPage)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSequence_Deterministic(t *testing.T) {
	a := NewSequence()
	b := NewSequence()
	for i := 0; i < 10; i++ {
		scope := Scope(i % 7)
		got, want := a.NewID(scope), b.NewID(scope)
		if got != want {
			t.Fatalf("sequences diverged at step %d: %q vs %q", i, got, want)
		}
	}
}

func TestSequence_FirstIDs(t *testing.T) {
	s := NewSequence()
	if id := s.NewID(ScopeWikiPage); id != "g00000000000000000000000000000001" {
		t.Errorf("unexpected first wiki id: %q", id)
	}
	if id := s.NewID(ScopeModule); id != "m_00000000" {
		t.Errorf("unexpected module id: %q", id)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Unit 1 - Intro", "unit-1-intro"},
		{"Hello, World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"MixedCASE Title", "mixedcase-title"},
		{"---leading and trailing---", "leading-and-trailing"},
		{"ümläuts & symbols ©", "mluts-symbols"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Unit 1 - Intro", "Hello, World!", "a  b  c", "UPPER"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
