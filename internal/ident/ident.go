// Package ident allocates manifest identifiers and filename slugs.
package ident

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Scope selects the identifier form for a given manifest entity.
type Scope int

const (
	ScopeResource Scope = iota
	ScopeItem
	ScopeModule
	ScopeWikiPage
	ScopeOrganization
	ScopeManifest
	ScopeCourseEntity
)

// Generator produces identifiers. Uniqueness rests on token entropy
// alone; no registry is kept, which is fine for course sizes up to low
// thousands of entries.
type Generator interface {
	NewID(scope Scope) string
}

// UUIDGenerator is the production Generator, backed by random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the default random generator.
func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

// NewID returns a fresh scope-tagged identifier.
func (UUIDGenerator) NewID(scope Scope) string {
	return tagged(scope, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Sequence is a deterministic Generator for tests and golden-file
// comparisons. Not safe for concurrent use.
type Sequence struct {
	n int
}

// NewSequence returns a generator that counts up from 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID(scope Scope) string {
	s.n++
	return tagged(scope, fmt.Sprintf("%032x", s.n))
}

// tagged applies the scope-specific tag to a 32-hex token.
func tagged(scope Scope, hex32 string) string {
	switch scope {
	case ScopeModule:
		return "m_" + hex32[:8]
	case ScopeItem:
		return "i_" + hex32[:8]
	case ScopeOrganization:
		return "scorm_package_" + hex32[:8]
	default:
		// Canvas-style "g" ids for wiki pages, resources, manifests
		// and course entities.
		return "g" + hex32
	}
}

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapse = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a filesystem- and URL-safe filename stem from a
// title. It is pure and idempotent: the composer and the renderer must
// arrive at the same filename for the same title within one run.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
