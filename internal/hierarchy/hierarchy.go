// Package hierarchy groups the flat activity list into the two-level
// module/page structure the target manifests encode.
package hierarchy

import "github.com/smrice3/rise-scorm-creator/internal/tincan"

// Page is one block activity promoted into a module, or a standalone
// activity outside any module. Identifier and Slug are assigned by the
// pipeline once per run so the manifest and the rendered file agree.
type Page struct {
	Title       string
	SourceID    string
	Description string
	Identifier  string
	Slug        string
}

// Module is one grouping unit derived from a section activity.
type Module struct {
	Title    string
	SourceID string
	Pages    []Page

	// SelfContent marks a section that also exists as a standalone
	// block with the same id; its manifest item references its own
	// resource in addition to containing child items.
	SelfContent bool
}

// Layout is the grouped result. Standalone pages only occur under the
// prefix-matching strategy.
type Layout struct {
	Modules    []Module
	Standalone []Page
}

// Strategy turns the ordered activity list into a Layout. The grouping
// heuristics differ per target format and are deliberately swappable.
type Strategy interface {
	Build(activities []tincan.Activity) Layout
}

func pageFrom(a tincan.Activity) Page {
	return Page{
		Title:       a.Name,
		SourceID:    a.ID,
		Description: a.Description,
	}
}
