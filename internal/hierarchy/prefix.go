package hierarchy

import (
	"strings"

	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

// PrefixMatch assigns each block to the first section (in list order)
// whose name is a string prefix of the block's name. Used for the SCORM
// target.
//
// This is a naming-convention heuristic, not a structural parent/child
// pointer from the source graph: sections sharing a common prefix make
// the assignment ambiguous, and the first match wins without scoring by
// prefix length. Kept as-is for compatibility with existing exports.
type PrefixMatch struct{}

// Build matches blocks to sections by name prefix. Unmatched blocks
// become standalone pages. A section is materialized as a module only
// when it has at least one matched child or a standalone block shares
// its id, in which case the module's item also references its own
// resource.
func (PrefixMatch) Build(activities []tincan.Activity) Layout {
	var sections []tincan.Activity
	for _, a := range activities {
		if a.Kind == tincan.KindSection {
			sections = append(sections, a)
		}
	}

	children := make(map[string][]Page)
	var unmatched []Page

	for _, a := range activities {
		if a.Kind != tincan.KindBlock {
			continue
		}
		matched := false
		for _, s := range sections {
			if strings.HasPrefix(a.Name, s.Name) {
				children[s.ID] = append(children[s.ID], pageFrom(a))
				matched = true
				break
			}
		}
		if !matched {
			unmatched = append(unmatched, pageFrom(a))
		}
	}

	standaloneIDs := make(map[string]bool)
	for _, p := range unmatched {
		standaloneIDs[p.SourceID] = true
	}

	var layout Layout
	sectionIDs := make(map[string]bool)
	for _, s := range sections {
		sectionIDs[s.ID] = true
		if len(children[s.ID]) == 0 && !standaloneIDs[s.ID] {
			continue
		}
		layout.Modules = append(layout.Modules, Module{
			Title:       s.Name,
			SourceID:    s.ID,
			Pages:       children[s.ID],
			SelfContent: standaloneIDs[s.ID],
		})
	}

	// Blocks folded into a self-referencing section item are not
	// repeated as standalone pages.
	for _, p := range unmatched {
		if sectionIDs[p.SourceID] {
			continue
		}
		layout.Standalone = append(layout.Standalone, p)
	}

	return layout
}
