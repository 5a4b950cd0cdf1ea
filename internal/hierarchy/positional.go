package hierarchy

import "github.com/smrice3/rise-scorm-creator/internal/tincan"

// Positional groups activities by document position: each section opens
// a new module and every following block belongs to it until the next
// section. Used for the IMSCC target.
type Positional struct{}

// Build runs a single left-to-right sweep over the activity list.
// Blocks that appear before the first section have no module to attach
// to and are dropped.
func (Positional) Build(activities []tincan.Activity) Layout {
	var layout Layout
	var current *Module

	for _, a := range activities {
		switch a.Kind {
		case tincan.KindSection:
			layout.Modules = append(layout.Modules, Module{
				Title:    a.Name,
				SourceID: a.ID,
			})
			current = &layout.Modules[len(layout.Modules)-1]

		case tincan.KindBlock:
			if current == nil {
				continue
			}
			current.Pages = append(current.Pages, pageFrom(a))
		}
	}

	return layout
}
