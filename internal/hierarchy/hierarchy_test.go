package hierarchy

import (
	"testing"

	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

func section(id, name string) tincan.Activity {
	return tincan.Activity{ID: id, Name: name, Kind: tincan.KindSection}
}

func block(id, name string) tincan.Activity {
	return tincan.Activity{ID: id, Name: name, Kind: tincan.KindBlock}
}

func pageTitles(pages []Page) []string {
	titles := make([]string, len(pages))
	for i, p := range pages {
		titles[i] = p.Title
	}
	return titles
}

func TestPositional_GroupsByPosition(t *testing.T) {
	layout := Positional{}.Build([]tincan.Activity{
		section("s1", "Unit 1"),
		block("b1", "Intro"),
		block("b2", "Quiz"),
		section("s2", "Unit 2"),
		block("b3", "Recap"),
	})

	if len(layout.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(layout.Modules))
	}
	if layout.Modules[0].Title != "Unit 1" {
		t.Errorf("expected first module 'Unit 1', got %q", layout.Modules[0].Title)
	}
	got := pageTitles(layout.Modules[0].Pages)
	if len(got) != 2 || got[0] != "Intro" || got[1] != "Quiz" {
		t.Errorf("expected pages [Intro Quiz], got %v", got)
	}
	if layout.Modules[1].Title != "Unit 2" {
		t.Errorf("expected second module 'Unit 2', got %q", layout.Modules[1].Title)
	}
	got = pageTitles(layout.Modules[1].Pages)
	if len(got) != 1 || got[0] != "Recap" {
		t.Errorf("expected pages [Recap], got %v", got)
	}
	if len(layout.Standalone) != 0 {
		t.Errorf("expected no standalone pages, got %v", layout.Standalone)
	}
}

func TestPositional_DropsLeadingBlocks(t *testing.T) {
	layout := Positional{}.Build([]tincan.Activity{
		block("b0", "Orphan"),
		section("s1", "Unit 1"),
		block("b1", "A"),
	})

	if len(layout.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(layout.Modules))
	}
	for _, p := range layout.Modules[0].Pages {
		if p.Title == "Orphan" {
			t.Error("orphan block must not appear in any module")
		}
	}
	if len(layout.Standalone) != 0 {
		t.Errorf("positional grouping has no standalone pages, got %v", layout.Standalone)
	}
}

func TestPositional_Empty(t *testing.T) {
	layout := Positional{}.Build(nil)
	if len(layout.Modules) != 0 || len(layout.Standalone) != 0 {
		t.Errorf("expected empty layout, got %+v", layout)
	}
}

func TestPrefixMatch_AssignsByNamePrefix(t *testing.T) {
	layout := PrefixMatch{}.Build([]tincan.Activity{
		section("s1", "Module A"),
		block("b1", "Module A - Lesson 1"),
		block("b2", "Unrelated Lesson"),
	})

	if len(layout.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(layout.Modules))
	}
	mod := layout.Modules[0]
	if mod.Title != "Module A" {
		t.Errorf("expected module 'Module A', got %q", mod.Title)
	}
	if len(mod.Pages) != 1 || mod.Pages[0].Title != "Module A - Lesson 1" {
		t.Errorf("expected page 'Module A - Lesson 1', got %v", pageTitles(mod.Pages))
	}
	if mod.SelfContent {
		t.Error("module without a same-id block must not be self-content")
	}

	if len(layout.Standalone) != 1 || layout.Standalone[0].Title != "Unrelated Lesson" {
		t.Errorf("expected standalone page 'Unrelated Lesson', got %v", pageTitles(layout.Standalone))
	}
}

func TestPrefixMatch_FirstMatchWins(t *testing.T) {
	// Two sections share a prefix; the first in list order takes the
	// block even though the second matches more of its name.
	layout := PrefixMatch{}.Build([]tincan.Activity{
		section("s1", "Module"),
		section("s2", "Module A"),
		block("b1", "Module A - Lesson 1"),
	})

	if len(layout.Modules) != 1 {
		t.Fatalf("expected 1 materialized module, got %d", len(layout.Modules))
	}
	if layout.Modules[0].SourceID != "s1" {
		t.Errorf("expected block assigned to first matching section, got %q", layout.Modules[0].SourceID)
	}
}

func TestPrefixMatch_EmptySectionDropped(t *testing.T) {
	layout := PrefixMatch{}.Build([]tincan.Activity{
		section("s1", "Empty Unit"),
		block("b1", "Unrelated"),
	})

	if len(layout.Modules) != 0 {
		t.Errorf("section with no children must not materialize, got %+v", layout.Modules)
	}
	if len(layout.Standalone) != 1 {
		t.Errorf("expected 1 standalone page, got %d", len(layout.Standalone))
	}
}

func TestPrefixMatch_SelfContentSection(t *testing.T) {
	// A section that also exists as a standalone block with the same id
	// materializes with a self-referencing item and absorbs the block.
	layout := PrefixMatch{}.Build([]tincan.Activity{
		section("x1", "Overview"),
		block("x1", "Standalone Overview Content"),
	})

	if len(layout.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(layout.Modules))
	}
	if !layout.Modules[0].SelfContent {
		t.Error("expected self-content module")
	}
	if len(layout.Standalone) != 0 {
		t.Errorf("same-id block must fold into the module, got %v", pageTitles(layout.Standalone))
	}
}
