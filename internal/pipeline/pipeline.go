// Package pipeline runs one conversion end to end: extract, group,
// render, compose, archive. The same pipeline serves both target
// dialects.
package pipeline

import (
	"fmt"
	"time"

	"github.com/smrice3/rise-scorm-creator/internal/hierarchy"
	"github.com/smrice3/rise-scorm-creator/internal/ident"
	"github.com/smrice3/rise-scorm-creator/internal/manifest"
	"github.com/smrice3/rise-scorm-creator/internal/pack"
	"github.com/smrice3/rise-scorm-creator/internal/render"
	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

// Dialect selects the target packaging format.
type Dialect int

const (
	Scorm12 Dialect = iota
	Imscc
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case Scorm12:
		return "scorm12"
	case Imscc:
		return "imscc"
	default:
		return "unknown"
	}
}

// Request is the immutable configuration for one conversion run.
type Request struct {
	Dialect         Dialect
	BaseURL         string                  // required; used verbatim in iframe src
	URLFormat       string                  // IMSCC only; defaults to "lessons"
	AdditionalPages []render.AdditionalPage // IMSCC only
	SchemaDir       string                  // SCORM only; where the XSD files live
	IDs             ident.Generator         // defaults to the random generator
	Now             time.Time               // defaults to time.Now()
}

// Result carries everything one conversion produced.
type Result struct {
	Course     tincan.CourseInfo
	Activities []tincan.Activity
	Files      map[string][]byte
	Archive    []byte
	Filename   string
	Warnings   []string
}

const timestampLayout = "20060102150405"

// Convert runs the whole pipeline over one TinCan XML document. All
// fatal errors abort before any archive bytes exist; warnings accumulate
// on the result.
func Convert(req Request, xmlData []byte) (*Result, error) {
	if req.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	gen := req.IDs
	if gen == nil {
		gen = ident.NewUUIDGenerator()
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	course, activities, err := tincan.Extract(xmlData)
	if err != nil {
		return nil, fmt.Errorf("failed to read TinCan XML: %w", err)
	}

	res := &Result{
		Course:     course,
		Activities: activities,
	}

	switch req.Dialect {
	case Scorm12:
		err = convertScorm(req, gen, res)
	case Imscc:
		err = convertImscc(req, gen, res)
	default:
		return nil, fmt.Errorf("unknown dialect: %d", req.Dialect)
	}
	if err != nil {
		return nil, err
	}

	archive, err := pack.Zip(res.Files)
	if err != nil {
		return nil, err
	}
	res.Archive = archive
	res.Filename = outputFilename(req.Dialect, course, now)
	return res, nil
}

func convertScorm(req Request, gen ident.Generator, res *Result) error {
	layout := hierarchy.PrefixMatch{}.Build(res.Activities)

	files := make(map[string][]byte)
	for _, a := range res.Activities {
		page, err := render.ScormPage(a.Name, a.ID, req.BaseURL)
		if err != nil {
			return err
		}
		files[a.ID+".html"] = []byte(page)
	}

	orgID := gen.NewID(ident.ScopeOrganization)
	manifestXML, err := manifest.ComposeScorm(orgID, res.Course, res.Activities, layout)
	if err != nil {
		return err
	}
	files["imsmanifest.xml"] = manifestXML

	schemaDir := req.SchemaDir
	if schemaDir == "" {
		schemaDir = "."
	}
	schemas, warnings := pack.CollectSchemas(schemaDir)
	for name, data := range schemas {
		files[name] = data
	}
	res.Warnings = append(res.Warnings, warnings...)

	res.Files = files
	return nil
}

func convertImscc(req Request, gen ident.Generator, res *Result) error {
	selector := req.URLFormat
	if selector == "" {
		selector = render.SelectorLessons
	}
	if !render.ValidSelector(selector) {
		return fmt.Errorf("invalid URL format: %s (supported: blocks, lessons, sections)", selector)
	}

	layout := hierarchy.Positional{}.Build(res.Activities)

	// Stamp identifiers and slugs once so the manifest cross-references
	// and the rendered files cannot drift apart.
	for mi := range layout.Modules {
		for pi := range layout.Modules[mi].Pages {
			page := &layout.Modules[mi].Pages[pi]
			page.Identifier = gen.NewID(ident.ScopeWikiPage)
			page.Slug = ident.Slugify(page.Title)
		}
	}

	files := make(map[string][]byte)
	for _, mod := range layout.Modules {
		for _, page := range mod.Pages {
			doc, err := render.WikiPage(page.Title, page.Identifier, page.SourceID, req.BaseURL, selector)
			if err != nil {
				return err
			}
			files["wiki_content/"+page.Slug+".html"] = []byte(doc)
		}
	}
	for _, extra := range req.AdditionalPages {
		files["wiki_content/"+extra.Filename] = extra.Content
	}

	composed, err := manifest.ComposeImscc(gen, res.Course, layout, req.AdditionalPages)
	if err != nil {
		return err
	}
	for p, data := range composed {
		files[p] = data
	}

	res.Files = files
	return nil
}

// outputFilename embeds a generation timestamp, plus the slugified
// course title for cartridges.
func outputFilename(d Dialect, course tincan.CourseInfo, now time.Time) string {
	stamp := now.Format(timestampLayout)
	if d == Imscc {
		slug := ident.Slugify(course.Title)
		if slug == "" {
			slug = "course"
		}
		return fmt.Sprintf("%s-%s.imscc", slug, stamp)
	}
	return fmt.Sprintf("scorm_package_%s.zip", stamp)
}
