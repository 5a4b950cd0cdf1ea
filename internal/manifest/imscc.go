package manifest

import (
	"encoding/xml"

	"github.com/smrice3/rise-scorm-creator/internal/hierarchy"
	"github.com/smrice3/rise-scorm-creator/internal/ident"
	"github.com/smrice3/rise-scorm-creator/internal/render"
	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

const (
	imsccNS            = "http://www.imsglobal.org/xsd/imsccv1p1/imscp_v1p1"
	lomNS              = "http://ltsc.ieee.org/xsd/imsccv1p1/LOM/manifest"
	imsccSchemaLoc     = "http://www.imsglobal.org/xsd/imsccv1p1/imscp_v1p1 http://www.imsglobal.org/profile/cc/ccv1p1/ccv1p1_imscp_v1p2_v1p0.xsd http://ltsc.ieee.org/xsd/imsccv1p1/LOM/manifest http://www.imsglobal.org/profile/cc/ccv1p1/LOM/ccv1p1_lommanifest_v1p0.xsd"
	webContentType     = "webcontent"
	learningAppResType = "associatedcontent/imscc_xmlv1p1/learning-application-resource"

	// organizationID is the fixed organization identifier Canvas
	// exports carry.
	organizationID = "org_1"
	// rootItemID anchors the rooted-hierarchy item tree.
	rootItemID = "LearningModules"

	// AdditionalModuleTitle names the trailing module that collects
	// operator-supplied pages.
	AdditionalModuleTitle = "Additional Content"
)

// SettingsFiles lists the course_settings documents every cartridge
// carries, in emission order.
var SettingsFiles = []string{
	"course_settings.xml",
	"module_meta.xml",
	"assignment_groups.xml",
	"files_meta.xml",
	"media_tracks.xml",
	"context.xml",
}

type imsccManifest struct {
	XMLName        xml.Name           `xml:"manifest"`
	Identifier     string             `xml:"identifier,attr"`
	Xmlns          string             `xml:"xmlns,attr"`
	XmlnsLOM       string             `xml:"xmlns:lomimscc,attr"`
	XmlnsXSI       string             `xml:"xmlns:xsi,attr"`
	SchemaLocation string             `xml:"xsi:schemaLocation,attr"`
	Metadata       imsccMetadata      `xml:"metadata"`
	Organizations  imsccOrganizations `xml:"organizations"`
	Resources      imsccResources     `xml:"resources"`
}

type imsccMetadata struct {
	Schema        string   `xml:"schema"`
	SchemaVersion string   `xml:"schemaversion"`
	LOM           imsccLOM `xml:"lomimscc:lom"`
}

type imsccLOM struct {
	General imsccLOMGeneral `xml:"lomimscc:general"`
}

type imsccLOMGeneral struct {
	Title imsccLOMString `xml:"lomimscc:title"`
}

type imsccLOMString struct {
	Value string `xml:"lomimscc:string"`
}

type imsccOrganizations struct {
	Organization imsccOrganization `xml:"organization"`
}

type imsccOrganization struct {
	Identifier string      `xml:"identifier,attr"`
	Structure  string      `xml:"structure,attr"`
	Root       []imsccItem `xml:"item"`
}

type imsccItem struct {
	Identifier    string      `xml:"identifier,attr"`
	IdentifierRef string      `xml:"identifierref,attr,omitempty"`
	Title         string      `xml:"title,omitempty"`
	Items         []imsccItem `xml:"item,omitempty"`
}

type imsccResources struct {
	Resources []imsccResource `xml:"resource"`
}

type imsccResource struct {
	Identifier string      `xml:"identifier,attr"`
	Type       string      `xml:"type,attr"`
	Href       string      `xml:"href,attr,omitempty"`
	Files      []imsccFile `xml:"file"`
}

type imsccFile struct {
	Href string `xml:"href,attr"`
}

// ImsccFiles is the set of documents ComposeImscc produces, keyed by
// archive-relative path.
type ImsccFiles map[string][]byte

// ComposeImscc builds the IMSCC imsmanifest.xml together with the
// Canvas course_settings companion files. Module and item identifiers
// are allocated once here and shared between the manifest organization
// and module_meta.xml so Canvas can correlate them; page identifierrefs
// are the identifiers the pipeline already stamped on each page.
func ComposeImscc(gen ident.Generator, course tincan.CourseInfo, layout hierarchy.Layout, extras []render.AdditionalPage) (ImsccFiles, error) {
	m := imsccManifest{
		Identifier:     gen.NewID(ident.ScopeManifest),
		Xmlns:          imsccNS,
		XmlnsLOM:       lomNS,
		XmlnsXSI:       xsiNS,
		SchemaLocation: imsccSchemaLoc,
		Metadata: imsccMetadata{
			Schema:        "IMS Common Cartridge",
			SchemaVersion: "1.1.0",
			LOM: imsccLOM{
				General: imsccLOMGeneral{
					Title: imsccLOMString{Value: course.Title},
				},
			},
		},
		Organizations: imsccOrganizations{
			Organization: imsccOrganization{
				Identifier: organizationID,
				Structure:  "rooted-hierarchy",
				Root:       []imsccItem{{Identifier: rootItemID}},
			},
		},
	}

	meta := moduleMeta{
		Xmlns:          canvasNS,
		XmlnsXSI:       xsiNS,
		SchemaLocation: canvasSchemaLoc,
	}

	root := &m.Organizations.Organization.Root[0]
	position := 0

	for _, mod := range layout.Modules {
		position++
		moduleID := gen.NewID(ident.ScopeModule)

		orgItem := imsccItem{
			Identifier: moduleID,
			Title:      mod.Title,
		}
		mm := metaModule{
			Identifier:    moduleID,
			Title:         mod.Title,
			WorkflowState: render.DefaultWorkflowState,
			Position:      position,
		}

		for i, page := range mod.Pages {
			itemID := gen.NewID(ident.ScopeItem)
			href := "wiki_content/" + page.Slug + ".html"

			orgItem.Items = append(orgItem.Items, imsccItem{
				Identifier:    itemID,
				IdentifierRef: page.Identifier,
				Title:         page.Title,
			})
			mm.Items.Items = append(mm.Items.Items, metaItem{
				Identifier:    itemID,
				ContentType:   "WikiPage",
				WorkflowState: render.DefaultWorkflowState,
				Title:         page.Title,
				IdentifierRef: page.Identifier,
				Position:      i + 1,
			})
			m.Resources.Resources = append(m.Resources.Resources, imsccResource{
				Identifier: page.Identifier,
				Type:       webContentType,
				Href:       href,
				Files:      []imsccFile{{Href: href}},
			})
		}

		root.Items = append(root.Items, orgItem)
		meta.Modules = append(meta.Modules, mm)
	}

	if len(extras) > 0 {
		position++
		moduleID := gen.NewID(ident.ScopeModule)

		orgItem := imsccItem{
			Identifier: moduleID,
			Title:      AdditionalModuleTitle,
		}
		extraModule := metaModule{
			Identifier:    moduleID,
			Title:         AdditionalModuleTitle,
			WorkflowState: render.DefaultWorkflowState,
			Position:      position,
		}

		for i, page := range extras {
			itemID := gen.NewID(ident.ScopeItem)
			href := "wiki_content/" + page.Filename

			orgItem.Items = append(orgItem.Items, imsccItem{
				Identifier:    itemID,
				IdentifierRef: page.Identifier,
				Title:         page.Title,
			})
			extraModule.Items.Items = append(extraModule.Items.Items, metaItem{
				Identifier:    itemID,
				ContentType:   "WikiPage",
				WorkflowState: page.WorkflowState,
				Title:         page.Title,
				IdentifierRef: page.Identifier,
				Position:      i + 1,
			})
			m.Resources.Resources = append(m.Resources.Resources, imsccResource{
				Identifier: page.Identifier,
				Type:       webContentType,
				Href:       href,
				Files:      []imsccFile{{Href: href}},
			})
		}

		root.Items = append(root.Items, orgItem)
		meta.Modules = append(meta.Modules, extraModule)
	}

	// The settings directory itself is a declared resource so Canvas
	// imports it.
	settingsRes := imsccResource{
		Identifier: gen.NewID(ident.ScopeCourseEntity),
		Type:       learningAppResType,
		Href:       "course_settings/course_settings.xml",
	}
	for _, name := range SettingsFiles {
		settingsRes.Files = append(settingsRes.Files, imsccFile{Href: "course_settings/" + name})
	}
	m.Resources.Resources = append(m.Resources.Resources, settingsRes)

	manifestXML, err := marshalDocument(m)
	if err != nil {
		return nil, err
	}
	metaXML, err := marshalDocument(meta)
	if err != nil {
		return nil, err
	}
	settingsXML, err := composeCourseSettings(gen, course)
	if err != nil {
		return nil, err
	}

	files := ImsccFiles{}
	files["imsmanifest.xml"] = manifestXML
	files["course_settings/module_meta.xml"] = metaXML
	files["course_settings/course_settings.xml"] = settingsXML
	files["course_settings/assignment_groups.xml"] = []byte(assignmentGroupsXML)
	files["course_settings/files_meta.xml"] = []byte(filesMetaXML)
	files["course_settings/media_tracks.xml"] = []byte(mediaTracksXML)
	files["course_settings/context.xml"] = []byte(contextXML)
	return files, nil
}
