// Package manifest serializes the target-format manifests: SCORM 1.2
// imsmanifest.xml, IMSCC imsmanifest.xml and the Canvas course_settings
// companion files.
package manifest

import (
	"encoding/xml"
	"fmt"

	"github.com/smrice3/rise-scorm-creator/internal/hierarchy"
	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

const (
	scormSchemaNS       = "http://www.imsproject.org/xsd/imscp_rootv1p1p2"
	scormADLCPNS        = "http://www.adlnet.org/xsd/adlcp_rootv1p2"
	xsiNS               = "http://www.w3.org/2001/XMLSchema-instance"
	scormSchemaLocation = "http://www.imsproject.org/xsd/imscp_rootv1p1p2 imscp_rootv1p1p2.xsd http://www.imsglobal.org/xsd/imsmd_rootv1p2p1 imsmd_rootv1p2p1.xsd http://www.adlnet.org/xsd/adlcp_rootv1p2 adlcp_rootv1p2.xsd"
)

type scormManifest struct {
	XMLName        xml.Name           `xml:"manifest"`
	Identifier     string             `xml:"identifier,attr"`
	Version        string             `xml:"version,attr"`
	Xmlns          string             `xml:"xmlns,attr"`
	XmlnsADLCP     string             `xml:"xmlns:adlcp,attr"`
	XmlnsXSI       string             `xml:"xmlns:xsi,attr"`
	SchemaLocation string             `xml:"xsi:schemaLocation,attr"`
	Metadata       scormMetadata      `xml:"metadata"`
	Organizations  scormOrganizations `xml:"organizations"`
	Resources      scormResources     `xml:"resources"`
}

type scormMetadata struct {
	Schema        string `xml:"schema"`
	SchemaVersion string `xml:"schemaversion"`
}

type scormOrganizations struct {
	Default      string            `xml:"default,attr"`
	Organization scormOrganization `xml:"organization"`
}

type scormOrganization struct {
	Identifier string      `xml:"identifier,attr"`
	Title      string      `xml:"title"`
	Items      []scormItem `xml:"item"`
}

type scormItem struct {
	Identifier    string      `xml:"identifier,attr"`
	IdentifierRef string      `xml:"identifierref,attr,omitempty"`
	Title         string      `xml:"title"`
	Items         []scormItem `xml:"item,omitempty"`
}

type scormResources struct {
	Resources []scormResource `xml:"resource"`
}

type scormResource struct {
	Identifier string      `xml:"identifier,attr"`
	Type       string      `xml:"type,attr"`
	ScormType  string      `xml:"adlcp:scormtype,attr"`
	Href       string      `xml:"href,attr"`
	Files      []scormFile `xml:"file"`
}

type scormFile struct {
	Href string `xml:"href,attr"`
}

// ComposeScorm builds the SCORM 1.2 imsmanifest.xml. Every retained
// activity gets a resource referencing {id}.html; the item tree mirrors
// the module/page grouping, with a self-referencing identifierref on
// modules that double as standalone content. Zero activities produce a
// valid manifest with empty organizations and resources.
func ComposeScorm(orgID string, course tincan.CourseInfo, activities []tincan.Activity, layout hierarchy.Layout) ([]byte, error) {
	m := scormManifest{
		Identifier:     orgID,
		Version:        "1",
		Xmlns:          scormSchemaNS,
		XmlnsADLCP:     scormADLCPNS,
		XmlnsXSI:       xsiNS,
		SchemaLocation: scormSchemaLocation,
		Metadata: scormMetadata{
			Schema:        "ADL SCORM",
			SchemaVersion: "1.2",
		},
		Organizations: scormOrganizations{
			Default: orgID + "_org",
			Organization: scormOrganization{
				Identifier: orgID + "_org",
				Title:      course.Title,
			},
		},
	}

	// A section that doubles as a standalone block shares its id; the
	// resource is declared once.
	declared := make(map[string]bool)
	for _, a := range activities {
		if declared[a.ID] {
			continue
		}
		declared[a.ID] = true
		m.Resources.Resources = append(m.Resources.Resources, scormResource{
			Identifier: ResourceID(a.ID),
			Type:       "webcontent",
			ScormType:  "sco",
			Href:       a.ID + ".html",
			Files:      []scormFile{{Href: a.ID + ".html"}},
		})
	}

	for _, mod := range layout.Modules {
		item := scormItem{
			Identifier: ItemID(mod.SourceID),
			Title:      mod.Title,
		}
		if mod.SelfContent {
			item.IdentifierRef = ResourceID(mod.SourceID)
		}
		for _, page := range mod.Pages {
			item.Items = append(item.Items, scormItem{
				Identifier:    ItemID(page.SourceID),
				IdentifierRef: ResourceID(page.SourceID),
				Title:         page.Title,
			})
		}
		m.Organizations.Organization.Items = append(m.Organizations.Organization.Items, item)
	}

	for _, page := range layout.Standalone {
		m.Organizations.Organization.Items = append(m.Organizations.Organization.Items, scormItem{
			Identifier:    ItemID(page.SourceID),
			IdentifierRef: ResourceID(page.SourceID),
			Title:         page.Title,
		})
	}

	return marshalDocument(m)
}

// ResourceID is the SCORM resource identifier for a source activity id.
func ResourceID(sourceID string) string {
	return "resource_" + sourceID
}

// ItemID is the SCORM item identifier for a source activity id.
func ItemID(sourceID string) string {
	return "item_" + sourceID
}

// marshalDocument serializes v with indentation and an XML declaration.
func marshalDocument(v interface{}) ([]byte, error) {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}
