package manifest

import (
	"encoding/xml"

	"github.com/smrice3/rise-scorm-creator/internal/ident"
	"github.com/smrice3/rise-scorm-creator/internal/tincan"
)

const (
	canvasNS        = "http://canvas.instructure.com/xsd/cccv1p0"
	canvasSchemaLoc = "http://canvas.instructure.com/xsd/cccv1p0 https://canvas.instructure.com/xsd/cccv1p0.xsd"
)

// moduleMeta is the Canvas course_settings/module_meta.xml document.
type moduleMeta struct {
	XMLName        xml.Name     `xml:"modules"`
	Xmlns          string       `xml:"xmlns,attr"`
	XmlnsXSI       string       `xml:"xmlns:xsi,attr"`
	SchemaLocation string       `xml:"xsi:schemaLocation,attr"`
	Modules        []metaModule `xml:"module"`
}

type metaModule struct {
	Identifier    string    `xml:"identifier,attr"`
	Title         string    `xml:"title"`
	WorkflowState string    `xml:"workflow_state"`
	Position      int       `xml:"position"`
	Items         metaItems `xml:"items"`
}

type metaItems struct {
	Items []metaItem `xml:"item"`
}

type metaItem struct {
	Identifier    string `xml:"identifier,attr"`
	ContentType   string `xml:"content_type"`
	WorkflowState string `xml:"workflow_state"`
	Title         string `xml:"title"`
	IdentifierRef string `xml:"identifierref"`
	Position      int    `xml:"position"`
}

// courseSettings is the Canvas course_settings/course_settings.xml
// document; only the title varies per conversion.
type courseSettings struct {
	XMLName        xml.Name `xml:"course"`
	Identifier     string   `xml:"identifier,attr"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Title          string   `xml:"title"`
	CourseCode     string   `xml:"course_code"`
	DefaultView    string   `xml:"default_view"`
	IsPublic       bool     `xml:"is_public"`
	LicenseName    string   `xml:"license"`
}

func composeCourseSettings(gen ident.Generator, course tincan.CourseInfo) ([]byte, error) {
	return marshalDocument(courseSettings{
		Identifier:     gen.NewID(ident.ScopeCourseEntity),
		Xmlns:          canvasNS,
		XmlnsXSI:       xsiNS,
		SchemaLocation: canvasSchemaLoc,
		Title:          course.Title,
		CourseCode:     course.Title,
		DefaultView:    "modules",
		IsPublic:       false,
		LicenseName:    "private",
	})
}

// Fixed boilerplate companion documents. Canvas requires their presence
// even when empty.
const (
	assignmentGroupsXML = xml.Header + `<assignmentGroups xmlns="` + canvasNS + `" xmlns:xsi="` + xsiNS + `" xsi:schemaLocation="` + canvasSchemaLoc + `">
</assignmentGroups>
`

	filesMetaXML = xml.Header + `<fileMeta xmlns="` + canvasNS + `" xmlns:xsi="` + xsiNS + `" xsi:schemaLocation="` + canvasSchemaLoc + `">
</fileMeta>
`

	mediaTracksXML = xml.Header + `<media_tracks xmlns="` + canvasNS + `" xmlns:xsi="` + xsiNS + `" xsi:schemaLocation="` + canvasSchemaLoc + `">
</media_tracks>
`

	contextXML = xml.Header + `<context_info xmlns="` + canvasNS + `" xmlns:xsi="` + xsiNS + `" xsi:schemaLocation="` + canvasSchemaLoc + `">
  <course_id></course_id>
  <course_name></course_name>
  <root_account_id></root_account_id>
  <root_account_name></root_account_name>
  <canvas_domain></canvas_domain>
</context_info>
`
)
