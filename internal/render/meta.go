package render

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/smrice3/rise-scorm-creator/internal/ident"
)

// Defaults substituted for missing metadata markers.
const (
	DefaultPageTitle     = "Untitled Page"
	DefaultWorkflowState = "active"
	DefaultEditingRoles  = "teachers"
)

// AdditionalPage is a pre-authored HTML document supplied by the
// operator. It bypasses the hierarchy builder and lands in a dedicated
// trailing module.
type AdditionalPage struct {
	Title         string
	Identifier    string
	WorkflowState string
	Filename      string // relative filename inside wiki_content/
	Content       []byte
}

// ScanAdditionalPage reads the metadata markers out of an HTML document:
// the <title> element and the identifier/workflow_state meta tags
// WikiPage emits. Missing or unreadable markers fall back to defaults;
// each substitution is reported as a warning naming the file. The file
// is always included.
func ScanAdditionalPage(name string, content []byte, gen ident.Generator) (AdditionalPage, []string) {
	page := AdditionalPage{Content: content}
	var warnings []string

	doc, err := html.Parse(bytes.NewReader(content))
	if err == nil {
		page.Title = findTitle(doc)
		page.Identifier = findMeta(doc, "identifier")
		page.WorkflowState = findMeta(doc, "workflow_state")
	} else {
		warnings = append(warnings, fmt.Sprintf("%s: unreadable HTML, using defaults", name))
	}

	if page.Title == "" {
		warnings = append(warnings, fmt.Sprintf("%s: no title found, using %q", name, DefaultPageTitle))
		page.Title = DefaultPageTitle
	}
	if page.Identifier == "" {
		warnings = append(warnings, fmt.Sprintf("%s: no identifier found, generating one", name))
		page.Identifier = gen.NewID(ident.ScopeWikiPage)
	}
	if page.WorkflowState == "" {
		page.WorkflowState = DefaultWorkflowState
	}

	page.Filename = pageFilename(name, page.Title)
	return page, warnings
}

// pageFilename derives the wiki_content filename from the supplied file
// name, falling back to the slugified title.
func pageFilename(name, title string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base != "" && base != "." && base != "/" {
		if !strings.HasSuffix(strings.ToLower(base), ".html") {
			base += ".html"
		}
		return base
	}
	return ident.Slugify(title) + ".html"
}

// findTitle returns the text of the first <title> element.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(sb.String())
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// findMeta returns the content attribute of <meta name=...>.
func findMeta(n *html.Node, name string) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Meta {
		var metaName, content string
		for _, a := range n.Attr {
			switch a.Key {
			case "name":
				metaName = a.Val
			case "content":
				content = a.Val
			}
		}
		if metaName == name {
			return content
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := findMeta(c, name); v != "" {
			return v
		}
	}
	return ""
}
