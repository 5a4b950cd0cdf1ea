package tincan

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Extract parses a TinCan XML document and returns the course info plus
// the ordered list of retained activities. The two reads are independent
// traversals of the same document; a parse error from either aborts the
// extraction.
func Extract(data []byte) (CourseInfo, []Activity, error) {
	activities, err := ExtractActivities(data)
	if err != nil {
		return CourseInfo{}, nil, err
	}
	info, err := ExtractCourseInfo(data)
	if err != nil {
		return CourseInfo{}, nil, err
	}
	return info, activities, nil
}

// rawActivity accumulates one activity element during the token walk.
type rawActivity struct {
	id          string
	typ         string
	name        string
	description string
}

// ExtractActivities walks the full document tree and collects every
// activity element, at any nesting depth, whose name ends with /blocks
// or /section. The suffix decides the kind and is stripped from the
// stored name. Document order is preserved.
func ExtractActivities(data []byte) ([]Activity, error) {
	raw, err := walkActivities(data)
	if err != nil {
		return nil, err
	}

	var activities []Activity
	for _, ra := range raw {
		var kind Kind
		var name string
		switch {
		case strings.HasSuffix(ra.name, blockSuffix):
			kind = KindBlock
			name = strings.TrimSuffix(ra.name, blockSuffix)
		case strings.HasSuffix(ra.name, sectionSuffix):
			kind = KindSection
			name = strings.TrimSuffix(ra.name, sectionSuffix)
		default:
			continue
		}

		activities = append(activities, Activity{
			ID:          trailingSegment(ra.id),
			FullID:      ra.id,
			Name:        name,
			Description: ra.description,
			Kind:        kind,
		})
	}

	return activities, nil
}

// ExtractCourseInfo locates the activity whose type attribute is the
// course activity-type URI and returns its name and description.
// Defaults apply when no course node exists.
func ExtractCourseInfo(data []byte) (CourseInfo, error) {
	raw, err := walkActivities(data)
	if err != nil {
		return CourseInfo{}, err
	}

	for _, ra := range raw {
		if ra.typ != CourseTypeURI {
			continue
		}
		info := CourseInfo{Title: ra.name, Description: ra.description}
		if info.Title == "" {
			info.Title = DefaultCourseTitle
		}
		return info, nil
	}

	return CourseInfo{Title: DefaultCourseTitle}, nil
}

// walkActivities token-walks the document and returns every activity
// element in document (start-tag) order. A stack tracks open activity
// elements so nested activities are collected independently.
func walkActivities(data []byte) ([]*rawActivity, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var all []*rawActivity
	var stack []*rawActivity

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("XML parse error: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "activity":
				ra := &rawActivity{}
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "id":
						ra.id = attr.Value
					case "type":
						ra.typ = attr.Value
					}
				}
				all = append(all, ra)
				stack = append(stack, ra)

			case "name":
				if len(stack) > 0 {
					text, err := readElementText(decoder)
					if err != nil {
						return nil, fmt.Errorf("XML parse error: %w", err)
					}
					top := stack[len(stack)-1]
					if top.name == "" {
						top.name = text
					}
				}

			case "description":
				if len(stack) > 0 {
					text, err := readElementText(decoder)
					if err != nil {
						return nil, fmt.Errorf("XML parse error: %w", err)
					}
					top := stack[len(stack)-1]
					if top.description == "" {
						top.description = text
					}
				}
			}

		case xml.EndElement:
			if t.Name.Local == "activity" && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return all, nil
}

// readElementText collects character data until the current element's
// matching end tag, skipping over nested elements.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 0

	for {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}

		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return strings.TrimSpace(text.String()), nil
			}
			depth--
		}
	}
}

// trailingSegment returns the last /-separated segment of an id.
func trailingSegment(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}
