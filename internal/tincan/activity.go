// Package tincan extracts course structure from Rise TinCan (xAPI)
// activity XML exports.
package tincan

// Kind classifies a retained activity by its structural role.
type Kind string

const (
	KindSection Kind = "section"
	KindBlock   Kind = "block"
)

// Suffixes that mark an activity as structurally relevant. Matching is
// exact and case-sensitive; everything else is dropped.
const (
	blockSuffix   = "/blocks"
	sectionSuffix = "/section"
)

// CourseTypeURI is the activity type of the course root node.
const CourseTypeURI = "http://adlnet.gov/expapi/activities/course"

// Activity is one retained node from the TinCan activity tree.
type Activity struct {
	ID          string // trailing segment of the full activity id
	FullID      string // complete source identifier, kept for traceability
	Name        string // title with the structural suffix stripped
	Description string
	Kind        Kind
}

// CourseInfo carries the course-level title and description.
type CourseInfo struct {
	Title       string
	Description string
}

// DefaultCourseTitle is used when the source has no course node.
const DefaultCourseTitle = "Untitled Course"
