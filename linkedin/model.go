// Package linkedin turns the plain text of a LinkedIn profile export into a
// structured profile, experience list and skill list.
package linkedin

// Profile holds the header fields of an export.
type Profile struct {
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	About     string `json:"about"`
	Available bool   `json:"available"`
}

// Experience is one employment record in document order.
type Experience struct {
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Result is the output of one extraction. Slices are never nil.
type Result struct {
	Profile     Profile      `json:"profile"`
	Experiences []Experience `json:"experiences"`
	Skills      []string     `json:"skills"`
	// Strategy names the vocabulary whose section headers were found.
	Strategy string `json:"strategy,omitempty"`
	// Confidence is the share of known section kinds located, 0 to 1.
	Confidence float64 `json:"confidence"`
}

func emptyResult() Result {
	return Result{
		Experiences: []Experience{},
		Skills:      []string{},
	}
}

// Boundaries records the line index of each section header, -1 when absent.
type Boundaries struct {
	Summary    int `json:"summary"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
	Contact    int `json:"contact"`
}

// NoBoundaries returns Boundaries with every section marked absent.
func NoBoundaries() Boundaries {
	return Boundaries{Summary: -1, Experience: -1, Education: -1, Skills: -1, Contact: -1}
}

// Found counts the section kinds that carry content.
func (b Boundaries) Found() int {
	n := 0
	for _, idx := range []int{b.Summary, b.Experience, b.Education, b.Skills} {
		if idx >= 0 {
			n++
		}
	}
	return n
}

// Identity is a detected name and headline. Line is the index of the name
// line, -1 when nothing was found.
type Identity struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Line     int    `json:"line"`
}

func noIdentity() Identity {
	return Identity{Line: -1}
}
