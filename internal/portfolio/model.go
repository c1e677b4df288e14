package portfolio

import "time"

// Profile is the persisted identity block of a portfolio.
type Profile struct {
	UserID     string
	Name       string
	Headline   string
	About      string
	Available  bool
	Strategy   string
	Confidence float64
	UpdatedAt  time.Time
}

// Experience is one position, kept in export order.
type Experience struct {
	ID       string
	UserID   string
	Company  string
	Title    string
	Duration string
	Order    int
}

// Skill is one skill name, kept in export order.
type Skill struct {
	ID     string
	UserID string
	Name   string
	Order  int
}

// Portfolio is everything imported for one user.
type Portfolio struct {
	Profile     Profile
	Experiences []Experience
	Skills      []Skill
}
