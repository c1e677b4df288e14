package portfolio

import (
	"time"

	"portfolio-backend/linkedin"
)

// ProfileResponse is the outward-facing profile.
type ProfileResponse struct {
	Name       string    `json:"name"`
	Headline   string    `json:"headline"`
	About      string    `json:"about"`
	Available  bool      `json:"available"`
	Strategy   string    `json:"strategy,omitempty"`
	Confidence float64   `json:"confidence"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ExperienceResponse is the outward-facing experience entry.
type ExperienceResponse struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Order    int    `json:"order"`
}

// SkillResponse is the outward-facing skill entry.
type SkillResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// PortfolioResponse is returned by the read and import endpoints.
type PortfolioResponse struct {
	UserID      string               `json:"userId"`
	Profile     ProfileResponse      `json:"profile"`
	Experiences []ExperienceResponse `json:"experiences"`
	Skills      []SkillResponse      `json:"skills"`
}

// ImportResponse pairs the stored portfolio with the raw extraction.
type ImportResponse struct {
	Portfolio PortfolioResponse `json:"portfolio"`
	Result    linkedin.Result   `json:"result"`
}

func toResponse(p Portfolio) PortfolioResponse {
	out := PortfolioResponse{
		UserID: p.Profile.UserID,
		Profile: ProfileResponse{
			Name:       p.Profile.Name,
			Headline:   p.Profile.Headline,
			About:      p.Profile.About,
			Available:  p.Profile.Available,
			Strategy:   p.Profile.Strategy,
			Confidence: p.Profile.Confidence,
			UpdatedAt:  p.Profile.UpdatedAt,
		},
		Experiences: make([]ExperienceResponse, 0, len(p.Experiences)),
		Skills:      make([]SkillResponse, 0, len(p.Skills)),
	}
	for _, e := range p.Experiences {
		out.Experiences = append(out.Experiences, ExperienceResponse{
			ID:       e.ID,
			Company:  e.Company,
			Title:    e.Title,
			Duration: e.Duration,
			Order:    e.Order,
		})
	}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, SkillResponse{ID: s.ID, Name: s.Name, Order: s.Order})
	}
	return out
}
