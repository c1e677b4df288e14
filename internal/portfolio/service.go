package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/linkedin"
)

// DefaultMaxTextBytes bounds a single export when the service is not configured.
const DefaultMaxTextBytes = 1 << 20

// Service extracts LinkedIn exports and stores them as portfolios.
type Service struct {
	Repo         Repo
	Extractor    *linkedin.Extractor
	MaxTextBytes int64
	Now          func() time.Time
	NewID        func() string
}

// NewService constructs a Service with default clock and id source.
func NewService(repo Repo, extractor *linkedin.Extractor, maxTextBytes int64) *Service {
	return &Service{Repo: repo, Extractor: extractor, MaxTextBytes: maxTextBytes}
}

// Preview extracts text without persisting anything.
func (s *Service) Preview(text string) (linkedin.Result, error) {
	if err := s.checkSize(text); err != nil {
		return linkedin.Result{}, err
	}
	return s.extract(text), nil
}

// ImportText extracts text and replaces the caller's stored portfolio with it.
func (s *Service) ImportText(ctx context.Context, userID, text string) (Portfolio, linkedin.Result, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Portfolio{}, linkedin.Result{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return Portfolio{}, linkedin.Result{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if err := s.checkSize(text); err != nil {
		return Portfolio{}, linkedin.Result{}, err
	}

	res := s.extract(text)
	p := s.fromResult(userID, res)
	if err := s.Repo.ApplyImport(ctx, p); err != nil {
		metrics.IncImportFailed()
		return Portfolio{}, linkedin.Result{}, fmt.Errorf("apply import: %w", err)
	}

	metrics.IncImportCompleted()
	telemetry.Info("portfolio.import", map[string]any{
		"user_id":          userID,
		"strategy":         res.Strategy,
		"confidence":       res.Confidence,
		"experience_count": len(res.Experiences),
		"skill_count":      len(res.Skills),
		"available":        res.Profile.Available,
	})
	return p, res, nil
}

// Get returns the stored portfolio for a user.
func (s *Service) Get(ctx context.Context, userID string) (Portfolio, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Portfolio{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, userID)
}

func (s *Service) fromResult(userID string, res linkedin.Result) Portfolio {
	p := Portfolio{
		Profile: Profile{
			UserID:     userID,
			Name:       res.Profile.Name,
			Headline:   res.Profile.Headline,
			About:      res.Profile.About,
			Available:  res.Profile.Available,
			Strategy:   res.Strategy,
			Confidence: res.Confidence,
			UpdatedAt:  s.now(),
		},
		Experiences: make([]Experience, 0, len(res.Experiences)),
		Skills:      make([]Skill, 0, len(res.Skills)),
	}
	for i, e := range res.Experiences {
		p.Experiences = append(p.Experiences, Experience{
			ID:       s.newID(),
			UserID:   userID,
			Company:  e.Company,
			Title:    e.Title,
			Duration: e.Duration,
			Order:    i,
		})
	}
	for i, name := range res.Skills {
		p.Skills = append(p.Skills, Skill{ID: s.newID(), UserID: userID, Name: name, Order: i})
	}
	return p
}

func (s *Service) checkSize(text string) error {
	limit := s.MaxTextBytes
	if limit <= 0 {
		limit = DefaultMaxTextBytes
	}
	if int64(len(text)) > limit {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(text), limit)
	}
	return nil
}

func (s *Service) extract(text string) linkedin.Result {
	start := time.Now()
	res := s.extractor().Extract(text)
	metrics.ObserveExtraction(res.Strategy, float64(time.Since(start).Microseconds())/1000.0)
	return res
}

func (s *Service) extractor() *linkedin.Extractor {
	if s.Extractor == nil {
		return linkedin.NewExtractor()
	}
	return s.Extractor
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
