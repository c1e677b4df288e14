package portfolio

import "context"

// Repo persists imported portfolios.
type Repo interface {
	// ApplyImport upserts the profile and replaces the experience and skill
	// lists in one unit of work.
	ApplyImport(ctx context.Context, p Portfolio) error
	Get(ctx context.Context, userID string) (Portfolio, error)
}
