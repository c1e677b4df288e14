package portfolio

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Portfolio // userId -> portfolio
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Portfolio),
	}
}

// ApplyImport replaces the stored portfolio for the user.
func (r *MemoryRepo) ApplyImport(ctx context.Context, p Portfolio) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.Profile.UserID] = clonePortfolio(p)
	return nil
}

// Get returns the stored portfolio for the user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return Portfolio{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[userID]
	if !ok {
		return Portfolio{}, ErrNotFound
	}
	return clonePortfolio(p), nil
}

func clonePortfolio(p Portfolio) Portfolio {
	p.Experiences = append([]Experience{}, p.Experiences...)
	p.Skills = append([]Skill{}, p.Skills...)
	return p
}
