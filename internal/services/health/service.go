package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service encapsulates health-related checks.
type Service struct {
	DB         *sql.DB
	Strategies []string
}

// NewService constructs a new health service. db may be nil when running on
// in-memory storage.
func NewService(db *sql.DB, strategies []string) *Service {
	return &Service{DB: db, Strategies: strategies}
}

// Status reports storage reachability and the active strategies.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{
		"ok":         true,
		"storage":    "memory",
		"strategies": s.Strategies,
	}
	if s.DB == nil {
		return out, true
	}
	out["storage"] = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		out["ok"] = false
		out["error"] = err.Error()
		return out, false
	}
	return out, true
}
