package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/shared/config"
)

func TestBuildFallsBackToMemoryInDev(t *testing.T) {
	app, err := Build(config.Config{Env: "dev", RateLimitRPS: 5, RateLimitBurst: 10})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected no database")
	}
	if _, ok := app.PortfolioRepo.(*portfolio.MemoryRepo); !ok {
		t.Fatalf("expected memory repo, got %T", app.PortfolioRepo)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	if _, err := Build(config.Config{Env: "production"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestBuildExtractorFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	doc := "strategies:\n  - name: greeting\n    kind: template\n    greetings: [\"hallo, ik ben\"]\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write vocab: %v", err)
	}

	ex, err := BuildExtractor(path)
	if err != nil {
		t.Fatalf("BuildExtractor: %v", err)
	}
	if got := strings.Join(ex.Strategies(), ","); got != "greeting" {
		t.Fatalf("expected only greeting strategy, got %q", got)
	}

	if _, err := BuildExtractor(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
