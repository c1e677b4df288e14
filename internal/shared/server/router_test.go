package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server/middleware"
)

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		RateLimitRPS:    1,
		RateLimitBurst:  2,
	}
}

func TestHealthListsStrategies(t *testing.T) {
	r := NewRouter(RouterDeps{Config: testConfig(), Health: health.NewService(nil, []string{"english", "dutch"})})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		OK         bool     `json:"ok"`
		Strategies []string `json:"strategies"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.OK || len(payload.Strategies) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}

func TestMeEchoesIdentity(t *testing.T) {
	r := NewRouter(RouterDeps{Config: testConfig()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(middleware.UserIDHeader, "user-7")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "user-7") {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}

	anon := httptest.NewRecorder()
	r.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	if anon.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", anon.Code)
	}
}

func TestExtractRoutesShareTighterBucket(t *testing.T) {
	svc := portfolio.NewService(portfolio.NewMemoryRepo(), nil, 0)
	r := NewRouter(RouterDeps{Config: testConfig(), PortfolioHandler: portfolio.NewHandler(svc)})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/linkedin/extract", strings.NewReader(`{"text":"Jane Doe"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, "user-1")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 200,200,429 got %v", codes)
	}

	// Reads draw from the wider default bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.UserIDHeader, "user-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for read, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	svc := portfolio.NewService(portfolio.NewMemoryRepo(), nil, 0)
	r := NewRouter(RouterDeps{Config: testConfig(), PortfolioHandler: portfolio.NewHandler(svc)})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/linkedin/extract", strings.NewReader(`{"text":"Jane Doe\nSkills\nGo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `linkedin_extractions_total{strategy="english"}`) {
		t.Fatalf("expected english extraction counter, got:\n%s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
