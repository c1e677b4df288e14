package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDReusesOrGenerates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})

	cases := []struct {
		header string
		reuse  bool
	}{
		{"req-123", true},
		{"", false},
		{strings.Repeat("x", 200), false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		if tc.header != "" {
			req.Header.Set("X-Request-Id", tc.header)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		got := resp.Header().Get("X-Request-Id")
		if got != resp.Body.String() {
			t.Fatalf("header %q and context %q disagree", got, resp.Body.String())
		}
		if tc.reuse && got != tc.header {
			t.Fatalf("expected %q to be reused, got %q", tc.header, got)
		}
		if !tc.reuse && len(got) != 32 {
			t.Fatalf("expected generated 32-char id, got %q", got)
		}
	}
}
