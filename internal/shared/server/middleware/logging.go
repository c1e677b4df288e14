package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

// Context keys handlers set so the request log carries extraction outcomes.
const (
	StrategyKey   = "strategy"
	ConfidenceKey = "confidence"
	SkillsKey     = "skillCount"
	ExperienceKey = "experienceCount"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		strategy, _ := c.Get(StrategyKey)
		confidence, _ := c.Get(ConfidenceKey)
		skills, _ := c.Get(SkillsKey)
		experiences, _ := c.Get(ExperienceKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":       RequestIDFromContext(c),
			"method":           c.Request.Method,
			"path":             c.Request.URL.Path,
			"status":           c.Writer.Status(),
			"duration_ms":      float64(latency.Microseconds()) / 1000.0,
			"user_id":          UserIDFromContext(c),
			"strategy":         strategy,
			"confidence":       confidence,
			"skill_count":      skills,
			"experience_count": experiences,
			"bytes_in":         c.Request.ContentLength,
			"client_ip":        c.ClientIP(),
			"user_agent":       c.Request.UserAgent(),
		})
	}
}
