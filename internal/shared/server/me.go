package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", middleware.RequireIdentity(), meHandler)
}

func meHandler(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"userId": middleware.UserIDFromContext(c),
	})
}
