package middleware

import (
	"log/slog"
	"net/http"

	"MeAPI_Playground/internal/portfolio"

	"github.com/gin-gonic/gin"
)

// WriteGuard rejects every request of the group with 403 when profile writes
// are switched off (PROFILE_WRITES_ENABLED=false).
func WriteGuard(enabled bool) gin.HandlerFunc {
	if !enabled {
		slog.Info("profile writes disabled, write routes answer 403")
	}
	return func(c *gin.Context) {
		if !enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": portfolio.ErrWritesDisabled.Error()})
			return
		}
		c.Next()
	}
}
