package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/services"
)

// Chat proxies a visitor message to the assistant. The reply is always a
// plain string; upstream failures surface as the fallback reply, never as
// an error status.
func Chat(as *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message string `json:"message"`
		}
		// Tolerate an empty or malformed body, matching the permissive
		// contract of the assistant endpoint.
		_ = c.ShouldBindJSON(&req)

		reply := as.Reply(c.Request.Context(), req.Message)
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
