package http

import (
	"github.com/gin-gonic/gin"

	"financial-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The ask endpoint is rate limited per client since every call can fan out
// into several model requests.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/ask", mw.RateLimit(), h.Ask)
}
