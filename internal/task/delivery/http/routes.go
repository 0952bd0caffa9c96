package http

import (
	"github.com/gin-gonic/gin"

	"duedate-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.POST("/parse/bulk", mw.RateLimit(), h.ParseBulk)
	}
}
