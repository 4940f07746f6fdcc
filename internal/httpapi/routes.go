package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskwise/internal/httpapi/middleware"
	"taskwise/internal/store"
)

// RegisterRoutes wires the task resource onto r.
//
// Static routes (/tasks/suggest, /tasks/search, /tasks/pending) are
// registered beside the :id parameter; gin resolves the static segment first.
func RegisterRoutes(r *gin.Engine, s store.Store) {
	h := NewHandler(s)

	r.Use(middleware.Metrics())
	r.Use(corsAllowAll())

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tasks := r.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/pending", h.PendingTasks)
		tasks.GET("/suggest", h.SuggestTasks)
		tasks.GET("/search", h.SearchTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// corsAllowAll mirrors the open CORS policy of the original deployment,
// where the browser frontend is served from a different origin.
func corsAllowAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
