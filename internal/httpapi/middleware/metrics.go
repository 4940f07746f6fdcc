package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskwise_http_requests_total",
			Help: "Total HTTP requests served, by route and status",
		},
		[]string{"method", "route", "status"},
	)
	tasksMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskwise_task_mutations_total",
			Help: "Total create/update/delete operations accepted",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(httpRequests)
	prometheus.MustRegister(tasksMutations)
}

// Metrics counts every request by route template and response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// CountMutation records an accepted write operation.
func CountMutation(operation string) {
	tasksMutations.WithLabelValues(operation).Inc()
}
