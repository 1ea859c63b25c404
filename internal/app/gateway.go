package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Platform/internal/config"
	"Platform/internal/gateway"
)

// NewGateway builds the edge gateway: a prefix-routed reverse proxy that
// forwards requests to backend services unmodified.
func NewGateway(cfg config.GatewayConfig) (*App, error) {
	a := &App{}

	r := gin.New()
	r.Use(gin.Logger(), gateway.Recovery(), gateway.RequestID())
	registerHealth(r, cfg.App, "api-gateway")

	routes := []struct {
		prefix string
		target string
	}{
		{"/api/v1/auth", cfg.Targets.AuthURL},
		{"/api/v1/users", cfg.Targets.UserURL},
		{"/api/v1/orders", cfg.Targets.OrderURL},
	}
	for _, rt := range routes {
		h, err := gateway.Forward(rt.target)
		if err != nil {
			return nil, err
		}
		r.Any(rt.prefix, h)
		r.Any(rt.prefix+"/*path", h)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	a.router = r
	return a, nil
}
