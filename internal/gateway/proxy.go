// Package gateway implements the edge reverse proxy. It forwards requests
// to backend services unmodified; authentication happens in the services
// themselves, not here.
package gateway

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Forward returns a handler proxying every request to the target base URL,
// preserving method, path, query and headers. A backend that cannot be
// reached yields 502 {"error":"GATEWAY_ERROR"} instead of a hung request.
func Forward(target string) (gin.HandlerFunc, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	proxy := httputil.NewSingleHostReverseProxy(u)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("[GATEWAY] proxy to %s failed: %v", u.Host, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"GATEWAY_ERROR"}`))
	}
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

// RequestID tags every request with a generated id and logs the route taken.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Writer.Header().Set(requestIDHeader, id)

		start := time.Now()
		c.Next()
		log.Printf("[GATEWAY] %s %s %s -> %d (%s)",
			id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns panics into a generic 500 body without leaking internals.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[GATEWAY] panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "GATEWAY_ERROR"})
	})
}
