package utils

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var forwardClient = &http.Client{Timeout: 30 * time.Second}

// hop-by-hop headers are meaningful per connection and must not cross the
// proxy boundary.
var hopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

// ForwardRequest relays the inbound request to targetBase, keeping the path
// below /api, the query string, the body, and all end-to-end headers. The
// Authorization header crosses unchanged, so downstream services see the
// caller's own token.
func ForwardRequest(c *gin.Context, targetBase string) {
	path := strings.TrimPrefix(c.Request.URL.Path, "/api")
	target := targetBase + path
	if c.Request.URL.RawQuery != "" {
		target += "?" + c.Request.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		logger.Error(c, "failed to build forward request", err, zap.String("target", target))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to forward request"})
		return
	}

	for name, values := range c.Request.Header {
		if _, skip := hopHeaders[http.CanonicalHeaderKey(name)]; skip {
			continue
		}
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := forwardClient.Do(req)
	if err != nil {
		logger.Error(c, "upstream service unreachable", err, zap.String("target", target))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream service unavailable"})
		return
	}
	defer resp.Body.Close()

	for name, values := range resp.Header {
		if _, skip := hopHeaders[http.CanonicalHeaderKey(name)]; skip {
			continue
		}
		for _, v := range values {
			c.Writer.Header().Add(name, v)
		}
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		logger.Warn(c, "response relay interrupted", zap.String("target", target))
	}
}
