package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for rate-limit bucketing. The
// service runs behind a load balancer, so proxy headers take precedence
// over the socket address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// The first hop in the list is the original client.
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
