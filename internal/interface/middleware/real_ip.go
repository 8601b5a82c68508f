package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// TrustProxies limits which peers may set the client address through
// forwarding headers. With no proxies the socket address is always used.
// platform selects a CDN header ("cloudflare", "google") or names one directly.
func TrustProxies(r *gin.Engine, proxies []string, platform string) error {
	if err := r.SetTrustedProxies(proxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	r.RemoteIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}
	switch strings.ToLower(platform) {
	case "":
		r.TrustedPlatform = ""
	case "cloudflare":
		r.TrustedPlatform = gin.PlatformCloudflare
	case "google":
		r.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		r.TrustedPlatform = platform
	}
	return nil
}

// RealIP stores the client address under "real_ip" for the limiter keys and logs.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}
