package middleware

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS permits the configured origins plus any localhost port and any
// subdomain of an allow-listed host. Credentialed requests are allowed, so
// the wildcard origin is never used.
func CORS() gin.HandlerFunc {
	allowed := splitOrigins(os.Getenv("ALLOWED_ORIGINS"))

	return cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return originAllowed(origin, allowed) },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func originAllowed(origin string, allowed []string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	for _, a := range allowed {
		if origin == a {
			return true
		}
		au, err := url.Parse(a)
		if err != nil || au.Host == "" {
			continue
		}
		if u.Scheme == au.Scheme && strings.HasSuffix(host, "."+au.Hostname()) {
			return true
		}
	}
	return false
}
