package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	docsPath = "/docs"

	// jsonCSP applies to every response that is not the docs page; none of them render HTML
	jsonCSP = "default-src 'none'; frame-ancestors 'none'"

	// scalarCSP lets the API reference page on /docs load its bundle and fonts from CDNs
	scalarCSP = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
		"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: https: blob:; " +
		"connect-src 'self'; " +
		"worker-src 'self' blob:; " +
		"frame-ancestors 'none'"
)

// SecurityHeaders sets the response headers of the admin API. Account data is never stored by
// browsers or proxies. Caching of /docs is left to the docs handler.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			path := c.Request().URL.Path
			switch {
			case path == docsPath:
				h.Set("Content-Security-Policy", scalarCSP)
			case strings.HasPrefix(path, docsPath+"/"):
				h.Set("Content-Security-Policy", jsonCSP)
			default:
				h.Set("Content-Security-Policy", jsonCSP)
				h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
				h.Set("Pragma", "no-cache")
				h.Set("Expires", "0")
			}

			return next(c)
		}
	}
}
