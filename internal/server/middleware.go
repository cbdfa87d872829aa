package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"

	"github.com/vittin/site/pkg/i18n"
	"github.com/vittin/site/pkg/logging"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware so that the first one is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recovery answers 500 when a handler panics and logs the stack.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logging.L(r.Context()).Error("handler panic",
						logging.String("panic", fmt.Sprint(rec)),
						logging.String("stack", string(debug.Stack())),
					)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeadersConfig configures security headers.
type SecureHeadersConfig struct {
	FrameOptions          string
	ReferrerPolicy        string
	PermissionsPolicy     string
	ContentSecurityPolicy string
	HSTSMaxAge            int
}

// DefaultSecureHeadersConfig allows the inline page stylesheet, https images
// and same-origin scripts and sockets.
func DefaultSecureHeadersConfig() SecureHeadersConfig {
	return SecureHeadersConfig{
		FrameOptions:      "DENY",
		ReferrerPolicy:    "strict-origin-when-cross-origin",
		PermissionsPolicy: "geolocation=(), microphone=(), camera=()",
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self' ws: wss:; " +
			"frame-ancestors 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'",
		HSTSMaxAge: 31536000,
	}
}

// SecureHeaders sets the security headers on every response.
func SecureHeaders(cfg SecureHeadersConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.PermissionsPolicy != "" {
				h.Set("Permissions-Policy", cfg.PermissionsPolicy)
			}
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			// HSTS only over HTTPS
			if cfg.HSTSMaxAge > 0 && (r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https") {
				h.Set("Strict-Transport-Security", fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Locale negotiates the chrome language (?lang= first, then Accept-Language)
// and stores the translator in the request context.
func Locale(bundle *i18n.Bundle, defaultLocale string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			explicit := r.URL.Query().Get("lang")
			accept := r.Header.Get("Accept-Language")

			locale := defaultLocale
			if explicit != "" || accept != "" {
				locale = bundle.Negotiate(explicit, accept)
			}

			t := bundle.Translator(locale)
			w.Header().Set("Content-Language", t.Locale())
			next.ServeHTTP(w, r.WithContext(i18n.WithTranslator(r.Context(), t)))
		})
	}
}

// originAllowed accepts same-origin requests, requests without an Origin
// header, and the configured origins ("*" allows any).
func originAllowed(origin, requestHost string, allowed []string) bool {
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil || (originURL.Scheme != "http" && originURL.Scheme != "https") {
		return false
	}
	if strings.EqualFold(originURL.Host, requestHost) {
		return true
	}

	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
		if u, err := url.Parse(a); err == nil && u.Host != "" && strings.EqualFold(u.Host, originURL.Host) {
			return true
		}
	}
	return false
}

// originPatterns converts configured origins to host patterns for websocket.Accept.
func originPatterns(allowed []string) []string {
	patterns := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if a == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(a); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
