package securityheaders

import "net/http"

type Middleware struct {
	handler http.Handler
}

func NewSecurityHeadersMiddleware(next http.Handler) *Middleware {
	return &Middleware{
		handler: next,
	}
}

// ServeHTTP adds the headers before calling through. Every response is JSON, so nothing is allowed to load or frame
// it.
func (m *Middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
	w.Header().Set("Cache-Control", "no-store")

	m.handler.ServeHTTP(w, r)
}
