package middleware

import (
	"net/http"
	"slices"
)

type CORSMiddleware struct {
	origins []string
}

// NewCORSMiddleware allows the listed origins; "*" allows any.
func NewCORSMiddleware(origins []string) *CORSMiddleware {
	return &CORSMiddleware{
		origins: origins,
	}
}

func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case slices.Contains(m.origins, "*"):
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(m.origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Image-URL")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
