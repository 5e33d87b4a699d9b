package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/relnotes-backend/internal/config"
)

// CORS returns middleware for browser front ends calling the generation API.
// Preflight requests are answered here and never reach the handlers.
func CORS(cfg config.CORSConfig) Middleware {
	origins := lo.FilterMap(strings.Split(cfg.AllowedOrigins, ","), func(o string, _ int) (string, bool) {
		o = strings.TrimSpace(o)
		return o, o != ""
	})
	anyOrigin := lo.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (anyOrigin || lo.Contains(origins, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
