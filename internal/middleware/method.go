package middleware

import (
	"net/http"
	"strings"
)

// CanonicalMethod upper-cases the request method so that routing and
// handlers treat "get" and "GET" alike.
func CanonicalMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if upper := strings.ToUpper(r.Method); upper != r.Method {
			r2 := r.Clone(r.Context())
			r2.Method = upper
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
