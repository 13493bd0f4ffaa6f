package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware with a permissive policy: the dashboard is served
// from file:// or arbitrary dev hosts, so any origin may call the API.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
