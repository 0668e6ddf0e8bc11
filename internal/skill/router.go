package skill

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the skill and history endpoints. The history endpoints are
// only mounted when history is non-nil and historyToken is set, and then
// require "Authorization: Bearer <historyToken>".
func NewRouter(h *Handler, history *HistoryHandler, allowedOrigins []string, historyToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/skill", h.HandleSkill)
	r.Post("/skill/{block}", h.HandleSkill)

	if history != nil && historyToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(requireBearer(historyToken))
			r.Get("/history/{userID}", history.HandleGet)
			r.Delete("/history/{userID}", history.HandleDelete)
		})
	}

	return r
}

// requireBearer rejects requests whose bearer token is not token.
func requireBearer(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="history"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
