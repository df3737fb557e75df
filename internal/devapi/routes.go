package devapi

import (
	"net/http"

	"github.com/MKhiriev/go-profile-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profile/me", h.getProfile)
		r.Put("/profile/me", h.updateProfile)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, "Not Found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return router
}
