package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/logout", h.logout)

		r.Route("/api/patients", func(r chi.Router) {
			r.Get("/", h.listPatients)
			r.Post("/", h.createPatient)
			r.Get("/export", h.exportPatients)
			r.Get("/{id}", h.getPatient)
			r.Put("/{id}", h.updatePatient)
			r.Post("/{id}/lock", h.lockPatient)
			r.Delete("/{id}", h.deletePatient)
			r.Get("/{id}/treatments", h.listTreatmentsOfPatient)
		})

		r.Route("/api/caregivers", func(r chi.Router) {
			r.Get("/", h.listCaregivers)
			r.Post("/", h.registerCaregiver)
			r.Put("/{id}", h.updateCaregiver)
			r.Post("/{id}/password", h.changeCaregiverPassword)
			r.Post("/{id}/lock", h.lockCaregiver)
			r.Delete("/{id}", h.deleteCaregiver)
		})

		r.Route("/api/treatments", func(r chi.Router) {
			r.Get("/", h.listTreatments)
			r.Post("/", h.createTreatment)
			r.Get("/{id}", h.getTreatment)
			r.Put("/{id}", h.updateTreatment)
			r.Post("/{id}/lock", h.lockTreatment)
			r.Delete("/{id}", h.deleteTreatment)
		})
	})

	return router
}
