package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/qrbills", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Get("/{invoice_id}/eligibility", h.Eligibility)
			r.Post("/{invoice_id}", h.BuildPayload)
		})
	})

	return mux
}
