package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tarkov_market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/items/{id}", func(r chi.Router) {
				r.Get("/cheapest", handler(s.getV1ItemCheapest))
				r.Get("/fee", handler(s.getV1ItemFee))
			})
			r.Route("/settings/{gameMode}", func(r chi.Router) {
				r.Get("/", handler(s.getV1Settings))
				r.Put("/", handler(s.putV1Settings))
			})
			r.Route("/watches", func(r chi.Router) {
				r.Get("/", handler(s.getV1Watches))
				r.Post("/", handler(s.postV1Watch))
				r.Delete("/{id}", handler(s.deleteV1Watch))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
