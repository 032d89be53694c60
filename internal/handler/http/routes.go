// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const contentTypeJSON = "application/json"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(middleware.Recoverer, middleware.Compress(5, contentTypeJSON))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.withRateLimit, middleware.AllowContentType(contentTypeJSON))
				r.Post("/registration/", h.register)
				r.Post("/login/", h.login)
			})

			r.With(h.auth).Post("/logout/", h.logout)
		})

		// routes with authorization; the gate runs after route matching
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/account/", h.account)

			r.Get("/account/wallets/", h.listWallets)
			r.With(middleware.AllowContentType(contentTypeJSON)).Post("/account/wallets/", h.createWallet)
			r.Get("/account/wallets/{id}", h.getWallet)
			r.With(middleware.AllowContentType(contentTypeJSON)).Patch("/account/wallets/{id}", h.updateWallet)
			r.Delete("/account/wallets/{id}", h.deleteWallet)
		})
	})

	return router
}

// notFound answers unknown routes and disallowed methods alike.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
