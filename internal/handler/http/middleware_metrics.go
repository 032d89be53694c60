// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
)

// withMetrics counts and times every request by method, route pattern and
// status. The route is read after the handler returns, once chi has matched it.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := h.metrics.TrackInFlight()
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)
		done()

		status := mw.status
		if status == 0 {
			// nothing written, net/http answers 200
			status = http.StatusOK
		}
		h.metrics.Observe(r.Method, metrics.RouteLabel(r), status, time.Since(start))
	})
}
