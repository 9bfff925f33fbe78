package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskstream-systems/riskstream-stack/common/middleware"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/handlers"
)

// NewRouter constructs a ServeMux with the transaction API routes registered.
func NewRouter(h *handlers.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /transaction", h.Submit)
	mux.HandleFunc("GET /transaction/{id}", h.Get)

	// Health endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /readyz", h.Ready)

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
