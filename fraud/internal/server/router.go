package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskstream-systems/riskstream-stack/common/httputil"
	"github.com/riskstream-systems/riskstream-stack/common/middleware"
)

// NewRouter exposes the fraud service's operational endpoints. The service
// has no request/response API; consumption happens over the bus.
func NewRouter(ready func() bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil && !ready() {
			httputil.WriteError(w, http.StatusServiceUnavailable, "consumer not running")
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
