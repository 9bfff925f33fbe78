package handlers

import (
	"errors"
	"net/http"

	"github.com/riskstream-systems/riskstream-stack/common/httputil"
	"github.com/riskstream-systems/riskstream-stack/common/logging"
	"github.com/riskstream-systems/riskstream-stack/common/models"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/service"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/storage"
)

// TransactionHandler exposes the transaction ingress HTTP surface.
type TransactionHandler struct {
	service *service.IngestService
}

func NewTransactionHandler(svc *service.IngestService) *TransactionHandler {
	return &TransactionHandler{service: svc}
}

// Submit handles POST /transaction.
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := httputil.ReadBody(r, 0)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Unable to read request body")
		return
	}

	id, err := h.service.Submit(r.Context(), body)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			httputil.WriteError(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, service.ErrMalformedPayload):
			httputil.WriteError(w, http.StatusBadRequest, "Invalid transaction payload")
		default:
			// Logged through the wrapper so the middleware's request ID lands
			// on the line.
			logging.Default().ErrorContext(r.Context(), "failed to process transaction", logging.Error(err))
			httputil.WriteError(w, http.StatusInternalServerError, "Failed to process transaction")
		}
		return
	}

	logging.Default().InfoContext(r.Context(), "transaction accepted", logging.TransactionID(id))
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":        "Transaction received and published.",
		"transactionId": id,
	})
}

// Get handles GET /transaction/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	txn, err := h.service.Get(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, "Transaction not found")
	case err != nil:
		logging.Default().ErrorContext(r.Context(), "failed to read transaction",
			logging.TransactionID(id), logging.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to retrieve transaction")
	default:
		httputil.WriteJSON(w, http.StatusOK, txn)
	}
}

// Health handles GET /health. Liveness only: no dependency checks.
func (h *TransactionHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz.
func (h *TransactionHandler) Ready(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
