package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	paymentsService "github.com/easybook/EB-BookingService/internal/service/payments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidReference    = "некорректная ссылка на транзакцию"
	msgTransactionNotFound = "транзакция не найдена"
)

// ConfirmRequest HTTP request model
type ConfirmRequest struct {
	Reference string `json:"reference"`
}

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/confirm
// Вызывается внешним платежным процессором после успешной оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Confirm(r.Context(), req.Reference); err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrTransactionNotFound):
			h.logger.Warn("POST /payments/confirm - Transaction not found: reference=%s", req.Reference)
			handlers.RespondNotFound(w, msgTransactionNotFound)

		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirm - Invalid reference: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReference)

		default:
			h.logger.Error("POST /payments/confirm - Failed: reference=%s, error=%v", req.Reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/confirm - Transaction confirmed: reference=%s", req.Reference)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}
