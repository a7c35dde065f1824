// internal/handler/payment_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mpesa-gateway/internal/domain"
	"mpesa-gateway/internal/usecase"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentUC *usecase.PaymentUsecase
	logger    *zap.Logger
}

func NewPaymentHandler(paymentUC *usecase.PaymentUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    logger,
	}
}

// HandleSTKPush handles POST /api/mpesa/stk-push.
func (h *PaymentHandler) HandleSTKPush(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.STKPushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode stk push request", zap.Error(err))
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.paymentUC.InitiateSTKPush(ctx, &req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Upstream details are logged in the usecase and provider; the
		// caller only sees a generic failure.
		sendError(w, http.StatusInternalServerError, "failed to initiate payment")
		return
	}

	sendSuccess(w, http.StatusOK, "stk push initiated", resp)
}
