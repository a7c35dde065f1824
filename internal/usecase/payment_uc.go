// internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"fmt"

	"mpesa-gateway/internal/domain"
	"mpesa-gateway/internal/provider/mpesa"

	"go.uber.org/zap"
)

// PaymentProvider is the slice of the M-Pesa client the usecase needs.
type PaymentProvider interface {
	InitiateSTKPush(ctx context.Context, phoneNumber, accountRef, description string, amount float64) (*mpesa.STKPushResponse, error)
}

type PaymentUsecase struct {
	provider PaymentProvider
	logger   *zap.Logger
}

func NewPaymentUsecase(provider PaymentProvider, logger *zap.Logger) *PaymentUsecase {
	return &PaymentUsecase{
		provider: provider,
		logger:   logger,
	}
}

// InitiateSTKPush validates the request, normalizes the phone number and
// submits the push. The provider response is returned to the caller as-is.
func (uc *PaymentUsecase) InitiateSTKPush(ctx context.Context, req *domain.STKPushRequest) (*mpesa.STKPushResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	phone, err := domain.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	uc.logger.Info("initiating stk push",
		zap.String("phone", phone),
		zap.String("account_reference", req.AccountReference),
		zap.Float64("amount", req.Amount))

	resp, err := uc.provider.InitiateSTKPush(ctx, phone, req.AccountReference, req.TransactionDesc, req.Amount)
	if err != nil {
		uc.logger.Error("stk push failed",
			zap.String("account_reference", req.AccountReference),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("stk push accepted",
		zap.String("merchant_request_id", resp.MerchantRequestID),
		zap.String("checkout_request_id", resp.CheckoutRequestID),
		zap.String("response_code", resp.ResponseCode))

	return resp, nil
}
