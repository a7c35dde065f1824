// internal/domain/payment.go
package domain

import (
	"fmt"

	"github.com/go-playground/validator"
)

// MaxAmount is the Daraja ceiling for a single STK push, in KES.
const MaxAmount = 150000

var validate = validator.New()

// STKPushRequest is the inbound payment-initiation request.
type STKPushRequest struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	PhoneNumber      string  `json:"phoneNumber" validate:"required"`
	AccountReference string  `json:"accountReference" validate:"required,max=12"`
	TransactionDesc  string  `json:"transactionDesc" validate:"max=13"`
}

// Validate checks field presence and ranges. Error messages are returned
// to the caller verbatim, so they name the offending field.
func (r *STKPushRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fieldError(errs[0])
		}
		return err
	}

	if r.Amount > MaxAmount {
		return fmt.Errorf("amount must not exceed %d", MaxAmount)
	}

	if r.TransactionDesc == "" {
		r.TransactionDesc = "Payment"
	}

	return nil
}

func fieldError(e validator.FieldError) error {
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", jsonName(e.Field()))
	case "gt":
		return fmt.Errorf("%s must be greater than %s", jsonName(e.Field()), e.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", jsonName(e.Field()), e.Param())
	}
	return fmt.Errorf("%s is invalid", jsonName(e.Field()))
}

// jsonName maps the Go field name back to its JSON key.
func jsonName(field string) string {
	switch field {
	case "Amount":
		return "amount"
	case "PhoneNumber":
		return "phoneNumber"
	case "AccountReference":
		return "accountReference"
	case "TransactionDesc":
		return "transactionDesc"
	}
	return field
}
