package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() STKPushRequest {
	return STKPushRequest{
		Amount:           100,
		PhoneNumber:      "0712345678",
		AccountReference: "ORDER-001",
		TransactionDesc:  "Order 001",
	}
}

func TestSTKPushRequest_Validate_Valid(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestSTKPushRequest_Validate_Amount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		wantOK bool
	}{
		{"zero", 0, false},
		{"negative", -50, false},
		{"above ceiling", MaxAmount + 1, false},
		{"at ceiling", MaxAmount, true},
		{"small valid", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Amount = tt.amount
			err := req.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSTKPushRequest_Validate_MissingFields(t *testing.T) {
	req := validRequest()
	req.PhoneNumber = ""
	assert.Error(t, req.Validate())

	req = validRequest()
	req.AccountReference = ""
	assert.Error(t, req.Validate())
}

func TestSTKPushRequest_Validate_BoundedLengths(t *testing.T) {
	req := validRequest()
	req.AccountReference = "REFERENCE-TOO-LONG"
	assert.Error(t, req.Validate())

	req = validRequest()
	req.TransactionDesc = "description too long for daraja"
	assert.Error(t, req.Validate())
}

func TestSTKPushRequest_Validate_DefaultsDescription(t *testing.T) {
	req := validRequest()
	req.TransactionDesc = ""
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Payment", req.TransactionDesc)
}
