// internal/provider/mpesa/mpesa.go
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"mpesa-gateway/config"

	"go.uber.org/zap"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"

	stkPushPath = "/mpesa/stkpush/v1/processrequest"
)

// ErrAuth is returned when the OAuth token exchange fails. The underlying
// transport or API error is logged, never returned, so credentials and
// upstream details stay out of client responses.
var ErrAuth = errors.New("mpesa: authentication failed")

// ErrSubmit is returned when the STK push request is rejected or the
// transport fails.
var ErrSubmit = errors.New("mpesa: stk push submission failed")

type Client struct {
	config     config.MpesaConfig
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	tokens *tokenCache

	// now is overridable in tests.
	now func() time.Time
}

func NewClient(cfg config.MpesaConfig, logger *zap.Logger) *Client {
	baseURL := sandboxBaseURL
	if cfg.Environment == "production" {
		baseURL = productionBaseURL
	}

	return &Client{
		config:     cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		tokens:     &tokenCache{},
		now:        time.Now,
	}
}

// STKPushRequest is the Daraja STK push payload.
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the Daraja STK push response, passed through to the
// caller unmodified.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// InitiateSTKPush submits an STK push for the given (already normalized)
// phone number. phoneNumber is both the debit party and the handset that
// receives the prompt.
func (c *Client) InitiateSTKPush(ctx context.Context, phoneNumber, accountRef, description string, amount float64) (*STKPushResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(
		c.config.ShortCode + c.config.Passkey + timestamp,
	))

	request := STKPushRequest{
		BusinessShortCode: c.config.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            int(amount),
		PartyA:            phoneNumber,
		PartyB:            c.config.ShortCode,
		PhoneNumber:       phoneNumber,
		CallBackURL:       c.config.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   description,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stk push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build stk push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("stk push request failed", zap.Error(err))
		return nil, ErrSubmit
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read stk push response", zap.Error(err))
		return nil, ErrSubmit
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("stk push rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, ErrSubmit
	}

	var response STKPushResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		c.logger.Error("failed to parse stk push response",
			zap.Error(err),
			zap.ByteString("body", respBody))
		return nil, ErrSubmit
	}

	return &response, nil
}
