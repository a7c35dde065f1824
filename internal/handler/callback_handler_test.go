package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeAck(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleCallback_WellFormedPayload(t *testing.T) {
	h := NewCallbackHandler("development", zap.NewNop())

	body := `{"Body":{"stkCallback":{"MerchantRequestID":"29115-34620561-1","ResultCode":0,"ResultDesc":"Success"}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/mpesa/callback", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleCallback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeAck(t, w)
	assert.Equal(t, true, resp["success"])
}

func TestHandleCallback_MalformedPayloadsStillAcknowledged(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "definitely not json"},
		{"json null", "null"},
		{"json array", `[1,2,3]`},
		{"json string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCallbackHandler("development", zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/mpesa/callback", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.HandleCallback(w, req)

			// Daraja retries non-200 responses, so even garbage gets a 200.
			assert.Equal(t, http.StatusOK, w.Code)
			resp := decodeAck(t, w)
			assert.Equal(t, false, resp["success"])
		})
	}
}
