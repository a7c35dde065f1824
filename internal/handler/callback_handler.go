// internal/handler/callback_handler.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type CallbackHandler struct {
	environment string
	logger      *zap.Logger
}

func NewCallbackHandler(environment string, logger *zap.Logger) *CallbackHandler {
	return &CallbackHandler{
		environment: environment,
		logger:      logger,
	}
}

// HandleCallback handles POST /api/mpesa/callback. Daraja retries any
// non-200 acknowledgement, so this always responds 200 no matter what the
// payload looks like; a malformed payload only flips the success flag.
func (h *CallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read callback payload", zap.Error(err))
		h.acknowledge(w, false, "failed to read payload")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		h.logger.Warn("callback payload is not a JSON object",
			zap.Int("payload_size", len(body)))
		h.acknowledge(w, false, "malformed callback payload")
		return
	}

	if h.environment == "production" {
		h.logger.Debug("callback received", zap.Any("payload", payload))
	} else {
		h.logger.Info("callback received", zap.Any("payload", payload))
	}

	h.acknowledge(w, true, "callback received")
}

func (h *CallbackHandler) acknowledge(w http.ResponseWriter, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
	})
}
