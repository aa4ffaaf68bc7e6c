package msgr

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/messages"
)

const signatureHeader = "X-Signature"

type batchHandler interface {
	HandleBatch(ctx context.Context, events []messages.Event) error
}

type webhookBody struct {
	Events []webhookEvent `json:"events"`
}

type webhookEvent struct {
	ReplyToken string `json:"replyToken"`
	Source     struct {
		UserID string `json:"userId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

// WebhookHandler parses a platform webhook call into a batch of text
// events and hands it to the service. The call is acknowledged after the
// whole batch has finished; per-event failures are logged, not surfaced
// to the platform.
func (c *Client) WebhookHandler(service batchHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}

		if !c.validSignature(body, r.Header.Get(signatureHeader)) {
			logger.Warn("webhook signature mismatch")
			http.Error(w, "bad signature", http.StatusBadRequest)
			return
		}

		var parsed webhookBody
		if err = json.Unmarshal(body, &parsed); err != nil {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}

		events := make([]messages.Event, 0, len(parsed.Events))
		for _, ev := range parsed.Events {
			if ev.Message.Type != "text" {
				continue
			}
			events = append(events, messages.Event{
				ReplyToken: ev.ReplyToken,
				UserID:     ev.Source.UserID,
				Text:       ev.Message.Text,
			})
		}

		if err = service.HandleBatch(r.Context(), events); err != nil {
			logger.Error("batch finished with errors", zap.Error(err))
		}
		w.WriteHeader(http.StatusOK)
	})
}

func (c *Client) validSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
