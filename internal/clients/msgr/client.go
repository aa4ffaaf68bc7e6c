package msgr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/expense-bot/internal/entity/message"
)

const (
	replyPath = "/message/reply"
	pushPath  = "/message/push"

	requestTimeout = 10 * time.Second
)

type config interface {
	Token() string
	Secret() string
	APIBase() string
}

// Client talks to the messaging platform: reply to an inbound event by
// its single-use token, or push to a user by ID.
type Client struct {
	httpClient *http.Client
	token      string
	secret     string
	base       string
}

func New(config config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		token:      config.Token(),
		secret:     config.Secret(),
		base:       config.APIBase(),
	}
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []wireMessage `json:"messages"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []wireMessage `json:"messages"`
}

func (c *Client) Reply(ctx context.Context, replyToken string, msgs []message.Outbound) error {
	body := replyRequest{ReplyToken: replyToken, Messages: toWire(msgs)}
	return errors.Wrap(c.post(ctx, replyPath, body), "msgr reply")
}

func (c *Client) Push(ctx context.Context, userID string, msgs []message.Outbound) error {
	body := pushRequest{To: userID, Messages: toWire(msgs)}
	return errors.Wrap(c.post(ctx, pushPath, body), "msgr push")
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshalling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("platform returned %d: %s", res.StatusCode, string(body))
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}
