package msgr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-bot/internal/entity/message"
)

type capturedRequest struct {
	path string
	auth string
	body []byte
}

func newPlatformStub(t *testing.T, status int, captured *[]capturedRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		*captured = append(*captured, capturedRequest{
			path: r.URL.Path,
			auth: r.Header.Get("Authorization"),
			body: body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
}

type stubConfig struct {
	base string
}

func (c stubConfig) Token() string   { return "test-token" }
func (c stubConfig) Secret() string  { return "test-secret" }
func (c stubConfig) APIBase() string { return c.base }

func Test_OnReply_ShouldPostTokenAndMessages(t *testing.T) {
	var captured []capturedRequest
	server := newPlatformStub(t, http.StatusOK, &captured)
	defer server.Close()

	client := New(stubConfig{base: server.URL})
	err := client.Reply(context.Background(), "token-1",
		[]message.Outbound{message.Text{Body: "hi"}})

	assert.NoError(t, err)
	assert.Len(t, captured, 1)
	assert.Equal(t, replyPath, captured[0].path)
	assert.Equal(t, "Bearer test-token", captured[0].auth)

	var req replyRequest
	assert.NoError(t, json.Unmarshal(captured[0].body, &req))
	assert.Equal(t, "token-1", req.ReplyToken)
	assert.Len(t, req.Messages, 1)
	assert.Equal(t, "hi", req.Messages[0].Text)
}

func Test_OnPush_ShouldAddressUserID(t *testing.T) {
	var captured []capturedRequest
	server := newPlatformStub(t, http.StatusOK, &captured)
	defer server.Close()

	client := New(stubConfig{base: server.URL})
	err := client.Push(context.Background(), "user-1",
		[]message.Outbound{message.Text{Body: "one"}, message.Text{Body: "two"}})

	assert.NoError(t, err)
	assert.Equal(t, pushPath, captured[0].path)

	var req pushRequest
	assert.NoError(t, json.Unmarshal(captured[0].body, &req))
	assert.Equal(t, "user-1", req.To)
	assert.Len(t, req.Messages, 2)
}

func Test_OnPlatformError_ShouldFailTheCall(t *testing.T) {
	var captured []capturedRequest
	server := newPlatformStub(t, http.StatusInternalServerError, &captured)
	defer server.Close()

	client := New(stubConfig{base: server.URL})
	err := client.Reply(context.Background(), "token-1",
		[]message.Outbound{message.Text{Body: "hi"}})

	assert.Error(t, err)
}
