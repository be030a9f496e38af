package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartbizsa/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCannedResponseKeywordRouting(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{name: "vat", message: "How do I register for VAT?", want: demoResponses[1]},
		{name: "tax", message: "tax clearance please", want: demoResponses[1]},
		{name: "sars uppercase", message: "What does SARS require?", want: demoResponses[1]},
		{name: "bbbee", message: "Tell me about BBBEE levels", want: demoResponses[2]},
		{name: "empowerment", message: "economic empowerment rules", want: demoResponses[2]},
		{name: "invoice", message: "How should I invoice a client?", want: demoResponses[3]},
		{name: "payment", message: "chasing late payment", want: demoResponses[3]},
		{name: "seda", message: "does seda offer anything", want: demoResponses[4]},
		{name: "government", message: "government grants?", want: demoResponses[4]},
		{name: "default", message: "hello there", want: demoResponses[0]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cannedResponse(tc.message))
		})
	}
}

func TestCannedResponseTaxBeatsInvoice(t *testing.T) {
	// Earlier topics win when several keywords match.
	got := cannedResponse("Do I charge tax on an invoice?")
	assert.Equal(t, demoResponses[1], got)
}

func TestRespondWithoutCredentials(t *testing.T) {
	svc := New(Params{Cfg: config.Config{}, Log: zap.NewNop()})
	got := svc.Respond(context.Background(), "hello", "")
	assert.Equal(t, demoResponses[0], got)
}

func TestRespondRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, completionModel, req.Model)
		assert.Equal(t, 1024, req.MaxTokens)
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[len(req.Messages)-1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Remote advice."}}]}`))
	}))
	defer srv.Close()

	svc := New(Params{
		Cfg: config.Config{Chat: config.ChatConfig{APIKey: "test-key", BaseURL: srv.URL}},
		Log: zap.NewNop(),
	})
	got := svc.Respond(context.Background(), "How do I grow my business?", "")
	assert.Equal(t, "Remote advice.", got)
}

func TestRespondContextBecomesSystemMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 3)
		assert.Equal(t, "system", req.Messages[1].Role)
		assert.Equal(t, "Additional context: retail sector", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	svc := New(Params{
		Cfg: config.Config{Chat: config.ChatConfig{APIKey: "test-key", BaseURL: srv.URL}},
		Log: zap.NewNop(),
	})
	svc.Respond(context.Background(), "question", "retail sector")
}

func TestRespondRemoteFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := New(Params{
		Cfg: config.Config{Chat: config.ChatConfig{APIKey: "test-key", BaseURL: srv.URL}},
		Log: zap.NewNop(),
	})
	got := svc.Respond(context.Background(), "vat question", "")
	assert.Equal(t, demoResponses[1], got)
}
