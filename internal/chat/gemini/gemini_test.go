package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittin/site/internal/chat"
)

type recordedRequest struct {
	Path string
	Body map[string]any
}

func fakeGemini(t *testing.T, reply string, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)

		mu.Lock()
		reqs = append(reqs, recordedRequest{Path: r.URL.Path, Body: body})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": reply}},
				},
				"finishReason": "STOP",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestConversation_SendsSystemInstructionAndHistory(t *testing.T) {
	srv, reqs := fakeGemini(t, "Os dinossauros sumiram há 66 milhões de anos 🦕", http.StatusOK)
	p := New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	conv, err := p.NewConversation(context.Background(), chat.ConversationConfig{
		Model:             chat.DefaultModel,
		SystemInstruction: "You are 'VITTIN BOT'",
	})
	require.NoError(t, err)

	out, err := conv.Send(context.Background(), "Quando os dinossauros sumiram?")
	require.NoError(t, err)
	assert.Equal(t, "Os dinossauros sumiram há 66 milhões de anos 🦕", out)

	_, err = conv.Send(context.Background(), "E o asteroide?")
	require.NoError(t, err)

	require.Len(t, *reqs, 2)
	first := (*reqs)[0]
	assert.True(t, strings.HasSuffix(first.Path, "models/gemini-2.5-flash:generateContent"), first.Path)

	sys, _ := json.Marshal(first.Body["systemInstruction"])
	assert.Contains(t, string(sys), "VITTIN BOT")

	contents, ok := (*reqs)[1].Body["contents"].([]any)
	require.True(t, ok)
	assert.Len(t, contents, 3, "second call carries user, model, user")
}

func TestConversation_HTTPErrorIsReturned(t *testing.T) {
	srv, _ := fakeGemini(t, "", http.StatusBadRequest)
	p := New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	conv, err := p.NewConversation(context.Background(), chat.ConversationConfig{Model: chat.DefaultModel})
	require.NoError(t, err)

	_, err = conv.Send(context.Background(), "Oi")
	assert.Error(t, err)
}

func TestProvider_NoKey(t *testing.T) {
	_, err := New("").NewConversation(context.Background(), chat.ConversationConfig{Model: chat.DefaultModel})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestService_WithGeminiFallsBackOnOutage(t *testing.T) {
	srv, _ := fakeGemini(t, "", http.StatusBadRequest)
	provider := New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	svc := chat.NewService(chat.Config{APIKey: "test-key"}, provider, nil)

	msg := svc.Send(context.Background(), chat.NewSession(chat.NewID(), time.Now()), "Oi")
	assert.Equal(t, chat.FallbackReply, msg.Text)
	assert.True(t, msg.IsError)
}
