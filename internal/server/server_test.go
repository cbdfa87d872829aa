package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/config"
	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/pkg/a11y"
	"github.com/vittin/site/pkg/limits"
	"github.com/vittin/site/pkg/protocol"
)

func echoProvider() chat.Provider {
	return chat.ProviderFunc(func(ctx context.Context, cfg chat.ConversationConfig) (chat.Conversation, error) {
		return chat.ConversationFunc(func(ctx context.Context, text string) (string, error) {
			return "eco: " + text, nil
		}), nil
	})
}

func newTestServer(t *testing.T, apiKey string, mod ...func(*Options)) *Server {
	t.Helper()

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	cfg.Chat.APIKey = apiKey

	store, err := content.NewStore("")
	require.NoError(t, err)

	opts := Options{
		Config:   cfg,
		Service:  chat.NewService(chat.Config{APIKey: apiKey}, echoProvider(), nil),
		Registry: chat.NewRegistry(time.Minute, 10),
		Store:    store,
	}
	for _, m := range mod {
		m(&opts)
	}
	return New(opts)
}

func postChat(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPage_Renders(t *testing.T) {
	s := newTestServer(t, "key")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="pt-BR">`)
	assert.Contains(t, body, `id="series"`)
	assert.Contains(t, body, `data-session-id="`)
	assert.Contains(t, body, `data-online="true"`)

	report, err := a11y.Audit(strings.NewReader(body))
	require.NoError(t, err)
	assert.True(t, report.OK(), "audit issues: %v", report.Issues)
}

func TestPage_FreshSessionPerLoad(t *testing.T) {
	s := newTestServer(t, "key")
	a := s.PageOptions(nil).SessionID
	b := s.PageOptions(nil).SessionID
	assert.NotEqual(t, a, b)
	assert.True(t, chat.ValidID(a))
}

func TestPage_Language(t *testing.T) {
	s := newTestServer(t, "")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)
	assert.Contains(t, rec.Body.String(), "Latest Videos")
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Latest Videos")

	// Anchors do not follow the language.
	assert.Contains(t, rec.Body.String(), `href="#series"`)
	assert.Contains(t, rec.Body.String(), `data-online="false"`)
}

func TestPage_UnknownPath(t *testing.T) {
	s := newTestServer(t, "key")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssets_Script(t *testing.T) {
	s := newTestServer(t, "key")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/vittin.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-chat")
}

func TestChat_Reply(t *testing.T) {
	s := newTestServer(t, "key")
	id := chat.NewID()

	rec := postChat(t, s.Handler(), `{"session_id":"`+id+`","message":"Olá"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, "model", resp.Reply.Role)
	assert.Equal(t, "eco: Olá", resp.Reply.Text)
	assert.False(t, resp.Reply.IsError)

	sess, ok := s.registry.Lookup(id)
	require.True(t, ok)
	assert.Len(t, sess.Transcript(), 2)
}

func TestChat_Offline(t *testing.T) {
	s := newTestServer(t, "")

	rec := postChat(t, s.Handler(), `{"message":"oi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, chat.OfflineReply, resp.Reply.Text)
	assert.True(t, resp.Reply.IsError)
	assert.True(t, chat.ValidID(resp.SessionID), "missing id is minted")
}

func TestChat_BadRequests(t *testing.T) {
	s := newTestServer(t, "key")

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message":""}`},
		{"blank message", `{"message":"   \n"}`},
		{"too long", `{"message":"` + strings.Repeat("a", 1001) + `"}`},
		{"not json", `hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, s.Handler(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestChat_RateLimited(t *testing.T) {
	s := newTestServer(t, "key", func(o *Options) {
		o.Limiter = limits.NewTokenBucket(0.0001, 1)
	})

	assert.Equal(t, http.StatusOK, postChat(t, s.Handler(), `{"message":"1"}`).Code)

	rec := postChat(t, s.Handler(), `{"message":"2"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestNewsletter(t *testing.T) {
	s := newTestServer(t, "")

	post := func(email, accept string) *httptest.ResponseRecorder {
		form := url.Values{"email": {email}}
		req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", accept)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		return rec
	}

	rec := post("not-an-email", "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-mail inválido.")

	rec = post("ana@example.com", "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"subscribed"`)

	rec = post("ana@example.com", "text/html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="status"`)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "missing credential only degrades")
	assert.Contains(t, rec.Body.String(), `"degraded"`)
}

func TestRecovery(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"", nil, true},
		{"http://localhost:8080", nil, true},
		{"http://evil.example", nil, false},
		{"http://evil.example", []string{"*"}, true},
		{"https://vittin.example", []string{"https://vittin.example"}, true},
		{"javascript://localhost:8080", nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, originAllowed(tt.origin, "localhost:8080", tt.allowed), "origin %q", tt.origin)
	}
}

func wsURL(srv *httptest.Server, sessionID string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/chat/ws?session_id=" + sessionID
}

func TestChatWS_JSON(t *testing.T) {
	s := newTestServer(t, "key")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := chat.NewID()
	conn, _, err := websocket.Dial(ctx, wsURL(srv, id), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"message","text":"Olá"}`)))
	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	assert.JSONEq(t, `{"type":"reply","session_id":"`+id+`","message":{"role":"model","text":"eco: Olá"}}`, string(data))

	// An invalid frame gets an error frame and the socket stays open.
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"message","text":"  "}`)))
	_, data, err = conn.Read(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"error"`)

	conn.Close(websocket.StatusNormalClosure, "")

	sess, ok := s.registry.Lookup(id)
	require.True(t, ok)
	assert.Len(t, sess.Transcript(), 2)
}

func TestChatWS_MsgPack(t *testing.T) {
	s := newTestServer(t, "key")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv, chat.NewID()), &websocket.DialOptions{
		Subprotocols: []string{protocol.SubprotocolMsgPack},
	})
	require.NoError(t, err)
	defer conn.CloseNow()
	require.Equal(t, protocol.SubprotocolMsgPack, conn.Subprotocol())

	codec := protocol.MsgPackCodec{}
	out, err := codec.Encode(&protocol.Frame{Type: protocol.FrameMessage, Text: "ping"})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageBinary, out))

	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageBinary, typ)

	f, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, protocol.FrameReply, f.Type)
	require.NotNil(t, f.Message)
	assert.Equal(t, "eco: ping", f.Message.Text)
}

func TestChatWS_MintedSessionReported(t *testing.T) {
	s := newTestServer(t, "key")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv, "not-a-uuid"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"type":"message","text":"Oi"}`)))
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var f protocol.Frame
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, protocol.FrameReply, f.Type)
	require.True(t, chat.ValidID(f.SessionID))
	assert.NotEqual(t, "not-a-uuid", f.SessionID)

	sess, ok := s.registry.Lookup(f.SessionID)
	require.True(t, ok)
	assert.Len(t, sess.Transcript(), 2)
}

func TestChatWS_RejectsForeignOrigin(t *testing.T) {
	s := newTestServer(t, "key")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(srv, chat.NewID()), &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": {"http://evil.example"}},
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestChatWS_ConnectionLimit(t *testing.T) {
	s := newTestServer(t, "key", func(o *Options) {
		o.Conns = limits.NewConnectionLimiter(1)
	})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, _, err := websocket.Dial(ctx, wsURL(srv, chat.NewID()), nil)
	require.NoError(t, err)
	defer first.CloseNow()

	_, resp, err := websocket.Dial(ctx, wsURL(srv, chat.NewID()), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestChat_SlowProviderOutlivesWriteTimeout(t *testing.T) {
	slow := chat.ProviderFunc(func(ctx context.Context, cfg chat.ConversationConfig) (chat.Conversation, error) {
		return chat.ConversationFunc(func(ctx context.Context, text string) (string, error) {
			time.Sleep(1500 * time.Millisecond)
			return "devagar: " + text, nil
		}), nil
	})
	s := newTestServer(t, "key", func(o *Options) {
		o.Config.Server.WriteTimeout = time.Second
		o.Service = chat.NewService(chat.Config{APIKey: "key"}, slow, nil)
	})

	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(ln) }()
	defer s.Shutdown(context.Background())

	resp, err := http.Post("http://"+ln.Addr().String()+"/api/chat", "application/json",
		strings.NewReader(`{"session_id":"`+chat.NewID()+`","message":"Oi"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "devagar: Oi", out.Reply.Text)
}

func TestServe_Shutdown(t *testing.T) {
	s := newTestServer(t, "key")
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.Contains(body, []byte("alive")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-done)
}
