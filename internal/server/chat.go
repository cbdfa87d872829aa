package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coder/websocket"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/pkg/limits"
	"github.com/vittin/site/pkg/logging"
	"github.com/vittin/site/pkg/protocol"
)

// maxChatBody bounds the JSON body of POST /api/chat.
const maxChatBody = 16 << 10

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string        `json:"session_id"`
	Reply     protocol.Turn `json:"reply"`
}

var (
	errEmptyMessage    = errors.New("message is empty")
	errMessageTooLong  = errors.New("message is too long")
	errTooManySessions = errors.New("too many chat sessions, try again later")
)

// checkMessage rejects blank and oversized messages; the text itself is
// forwarded unchanged.
func (s *Server) checkMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return errEmptyMessage
	}
	if utf8.RuneCountInString(text) > s.cfg.Chat.MaxMessageLength {
		return errMessageTooLong
	}
	return nil
}

// session resolves the widget's session id, minting a new one when it is
// missing or malformed.
func (s *Server) session(id string) (*chat.Session, error) {
	if !chat.ValidID(id) {
		id = chat.NewID()
	}
	return s.registry.Get(id)
}

func toTurn(m chat.Message) protocol.Turn {
	return protocol.Turn{Role: string(m.Role), Text: m.Text, IsError: m.IsError}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	// The provider call has no deadline of its own; the server write timeout
	// must not cut the reply off.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	var req chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.checkMessage(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.session(req.SessionID)
	if err != nil {
		logging.L(r.Context()).Warn("chat session rejected", logging.Err(err))
		writeError(w, http.StatusServiceUnavailable, errTooManySessions.Error())
		return
	}

	reply := s.service.Send(r.Context(), sess, req.Message)
	writeJSON(w, http.StatusOK, chatResponse{SessionID: sess.ID(), Reply: toTurn(reply)})
}

func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	log := logging.L(r.Context())

	if !originAllowed(r.Header.Get("Origin"), r.Host, s.cfg.Server.AllowedOrigins) {
		writeError(w, http.StatusForbidden, "origin not allowed")
		return
	}

	ip := limits.ClientIP(r)
	if !s.conns.Acquire(ip) {
		writeError(w, http.StatusTooManyRequests, "too many connections")
		return
	}
	defer s.conns.Release(ip)

	// Server read/write timeouts would otherwise outlive the upgrade.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:   protocol.Subprotocols(),
		OriginPatterns: originPatterns(s.cfg.Server.AllowedOrigins),
	})
	if err != nil {
		log.Warn("websocket accept failed", logging.Err(err))
		return
	}
	defer conn.CloseNow()

	codec, err := protocol.ForSubprotocol(conn.Subprotocol())
	if err != nil {
		conn.Close(websocket.StatusPolicyViolation, "unsupported subprotocol")
		return
	}
	// Room for the longest message in any codec plus the envelope.
	conn.SetReadLimit(int64(s.cfg.Chat.MaxMessageLength)*4 + 1024)

	sess, err := s.session(r.URL.Query().Get("session_id"))
	if err != nil {
		conn.Close(websocket.StatusTryAgainLater, errTooManySessions.Error())
		return
	}
	log = log.With(logging.Session(sess.ID()), logging.String("codec", codec.Name()))
	log.Debug("chat websocket connected")

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				log.Debug("chat websocket read ended", logging.Err(err))
			}
			return
		}

		out := s.handleFrame(ctx, ip, sess, codec, data)
		if err := write(ctx, conn, codec, out); err != nil {
			log.Debug("chat websocket write failed", logging.Err(err))
			return
		}
	}
}

// handleFrame turns one inbound frame into the frame to send back.
func (s *Server) handleFrame(ctx context.Context, ip string, sess *chat.Session, codec protocol.Codec, data []byte) *protocol.Frame {
	in, err := codec.Decode(data)
	if err != nil {
		return protocol.NewError("invalid frame")
	}
	if err := in.Validate(); err != nil {
		return protocol.NewError("%s", err.Error())
	}
	if err := s.checkMessage(in.Text); err != nil {
		return protocol.NewError("%s", err.Error())
	}
	if !s.limiter.Allow(ip) {
		return protocol.NewError("%s", limits.ErrRateLimitExceeded.Error())
	}

	return protocol.NewReply(sess.ID(), toTurn(s.service.Send(ctx, sess, in.Text)))
}

func write(ctx context.Context, conn *websocket.Conn, codec protocol.Codec, f *protocol.Frame) error {
	data, err := codec.Encode(f)
	if err != nil {
		return err
	}
	return conn.Write(ctx, codec.MessageType(), data)
}
