package chat

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/go-stomp/stomp/v3/frame"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/screenhive/platform/internal/api/metrics"
	"github.com/screenhive/platform/internal/core/domain"
)

const writeTimeout = 5 * time.Second

// Presence records which members currently hold an open chat connection.
type Presence interface {
	Connected(ctx context.Context, username string) error
	Disconnected(ctx context.Context, username string) error
}

// Server accepts WebSocket connections speaking STOMP. Each connection must
// open with a CONNECT (or STOMP) frame that passes the handshake; the
// resulting AuthContext is bound to the session and every later frame is
// checked by the authorizer against it. Suspension or role changes applied
// after the handshake do not affect an established connection.
type Server struct {
	handshake  *Handshake
	authorizer Authorizer
	hub        *Hub
	presence   Presence
	log        zerolog.Logger
}

func NewServer(handshake *Handshake, hub *Hub, presence Presence, log zerolog.Logger) *Server {
	return &Server{handshake: handshake, hub: hub, presence: presence, log: log}
}

// session is one live chat connection. Writes are serialized by mu; subs is
// owned by the hub and guarded by the hub's lock.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
	auth *domain.AuthContext
	subs map[string]string // subscription id → destination
}

func (s *session) username() string {
	if s.auth == nil {
		return ""
	}
	return s.auth.Principal.Username
}

func (s *session) read(ctx context.Context) (*frame.Frame, error) {
	_, data, err := s.conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil // heartbeat
	}
	return frame.NewReader(bytes.NewReader(data)).Read()
}

func (s *session) write(ctx context.Context, f *frame.Frame) error {
	var buf bytes.Buffer
	if err := frame.NewWriter(&buf).Write(f); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Write(ctx, websocket.MessageText, buf.Bytes())
}

// deliver is the hub-facing write path; it must not block forever on a slow
// client.
func (s *session) deliver(f *frame.Frame) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return s.write(ctx, f)
}

// Handle upgrades the request and serves the connection until it closes.
func (s *Server) Handle(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		Subprotocols: []string{"v12.stomp", "v11.stomp", "v10.stomp"},
	})
	if err != nil {
		s.log.Debug().Err(err).Msg("websocket accept failed")
		return nil
	}

	sess := &session{conn: conn, subs: make(map[string]string)}
	s.serve(c.Request().Context(), sess)
	return nil
}

func (s *Server) serve(ctx context.Context, sess *session) {
	defer sess.conn.CloseNow()

	if !s.establish(ctx, sess) {
		return
	}

	metrics.ChatConnectionsActive.Inc()
	defer metrics.ChatConnectionsActive.Dec()

	if err := s.presence.Connected(ctx, sess.username()); err != nil {
		s.log.Warn().Err(err).Str("username", sess.username()).Msg("presence update failed")
	}
	defer func() {
		s.hub.Remove(sess)
		if err := s.presence.Disconnected(context.Background(), sess.username()); err != nil {
			s.log.Warn().Err(err).Str("username", sess.username()).Msg("presence cleanup failed")
		}
		s.log.Info().Str("username", sess.username()).Msg("chat connection closed")
	}()

	for {
		f, err := sess.read(ctx)
		if err != nil {
			return
		}
		if f == nil {
			continue
		}
		if done := s.handleFrame(ctx, sess, f); done {
			return
		}
	}
}

// establish runs the one-time handshake. A rejected handshake sends a STOMP
// ERROR frame and reports false; no further frames are processed.
func (s *Server) establish(ctx context.Context, sess *session) bool {
	f, err := sess.read(ctx)
	if err != nil || f == nil {
		return false
	}
	if f.Command != frame.CONNECT && f.Command != frame.STOMP {
		s.reject(ctx, sess, errors.New("expected CONNECT frame"))
		return false
	}

	authCtx, err := s.handshake.Authenticate(ctx, f)
	if err != nil {
		metrics.ChatHandshakesTotal.WithLabelValues(handshakeResult(err)).Inc()
		s.log.Info().Err(err).Msg("chat handshake rejected")
		s.reject(ctx, sess, err)
		return false
	}

	sess.auth = authCtx
	if err := sess.write(ctx, frame.New(frame.CONNECTED, frame.Version, "1.2")); err != nil {
		return false
	}

	metrics.ChatHandshakesTotal.WithLabelValues("accepted").Inc()
	s.log.Info().
		Str("username", sess.username()).
		Str("role", string(authCtx.Principal.Role)).
		Msg("chat connection established")
	return true
}

// handleFrame authorizes and dispatches one post-handshake frame, reporting
// whether the connection should terminate.
func (s *Server) handleFrame(ctx context.Context, sess *session, f *frame.Frame) bool {
	destination := f.Header.Get(frame.Destination)

	if err := s.authorizer.Authorize(sess.auth, f.Command, destination); err != nil {
		metrics.ChatFramesTotal.WithLabelValues(f.Command, "denied").Inc()
		s.reject(ctx, sess, err)
		return true
	}
	metrics.ChatFramesTotal.WithLabelValues(f.Command, "ok").Inc()

	switch f.Command {
	case frame.SUBSCRIBE:
		s.hub.Subscribe(sess, destination, f.Header.Get(frame.Id))
	case frame.UNSUBSCRIBE:
		s.hub.Unsubscribe(sess, f.Header.Get(frame.Id))
	case frame.SEND:
		s.hub.Publish(destination, sess.username(), f.Body)
	case frame.DISCONNECT:
		if receipt := f.Header.Get(frame.Receipt); receipt != "" {
			_ = sess.write(ctx, frame.New(frame.RECEIPT, frame.ReceiptId, receipt))
		}
		return true
	}
	return false
}

// reject translates a failure into a protocol-visible STOMP ERROR frame. The
// connection is closed by the caller; per the STOMP contract no frames follow
// an ERROR.
func (s *Server) reject(ctx context.Context, sess *session, err error) {
	_ = sess.write(ctx, frame.New(frame.ERROR, frame.Message, errorMessage(err)))
	_ = sess.conn.Close(websocket.StatusPolicyViolation, errorMessage(err))
}

// errorMessage maps internal failure kinds onto the ERROR frame's message
// header without leaking anything beyond the failure kind.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing credential"
	case errors.Is(err, domain.ErrInvalidCredential):
		return "invalid credential"
	case errors.Is(err, domain.ErrForbiddenRole):
		return "role not permitted to connect"
	case errors.Is(err, domain.ErrAuthorizationDenied):
		return "access denied"
	default:
		return "connection error"
	}
}

func handshakeResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrForbiddenRole):
		return "forbidden_role"
	default:
		return "invalid_credential"
	}
}
