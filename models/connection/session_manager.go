package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
)

const defaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically(ctx context.Context)

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	HandleAbnormalClosureSession(session *Session, failedConn *websocket.Conn) error
	FetchCodeFromMsg(payload []byte) (uint8, error)
	CountSessions() int
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	gracePeriod     time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type SessionManagerOption func(*BattleshipSessionManager)

// WithCleanupInterval sets both how often stale sessions are looked for
// and how old a session has to be to count as stale.
func WithCleanupInterval(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = d
	}
}

// WithGracePeriod sets how long a session with an abnormally closed
// connection waits for the client to reconnect.
func WithGracePeriod(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.gracePeriod = d
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
		gracePeriod:     gracePeriod,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return err
	}

	session.reconnect(conn)
	session.logger().Info("session reconnected")
	return nil
}

func (bsm *BattleshipSessionManager) CountSessions() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// To ensure that there is no dangling connections,
// server session manager marks the sessions that have been
// idle for longer than the cleanup interval as stale and
// deletes them.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			bsm.cleanupStale(now)
		}
	}
}

func (bsm *BattleshipSessionManager) cleanupStale(now time.Time) []string {
	assumedClosedConns := 10

	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	removed := make([]string, 0, assumedClosedConns)
	for id, session := range bsm.sessions {
		if now.Sub(session.LastActive()) > bsm.cleanupInterval {
			removed = append(removed, id)
		}
	}

	for _, id := range removed {
		session := bsm.sessions[id]
		delete(bsm.sessions, id)

		// unblocks the read loop of the session
		if conn := session.Conn(); conn != nil {
			_ = conn.Close()
		}
		log.WithField("session", id).Info("removed stale session")
	}
	return removed
}

// HandleAbnormalClosureSession waits for the client of the session to
// come back on a new connection. failedConn is the connection that
// broke; if it has already been replaced there is nothing to wait for.
func (bsm *BattleshipSessionManager) HandleAbnormalClosureSession(session *Session, failedConn *websocket.Conn) error {
	signal := session.reconnectionSignal()
	if session.Conn() != failedConn {
		return nil
	}

	timer := time.NewTimer(bsm.gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		session.logger().Info("grace period is over; session terminated")
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + session.id)

	case <-signal:
		return nil
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	for {
		conn := session.Conn()
		err := session.writeToConnWithRetry(msg, msgType)
		if err == nil {
			return nil
		}

		// The client came back on another connection meanwhile
		if session.Conn() != conn {
			continue
		}

		connErr, ok := err.(ConnErr)
		if !ok || connErr.Code() != ConnLoopAbnormalClosureRetry {
			return err
		}

		if err := bsm.HandleAbnormalClosureSession(session, conn); err != nil {
			return err
		}
	}
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		conn := session.Conn()
		messageType, payload, err := conn.ReadMessage()
		if err == nil {
			session.touch(time.Now())
			return messageType, payload, nil
		}

		// conn was replaced and closed by a reconnect
		if session.Conn() != conn {
			retries = 0
			continue
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.HandleAbnormalClosureSession(session, conn); err != nil {
				return -1, []byte{}, err
			}
			retries = 0

		default:
			return -1, []byte{}, err
		}
	}
}

func (bsm *BattleshipSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
