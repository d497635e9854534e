package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-referee/db/sqlc"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
	mc "github.com/saeidalz13/battleship-referee/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a shot or a placement is a few dozen bytes
		ReadBufferSize:  1024,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	ipnet          net.IPNet
}

// NewRequestProcessor serves one game per websocket session. q may be
// nil to run without analytics.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		ipnet:          serverIpNet(),
	}
	rp.analytics = sqlc.NewDbManager(q, rp.ipnet).Analytics

	return rp
}

// serverIpNet picks the first IPv4 address of an interface that is up,
// falling back to loopback.
func serverIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warnln("failed to list interfaces:", err)
		return loopback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) Analytics() *sqlc.AnalyticsManager {
	return rp.analytics
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnln("could not upgrade connection:", err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.WithField("remote", conn.RemoteAddr().String()).Info("a new connection established")
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()
	logger := log.WithField("session", sessionId)

	defer func() {
		if game := session.Game(); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		logger.Info("session terminated")
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// The connection could not be recovered after retries
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		req := NewRequest(payload)
		game := session.Game()

		var respMsg interface{}

		switch code {

		// A session plays one game at a time; creating a new game
		// drops the previous one.
		case mc.CodeCreateGame:
			if game != nil {
				rp.gameManager.TerminateGame(game.Uuid())
			}

			newGame, msg := req.HandleCreateGame(rp.gameManager)
			session.SetGame(newGame)
			logger.WithField("game", newGame.Uuid()).Info("game created")

			rp.recordAnalytics(func(ctx context.Context) error {
				return rp.analytics.IncrementGamesCreatedCount(ctx)
			})
			respMsg = msg

		case mc.CodePlaceShip:
			msg := req.HandlePlaceShip(game)
			if msg.Error != nil {
				logger.WithField("details", msg.Error.ErrorDetails).Debug("ship placement rejected")
			}
			respMsg = msg

		case mc.CodeFleetReady:
			msg := req.HandleFleetReady(game)
			if msg.Error != nil {
				logger.WithField("details", msg.Error.ErrorDetails).Debug("fleet rejected")
			}
			respMsg = msg

		case mc.CodeFire:
			msg := req.HandleFire(game)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if msg.Error != nil || msg.Payload.Result != mb.ShotResultAllSunk.String() {
				continue sessionLoop
			}

			logger.WithFields(log.Fields{"game": game.Uuid(), "shots": game.Shots()}).Info("all ships sunk")
			rp.recordAnalytics(func(ctx context.Context) error {
				return rp.analytics.IncrementGamesFinishedCount(ctx, game.Shots())
			})

			respEndGame := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
			respEndGame.AddPayload(mc.RespEndGame{Shots: game.Shots()})
			respMsg = respEndGame

		case mc.CodeBoard:
			respMsg = req.HandleBoard(game)

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			respMsg = respInvalidSignal
		}

		if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}

// Analytics failures never end a game.
func (rp RequestProcessor) recordAnalytics(fn func(ctx context.Context) error) {
	if !rp.analytics.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		log.Warnln("failed to record analytics:", err)
	}
}
