package api

import (
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
	mc "github.com/saeidalz13/battleship-referee/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gm mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip]
	HandleFleetReady(game *mb.Game) mc.Message[mc.RespFleetReady]
	HandleFire(game *mb.Game) mc.Message[mc.RespFire]
	HandleBoard(game *mb.Game) mc.Message[mc.RespBoard]
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		log.Warn("cannot accept more than one payload; only the first is used")
	}

	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleCreateGame(gm mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	game := gm.CreateGame()

	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)
	resp.AddPayload(mc.RespCreateGame{GameUuid: game.Uuid()})
	return game, resp
}

// HandlePlaceShip puts one ship of the fleet on the board. A bad
// placement ends the game; the client has to create a new one.
func (r Request) HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	if game == nil {
		resp.AddError(cerr.ErrNoGame.Error(), "create a game first")
		return resp
	}

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid ship placement payload")
		return resp
	}

	spec := req.Payload.ShipSpec()
	if err := game.Place(spec); err != nil {
		resp.AddError(err.Error(), setupErrMessage(err))
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{
		ShipType:    spec.Type.String(),
		ShipsPlaced: len(game.Board().Fleet()),
	})
	return resp
}

func (r Request) HandleFleetReady(game *mb.Game) mc.Message[mc.RespFleetReady] {
	resp := mc.NewMessage[mc.RespFleetReady](mc.CodeFleetReady)

	if game == nil {
		resp.AddError(cerr.ErrNoGame.Error(), "create a game first")
		return resp
	}

	if err := game.Seal(); err != nil {
		resp.AddError(err.Error(), setupErrMessage(err))
		return resp
	}

	resp.AddPayload(mc.RespFleetReady{ShipsAfloat: game.Board().ShipsAfloat()})
	return resp
}

// HandleFire resolves one shot. An illegal guess is reported and the
// game goes on.
func (r Request) HandleFire(game *mb.Game) mc.Message[mc.RespFire] {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)

	if game == nil {
		resp.AddError(cerr.ErrNoGame.Error(), "create a game first")
		return resp
	}

	var req mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ErrIllegalGuess.Error())
		return resp
	}

	x, y := req.Payload.X, req.Payload.Y
	outcome, err := game.Fire(x, y)
	if err != nil {
		msg := "failed to fire"
		if errors.Is(err, cerr.ErrIllegalGuess) {
			msg = cerr.ErrIllegalGuess.Error()
		}
		resp.AddError(err.Error(), msg)
		return resp
	}

	resp.AddPayload(mc.NewRespFire(x, y, outcome, game))
	return resp
}

func (r Request) HandleBoard(game *mb.Game) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodeBoard)

	if game == nil {
		resp.AddError(cerr.ErrNoGame.Error(), "create a game first")
		return resp
	}

	resp.AddPayload(mc.RespBoard{
		Rows:   game.Board().Rows(),
		Render: game.Board().Render(),
	})
	return resp
}

func setupErrMessage(err error) string {
	if cerr.IsSetupErr(err) {
		return "fleet setup failed; the game is over"
	}
	return "fleet setup request rejected"
}
