package connection

import (
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
}

type RespPlaceShip struct {
	ShipType    string `json:"ship_type"`
	ShipsPlaced int    `json:"ships_placed"`
}

type RespFleetReady struct {
	ShipsAfloat int `json:"ships_afloat"`
}

type RespFire struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Result      string `json:"result"`
	ShipType    string `json:"ship_type,omitempty"`
	Description string `json:"description"`
	Shots       int    `json:"shots"`
	ShipsAfloat int    `json:"ships_afloat"`
}

func NewRespFire(x, y int, outcome mb.ShotOutcome, game *mb.Game) RespFire {
	return RespFire{
		X:           x,
		Y:           y,
		Result:      outcome.Result.String(),
		ShipType:    outcome.Ship.String(),
		Description: outcome.String(),
		Shots:       game.Shots(),
		ShipsAfloat: game.Board().ShipsAfloat(),
	}
}

type RespEndGame struct {
	Shots int `json:"shots"`
}

type RespBoard struct {
	Rows   []string `json:"rows"`
	Render string   `json:"render"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
