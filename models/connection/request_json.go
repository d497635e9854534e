package connection

import (
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

type ReqPlaceShip struct {
	ShipType string `json:"ship_type"`
	X1       int    `json:"x1"`
	Y1       int    `json:"y1"`
	X2       int    `json:"x2"`
	Y2       int    `json:"y2"`
}

func (r ReqPlaceShip) ShipSpec() mb.ShipSpec {
	return mb.NewShipSpec(mb.ParseShipType(r.ShipType), r.X1, r.Y1, r.X2, r.Y2)
}

type ReqFire struct {
	X int `json:"x"`
	Y int `json:"y"`
}
