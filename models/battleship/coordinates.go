package battleship

import "fmt"

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) InBounds() bool {
	return inBounds(c.X) && inBounds(c.Y)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func inBounds(v int) bool {
	return v >= 0 && v < BoardSize
}

// ShipSpec is one placement record: a ship code and the two end points
// of the span it covers, in any order.
type ShipSpec struct {
	Type ShipType `json:"ship_type"`
	X1   int      `json:"x1"`
	Y1   int      `json:"y1"`
	X2   int      `json:"x2"`
	Y2   int      `json:"y2"`
}

func NewShipSpec(t ShipType, x1, y1, x2, y2 int) ShipSpec {
	return ShipSpec{Type: t, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (s ShipSpec) String() string {
	return fmt.Sprintf("%s %d %d %d %d", s.Type, s.X1, s.Y1, s.X2, s.Y2)
}

// Shot is one guess record.
type Shot = Coordinates
