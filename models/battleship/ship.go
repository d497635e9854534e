package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "V"
	}
	return "H"
}

type HitResult uint8

const (
	HitResultHit HitResult = iota
	HitResultHitAgain
	HitResultSunk
)

type Ship struct {
	code        ShipType
	orientation Orientation
	start       Coordinates
	end         Coordinates
	hits        []bool
	floating    int
}

// NewShip validates a placement and returns the ship it describes.
// The end points may be given in either order.
func NewShip(code ShipType, x1, y1, x2, y2 int) (*Ship, error) {
	required, ok := code.RequiredLength()
	if !ok {
		return nil, cerr.ErrUnknownShipType(string(code))
	}

	for _, v := range [...]int{x1, y1, x2, y2} {
		if !inBounds(v) {
			return nil, cerr.ErrShipOutOfBounds(x1, y1, x2, y2)
		}
	}

	sh := &Ship{code: code}

	var size int
	switch {
	case x1 == x2:
		sh.orientation = OrientationVertical
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		size = y2 - y1 + 1

	case y1 == y2:
		sh.orientation = OrientationHorizontal
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		size = x2 - x1 + 1

	default:
		return nil, cerr.ErrShipNotStraight(x1, y1, x2, y2)
	}

	if size != required {
		return nil, cerr.ErrShipSize(string(code), size, required)
	}

	sh.start = NewCoordinates(x1, y1)
	sh.end = NewCoordinates(x2, y2)
	sh.hits = make([]bool, size)
	sh.floating = size

	return sh, nil
}

func NewShipFromSpec(spec ShipSpec) (*Ship, error) {
	return NewShip(spec.Type, spec.X1, spec.Y1, spec.X2, spec.Y2)
}

func (sh *Ship) Type() ShipType {
	return sh.code
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Length() int {
	return len(sh.hits)
}

// Span returns the normalized end points, lower one first.
func (sh *Ship) Span() (Coordinates, Coordinates) {
	return sh.start, sh.end
}

// Cells returns the coordinates the ship occupies from the start of
// its span to the end.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, len(sh.hits))
	for i := range sh.hits {
		cells = append(cells, sh.segmentCoordinates(i))
	}
	return cells
}

func (sh *Ship) Remaining() int {
	return sh.floating
}

func (sh *Ship) IsSunk() bool {
	return sh.floating == 0
}

// RegisterHit records a shot at (x, y), which must lie on the ship.
// Hitting a segment that was hit before changes nothing.
func (sh *Ship) RegisterHit(x, y int) HitResult {
	// A sunk ship has nothing left to hit
	if sh.floating == 0 {
		return HitResultHitAgain
	}

	i := sh.segmentIndex(x, y)
	if sh.hits[i] {
		return HitResultHitAgain
	}

	sh.hits[i] = true
	sh.floating--

	if sh.floating > 0 {
		return HitResultHit
	}
	return HitResultSunk
}

func (sh *Ship) segmentIndex(x, y int) int {
	if sh.orientation == OrientationHorizontal {
		return x - sh.start.X
	}
	return y - sh.start.Y
}

func (sh *Ship) segmentCoordinates(i int) Coordinates {
	if sh.orientation == OrientationHorizontal {
		return NewCoordinates(sh.start.X+i, sh.start.Y)
	}
	return NewCoordinates(sh.start.X, sh.start.Y+i)
}

func (sh *Ship) String() string {
	var hits strings.Builder
	for _, h := range sh.hits {
		if h {
			hits.WriteByte('X')
		} else {
			hits.WriteByte('-')
		}
	}
	return fmt.Sprintf("%s @ %s - %s %s:%s", sh.code, sh.start, sh.end, sh.orientation, hits.String())
}
