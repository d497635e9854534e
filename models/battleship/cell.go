package battleship

const emptyCellGlyph = "."

// Cell is one position of the board. The ship it points at is owned
// by the board.
type Cell struct {
	coordinates Coordinates
	ship        *Ship
	guessed     bool
}

func newCell(x, y int) Cell {
	return Cell{coordinates: NewCoordinates(x, y)}
}

func (c *Cell) Coordinates() Coordinates {
	return c.coordinates
}

// Ship returns the occupant, or nil for open water.
func (c *Cell) Ship() *Ship {
	return c.ship
}

func (c *Cell) IsOccupied() bool {
	return c.ship != nil
}

// IsGuessed reports whether a shot has landed on this cell while it
// was open water. Shots on ships are tracked by the ship itself.
func (c *Cell) IsGuessed() bool {
	return c.guessed
}

func (c *Cell) setShip(sh *Ship) {
	c.ship = sh
}

func (c *Cell) setGuessed() {
	c.guessed = true
}

// Glyph is the ship code of the occupant or "." for open water.
func (c *Cell) Glyph() string {
	if !c.IsOccupied() {
		return emptyCellGlyph
	}
	return c.ship.Type().String()
}
