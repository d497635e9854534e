package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
)

// Board is the 10x10 grid of one fleet. It is not safe for concurrent
// use; a host serving many games keeps each board inside one session.
type Board struct {
	// grid[y][x]
	grid [BoardSize][BoardSize]Cell

	// ships still afloat, keyed by type
	ships map[ShipType]*Ship

	// every placed ship in placement order; sunk ships stay here
	fleet []*Ship

	allSunk bool
}

func NewBoard() *Board {
	b := &Board{
		ships: make(map[ShipType]*Ship, len(FleetTypes)),
		fleet: make([]*Ship, 0, len(FleetTypes)),
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.grid[y][x] = newCell(x, y)
		}
	}
	return b
}

// Place validates spec against the fleet and the ships already on the
// board, then puts the ship on its cells. A failed placement leaves the
// board untouched.
func (b *Board) Place(spec ShipSpec) error {
	sh, err := NewShipFromSpec(spec)
	if err != nil {
		return err
	}

	if _, prs := b.ships[sh.Type()]; prs {
		return cerr.ErrShipTypeDuplicate(sh.Type().String())
	}

	span := sh.Cells()
	for _, c := range span {
		cell := &b.grid[c.Y][c.X]
		if cell.IsOccupied() {
			at := cell.Coordinates()
			return cerr.ErrShipOverlap(sh.Type().String(), at.X, at.Y, cell.Ship().Type().String())
		}
	}

	for _, c := range span {
		b.grid[c.Y][c.X].setShip(sh)
	}
	b.ships[sh.Type()] = sh
	b.fleet = append(b.fleet, sh)

	return nil
}

// IsFleetComplete returns an error unless exactly one ship of every
// fleet type has been placed.
func (b *Board) IsFleetComplete() error {
	placed := 0
	for _, t := range FleetTypes {
		if _, prs := b.ships[t]; prs {
			placed++
		}
	}

	if placed != len(FleetTypes) || len(b.ships) != len(FleetTypes) {
		return cerr.ErrFleetIncomplete(placed, len(FleetTypes))
	}
	return nil
}

// Fire resolves one shot. Once the last ship has gone down the board
// refuses further shots with ErrGameOver.
func (b *Board) Fire(x, y int) (ShotOutcome, error) {
	if !inBounds(x) || !inBounds(y) {
		return ShotOutcome{}, cerr.ErrXorYOutOfGridBound(x, y)
	}
	if b.allSunk {
		return ShotOutcome{}, cerr.ErrGameOver
	}

	cell := &b.grid[y][x]
	sh := cell.Ship()

	if !cell.IsOccupied() {
		if cell.IsGuessed() {
			return NewShotOutcome(ShotResultMissAgain), nil
		}
		cell.setGuessed()
		return NewShotOutcome(ShotResultMiss), nil
	}

	switch sh.RegisterHit(x, y) {
	case HitResultHitAgain:
		return NewShotOutcome(ShotResultHitAgain), nil

	case HitResultHit:
		return NewShotOutcome(ShotResultHit), nil
	}

	delete(b.ships, sh.Type())
	if len(b.ships) == 0 {
		b.allSunk = true
		return NewSunkOutcome(ShotResultAllSunk, sh.Type()), nil
	}
	return NewSunkOutcome(ShotResultSunk, sh.Type()), nil
}

// Cell returns the cell at (x, y), or nil off the board.
func (b *Board) Cell(x, y int) *Cell {
	if !inBounds(x) || !inBounds(y) {
		return nil
	}
	return &b.grid[y][x]
}

// Ship returns the ship of type t if it is still afloat.
func (b *Board) Ship(t ShipType) (*Ship, bool) {
	sh, prs := b.ships[t]
	return sh, prs
}

// Fleet returns every placed ship, sunk or not, in placement order.
func (b *Board) Fleet() []*Ship {
	fleet := make([]*Ship, len(b.fleet))
	copy(fleet, b.fleet)
	return fleet
}

func (b *Board) ShipsAfloat() int {
	return len(b.ships)
}

func (b *Board) IsAllSunk() bool {
	return b.allSunk
}

// Rows returns the glyph of every cell, top row (y = 9) first.
func (b *Board) Rows() []string {
	rows := make([]string, 0, BoardSize)
	for y := BoardSize - 1; y >= 0; y-- {
		var row strings.Builder
		for x := 0; x < BoardSize; x++ {
			row.WriteString(b.grid[y][x].Glyph())
		}
		rows = append(rows, row.String())
	}
	return rows
}

// Render draws the placement of the fleet. Shots do not show up.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteByte('\n')

	for i, row := range b.Rows() {
		sb.WriteString(strconv.Itoa(BoardSize - 1 - i))
		sb.WriteString(": ")
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	sb.WriteString(" : ")
	for x := 0; x < BoardSize; x++ {
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}
