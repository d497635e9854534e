package battleship

import (
	"errors"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-referee/internal/error"
)

type GamePhase uint8

const (
	GamePhaseSetup GamePhase = iota
	GamePhasePlay
	GamePhaseOver
)

func (p GamePhase) String() string {
	switch p {
	case GamePhaseSetup:
		return "setup"
	case GamePhasePlay:
		return "play"
	default:
		return "over"
	}
}

// Game drives one board through setup and play. Setup errors are
// fatal: the game moves straight to GamePhaseOver and keeps the error.
type Game struct {
	uuid      string
	board     *Board
	phase     GamePhase
	shots     int
	setupErr  error
	createdAt time.Time
}

func NewGame() *Game {
	return newGame(uuid.NewString()[:6])
}

func newGame(gameUuid string) *Game {
	return &Game{
		uuid:      gameUuid,
		board:     NewBoard(),
		phase:     GamePhaseSetup,
		createdAt: time.Now(),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Phase() GamePhase {
	return g.phase
}

// Shots counts the shots that reached the board.
func (g *Game) Shots() int {
	return g.shots
}

// SetupErr is the error that ended setup, if any.
func (g *Game) SetupErr() error {
	return g.setupErr
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) Place(spec ShipSpec) error {
	if g.phase != GamePhaseSetup {
		return cerr.ErrSetupClosed
	}

	if err := g.board.Place(spec); err != nil {
		g.failSetup(err)
		return err
	}
	return nil
}

// Seal closes setup. The fleet must be complete.
func (g *Game) Seal() error {
	if g.phase != GamePhaseSetup {
		return cerr.ErrSetupClosed
	}

	if err := g.board.IsFleetComplete(); err != nil {
		g.failSetup(err)
		return err
	}

	g.phase = GamePhasePlay
	return nil
}

// Fire takes a shot at (x, y). A shot off the board is an illegal guess:
// it is rejected and the game goes on.
func (g *Game) Fire(x, y int) (ShotOutcome, error) {
	switch g.phase {
	case GamePhaseSetup:
		return ShotOutcome{}, cerr.ErrSetupNotComplete
	case GamePhaseOver:
		return ShotOutcome{}, cerr.ErrGameOver
	}

	if !NewCoordinates(x, y).InBounds() {
		return ShotOutcome{}, cerr.ErrGuessOutOfBound(x, y)
	}

	outcome, err := g.board.Fire(x, y)
	if err != nil {
		if errors.Is(err, cerr.ErrGameOver) {
			g.phase = GamePhaseOver
		}
		return ShotOutcome{}, err
	}

	g.shots++
	if outcome.IsGameOver() {
		g.phase = GamePhaseOver
	}
	return outcome, nil
}

func (g *Game) failSetup(err error) {
	g.setupErr = err
	g.phase = GamePhaseOver
}
