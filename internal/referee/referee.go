// Package referee runs one game from a placement file and a guess file
// and reports every shot as a line of text.
package referee

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
	"github.com/saeidalz13/battleship-referee/internal/records"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

type Referee struct {
	out  io.Writer
	game *mb.Game
}

func New(out io.Writer) *Referee {
	return &Referee{
		out:  out,
		game: mb.NewGame(),
	}
}

func (rf *Referee) Game() *mb.Game {
	return rf.game
}

// Setup places every ship read from r and closes the fleet.
func (rf *Referee) Setup(r io.Reader) error {
	err := records.ReadFleet(r, func(line records.Line[mb.ShipSpec]) error {
		log.WithField("ship", line.Record.String()).Debug("placing ship")
		return rf.game.Place(line.Record)
	})
	if err != nil {
		return err
	}

	return rf.game.Seal()
}

// Play fires every shot read from r until the last ship goes down.
// Lines that are not a shot on the board print "illegal guess".
func (rf *Referee) Play(r io.Reader) error {
	var fireErr error

	err := records.ReadShots(r, func(line records.Line[mb.Shot], err error) bool {
		if err != nil {
			log.WithField("line", line.Text).Debug(err)
			fmt.Fprintln(rf.out, cerr.ErrIllegalGuess)
			return true
		}

		outcome, err := rf.game.Fire(line.Record.X, line.Record.Y)
		if err != nil {
			if errors.Is(err, cerr.ErrIllegalGuess) {
				fmt.Fprintln(rf.out, cerr.ErrIllegalGuess)
				return true
			}
			fireErr = err
			return false
		}

		fmt.Fprintln(rf.out, outcome)
		return !outcome.IsGameOver()
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"shots":        rf.game.Shots(),
		"ships_afloat": rf.game.Board().ShipsAfloat(),
	}).Debug("guesses done")

	return fireErr
}

// SetupErrMessage is the line reported when setup fails.
func SetupErrMessage(err error) string {
	var text string
	var lineErr *records.LineError
	if errors.As(err, &lineErr) {
		text = lineErr.Text
	}

	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "ERROR: ship out-of-bounds: " + text
	case errors.Is(err, cerr.ErrBadOrientation):
		return "ERROR: ship not horizontal or vertical: " + text
	case errors.Is(err, cerr.ErrBadShipSize):
		return "ERROR: incorrect ship size: " + text
	case errors.Is(err, cerr.ErrOverlapDetected):
		return "ERROR: overlapping ship: " + text
	default:
		return "ERROR: fleet composition incorrect"
	}
}
