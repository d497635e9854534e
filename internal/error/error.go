package error

import (
	"errors"
	"fmt"
)

// Setup errors. Any of these ends the game it happened in.
var (
	ErrInvalidFleet    = errors.New("fleet composition incorrect")
	ErrBadOrientation  = errors.New("ship not horizontal or vertical")
	ErrBadShipSize     = errors.New("incorrect ship size")
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrDuplicateType   = errors.New("ship type already placed")
	ErrOverlapDetected = errors.New("overlapping ship")
	ErrIncompleteFleet = errors.New("fleet incomplete")
)

// Play errors. ErrIllegalGuess is recoverable, the next shot can follow.
var (
	ErrIllegalGuess      = errors.New("illegal guess")
	ErrGameOver          = errors.New("all ships already sunk")
	ErrSetupClosed       = errors.New("fleet setup is closed")
	ErrSetupNotComplete  = errors.New("fleet setup is not complete")
	ErrNoGame            = errors.New("no game was created in this session")
	ErrGameNotExistsKind = errors.New("game does not exist")
	ErrSessionKind       = errors.New("session error")
)

// IsSetupErr reports whether err is one of the fatal fleet setup errors.
func IsSetupErr(err error) bool {
	for _, kind := range []error{
		ErrInvalidFleet,
		ErrBadOrientation,
		ErrBadShipSize,
		ErrOutOfBounds,
		ErrDuplicateType,
		ErrOverlapDetected,
		ErrIncompleteFleet,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func ErrUnknownShipType(code string) error {
	return fmt.Errorf("%w: unknown ship type %q", ErrInvalidFleet, code)
}

func ErrFieldCount(got, want int) error {
	return fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidFleet, want, got)
}

func ErrFieldNotInt(field string) error {
	return fmt.Errorf("%w: field is not an integer: %q", ErrInvalidFleet, field)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrShipOutOfBounds(x1, y1, x2, y2 int) error {
	return fmt.Errorf("%w: (%d, %d) - (%d, %d)", ErrOutOfBounds, x1, y1, x2, y2)
}

func ErrShipCoordinateOutOfBounds(line string) error {
	return fmt.Errorf("%w: %q", ErrOutOfBounds, line)
}

func ErrShipNotStraight(x1, y1, x2, y2 int) error {
	return fmt.Errorf("%w: (%d, %d) - (%d, %d)", ErrBadOrientation, x1, y1, x2, y2)
}

func ErrShipSize(code string, got, want int) error {
	return fmt.Errorf("%w: %s has length %d, must be %d", ErrBadShipSize, code, got, want)
}

func ErrShipTypeDuplicate(code string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateType, code)
}

func ErrShipOverlap(code string, x, y int, other string) error {
	return fmt.Errorf("%w: %s collides with %s at\tx: %d\ty: %d", ErrOverlapDetected, code, other, x, y)
}

func ErrFleetIncomplete(placed, want int) error {
	return fmt.Errorf("%w: %d of %d ship types placed", ErrIncompleteFleet, placed, want)
}

func ErrGuessIllegal(line string) error {
	return fmt.Errorf("%w: %q", ErrIllegalGuess, line)
}

func ErrGuessOutOfBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrIllegalGuess, x, y)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExistsKind, gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("%w: session with this id does not exist, id: %s", ErrSessionKind, sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("%w: session is nil, id: %s", ErrSessionKind, sessionId)
}
