// Package records turns the text lines of placement and guess files
// into the records the board works with.
package records

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

const shipSpecFields = 5

// ParseShipSpec reads "T x1 y1 x2 y2".
func ParseShipSpec(line string) (mb.ShipSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != shipSpecFields {
		return mb.ShipSpec{}, cerr.ErrFieldCount(len(fields), shipSpecFields)
	}

	code := mb.ParseShipType(fields[0])
	if !code.IsValid() {
		return mb.ShipSpec{}, cerr.ErrUnknownShipType(fields[0])
	}

	// Fields are checked left to right, each one parsed and then range
	// checked, so the first bad field decides the error.
	var position [shipSpecFields - 1]int
	for i, field := range fields[1:] {
		v, err := strconv.Atoi(field)
		if err != nil {
			return mb.ShipSpec{}, cerr.ErrFieldNotInt(field)
		}
		if v < 0 || v >= mb.BoardSize {
			return mb.ShipSpec{}, cerr.ErrShipCoordinateOutOfBounds(line)
		}
		position[i] = v
	}

	return mb.NewShipSpec(code, position[0], position[1], position[2], position[3]), nil
}

// ParseShot reads "x y". Anything after the second field is ignored.
func ParseShot(line string) (mb.Shot, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return mb.Shot{}, cerr.ErrGuessIllegal(line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return mb.Shot{}, cerr.ErrGuessIllegal(line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return mb.Shot{}, cerr.ErrGuessIllegal(line)
	}

	shot := mb.NewCoordinates(x, y)
	if !shot.InBounds() {
		return mb.Shot{}, cerr.ErrGuessOutOfBound(x, y)
	}
	return shot, nil
}

// Line pairs a parsed record with the raw text it came from.
type Line[T any] struct {
	Record T
	Text   string
}

// ReadFleet parses every non-blank line of r as a ship spec and hands
// it to fn. It stops at the first line that fails to parse or that fn
// rejects.
func ReadFleet(r io.Reader, fn func(spec Line[mb.ShipSpec]) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		spec, err := ParseShipSpec(text)
		if err != nil {
			return &LineError{Text: text, Err: err}
		}
		if err := fn(Line[mb.ShipSpec]{Record: spec, Text: text}); err != nil {
			return &LineError{Text: text, Err: err}
		}
	}

	return scanner.Err()
}

// ReadShots parses every non-blank line of r as a shot and hands it to
// fn together with its parse error, if any. Reading stops when fn
// returns false.
func ReadShots(r io.Reader, fn func(shot Line[mb.Shot], err error) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		shot, err := ParseShot(text)
		if !fn(Line[mb.Shot]{Record: shot, Text: text}, err) {
			return nil
		}
	}

	return scanner.Err()
}

// LineError carries the input line a record failed on.
type LineError struct {
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return e.Err.Error() + ": " + e.Text
}

func (e *LineError) Unwrap() error {
	return e.Err
}
