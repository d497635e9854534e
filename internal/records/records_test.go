package records

import (
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-referee/internal/error"
	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

func TestParseShipSpec(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedSpec mb.ShipSpec
		expectedErr  error
	}{
		{
			name:         "valid",
			line:         "D 0 0 0 2",
			expectedSpec: mb.NewShipSpec(mb.ShipTypeDestroyer, 0, 0, 0, 2),
		},
		{
			name:         "lower case code and extra spaces",
			line:         "  p\t5 5   6 5 ",
			expectedSpec: mb.NewShipSpec(mb.ShipTypePatrolBoat, 5, 5, 6, 5),
		},
		{
			name:        "too few fields",
			line:        "D 0 0 0",
			expectedErr: cerr.ErrInvalidFleet,
		},
		{
			name:        "too many fields",
			line:        "D 0 0 0 2 1",
			expectedErr: cerr.ErrInvalidFleet,
		},
		{
			name:        "unknown type",
			line:        "X 0 0 0 2",
			expectedErr: cerr.ErrInvalidFleet,
		},
		{
			name:        "not a number",
			line:        "D 0 a 0 2",
			expectedErr: cerr.ErrInvalidFleet,
		},
		{
			name:        "out of bounds",
			line:        "D 0 8 0 10",
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "out of bounds before a bad field",
			line:        "A 10 x 0 0",
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "bad field before out of bounds",
			line:        "A x 10 0 0",
			expectedErr: cerr.ErrInvalidFleet,
		},
		{
			name:        "negative coordinate",
			line:        "A -1 0 3 0",
			expectedErr: cerr.ErrOutOfBounds,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spec, err := ParseShipSpec(test.line)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if spec != test.expectedSpec {
				t.Fatalf("expected spec: %s\tgot: %s", test.expectedSpec, spec)
			}
		})
	}
}

func TestParseShot(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedShot mb.Shot
		expectedErr  error
	}{
		{name: "valid", line: "3 7", expectedShot: mb.NewCoordinates(3, 7)},
		{name: "extra fields ignored", line: "9 9 comment", expectedShot: mb.NewCoordinates(9, 9)},
		{name: "single field", line: "3", expectedErr: cerr.ErrIllegalGuess},
		{name: "not a number", line: "three 7", expectedErr: cerr.ErrIllegalGuess},
		{name: "out of bounds", line: "3 10", expectedErr: cerr.ErrIllegalGuess},
		{name: "negative", line: "-1 0", expectedErr: cerr.ErrIllegalGuess},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			shot, err := ParseShot(test.line)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if shot != test.expectedShot {
				t.Fatalf("expected shot: %s\tgot: %s", test.expectedShot, shot)
			}
		})
	}
}

func TestReadFleet(t *testing.T) {
	input := "D 0 0 0 2\n\nP 5 5 6 5\nS 1 1 2 2\nA 0 9 4 9\n"

	board := mb.NewBoard()
	var placed []string

	err := ReadFleet(strings.NewReader(input), func(spec Line[mb.ShipSpec]) error {
		if err := board.Place(spec.Record); err != nil {
			return err
		}
		placed = append(placed, spec.Text)
		return nil
	})

	if !errors.Is(err, cerr.ErrBadOrientation) {
		t.Fatalf("expected err: %v\tgot: %v", cerr.ErrBadOrientation, err)
	}

	var lineErr *LineError
	if !errors.As(err, &lineErr) || lineErr.Text != "S 1 1 2 2" {
		t.Fatalf("expected the failing line in the error\tgot: %v", err)
	}

	if len(placed) != 2 {
		t.Fatalf("expected placed: %d\tgot: %d", 2, len(placed))
	}
}

func TestReadShots(t *testing.T) {
	input := "0 0\nbad\n\n0 1\n12 3\n0 2\n9 9\n"

	var shots []mb.Shot
	illegal := 0

	err := ReadShots(strings.NewReader(input), func(shot Line[mb.Shot], err error) bool {
		if err != nil {
			if !errors.Is(err, cerr.ErrIllegalGuess) {
				t.Fatalf("expected err: %v\tgot: %v", cerr.ErrIllegalGuess, err)
			}
			illegal++
			return true
		}

		shots = append(shots, shot.Record)
		// stop after the third good shot
		return len(shots) < 3
	})
	if err != nil {
		t.Fatal(err)
	}

	if illegal != 2 {
		t.Fatalf("expected illegal: %d\tgot: %d", 2, illegal)
	}
	expected := []mb.Shot{mb.NewCoordinates(0, 0), mb.NewCoordinates(0, 1), mb.NewCoordinates(0, 2)}
	if len(shots) != len(expected) {
		t.Fatalf("expected shots: %v\tgot: %v", expected, shots)
	}
	for i := range expected {
		if shots[i] != expected[i] {
			t.Fatalf("expected shots: %v\tgot: %v", expected, shots)
		}
	}
}
