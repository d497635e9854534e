package referee

import (
	"bytes"
	"strings"
	"testing"

	mb "github.com/saeidalz13/battleship-referee/models/battleship"
)

const testFleet = `D 0 0 0 2
P 5 5 6 5

A 2 9 6 9
b 9 0 9 3
S 3 2 5 2
`

func TestRefereeSetupErrors(t *testing.T) {
	tests := []struct {
		name            string
		fleet           string
		expectedMessage string
	}{
		{
			name:            "unknown type",
			fleet:           "D 0 0 0 2\nX 1 1 1 2\n",
			expectedMessage: "ERROR: fleet composition incorrect",
		},
		{
			name:            "missing field",
			fleet:           "D 0 0 0\n",
			expectedMessage: "ERROR: fleet composition incorrect",
		},
		{
			name:            "out of bounds",
			fleet:           "D 0 0 0 12\n",
			expectedMessage: "ERROR: ship out-of-bounds: D 0 0 0 12",
		},
		{
			name:            "out of bounds ahead of a bad field",
			fleet:           "A 10 x 0 0\n",
			expectedMessage: "ERROR: ship out-of-bounds: A 10 x 0 0",
		},
		{
			name:            "diagonal",
			fleet:           "D 0 0 2 2\n",
			expectedMessage: "ERROR: ship not horizontal or vertical: D 0 0 2 2",
		},
		{
			name:            "wrong size",
			fleet:           "D 0 0 0 3\n",
			expectedMessage: "ERROR: incorrect ship size: D 0 0 0 3",
		},
		{
			name:            "overlap",
			fleet:           "D 0 0 0 2\nP 0 1 1 1\n",
			expectedMessage: "ERROR: overlapping ship: P 0 1 1 1",
		},
		{
			name:            "duplicate type",
			fleet:           "D 0 0 0 2\nD 3 3 3 5\n",
			expectedMessage: "ERROR: fleet composition incorrect",
		},
		{
			name:            "incomplete fleet",
			fleet:           "D 0 0 0 2\nP 5 5 6 5\n",
			expectedMessage: "ERROR: fleet composition incorrect",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rf := New(&bytes.Buffer{})

			err := rf.Setup(strings.NewReader(test.fleet))
			if err == nil {
				t.Fatal("expected a setup error")
			}
			if msg := SetupErrMessage(err); msg != test.expectedMessage {
				t.Fatalf("expected message: %q\tgot: %q", test.expectedMessage, msg)
			}
			if _, err := rf.Game().Fire(0, 0); err == nil {
				t.Fatal("expected no shots after a failed setup")
			}
		})
	}
}

func TestRefereePlay(t *testing.T) {
	shots := `0 0
0 0
0 1
0 2
9 9
9 9
10 3
abc
5 5
6 5 extra
2 9
3 9
4 9
5 9
6 9
9 0
9 1
9 2
9 3
3 2
4 2
5 2
1 1
`
	expected := `hit
hit (again)
hit
D sunk
miss
miss (again)
illegal guess
illegal guess
hit
P sunk
hit
hit
hit
hit
A sunk
hit
hit
hit
B sunk
hit
hit
S sunk
all ships sunk: game over
`

	var out bytes.Buffer
	rf := New(&out)

	if err := rf.Setup(strings.NewReader(testFleet)); err != nil {
		t.Fatal(err)
	}
	if err := rf.Play(strings.NewReader(shots)); err != nil {
		t.Fatal(err)
	}

	if out.String() != expected {
		t.Fatalf("expected output:\n%s\ngot:\n%s", expected, out.String())
	}
	if rf.Game().Phase() != mb.GamePhaseOver {
		t.Fatalf("expected phase: %s\tgot: %s", mb.GamePhaseOver, rf.Game().Phase())
	}
	// Illegal guesses and the shot after the game ended do not count
	if rf.Game().Shots() != 20 {
		t.Fatalf("expected shots: %d\tgot: %d", 20, rf.Game().Shots())
	}
}

func TestRefereePlayWithoutSinkingAll(t *testing.T) {
	var out bytes.Buffer
	rf := New(&out)

	if err := rf.Setup(strings.NewReader(testFleet)); err != nil {
		t.Fatal(err)
	}
	if err := rf.Play(strings.NewReader("7 7\n5 5\n")); err != nil {
		t.Fatal(err)
	}

	if out.String() != "miss\nhit\n" {
		t.Fatalf("expected output: %q\tgot: %q", "miss\nhit\n", out.String())
	}
	if rf.Game().Phase() != mb.GamePhasePlay {
		t.Fatalf("expected phase: %s\tgot: %s", mb.GamePhasePlay, rf.Game().Phase())
	}
}
