package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFromStdin(t *testing.T) {
	fleet := writeTestFile(t, "fleet.txt", "D 0 0 0 2\nP 5 5 6 5\nA 2 9 6 9\nB 9 0 9 3\nS 3 2 5 2\n")
	shots := writeTestFile(t, "shots.txt", "0 0\n0 0\n0 1\n0 2\n9 9\n9 9\n10 3\n")

	var out bytes.Buffer
	code := run(nil, strings.NewReader(fleet+"\n"+shots+"\n"), &out)
	if code != 0 {
		t.Fatalf("expected exit code: %d\tgot: %d", 0, code)
	}

	expected := "hit\nhit (again)\nhit\nD sunk\nmiss\nmiss (again)\nillegal guess\n"
	if out.String() != expected {
		t.Fatalf("expected output: %q\tgot: %q", expected, out.String())
	}
}

func TestRunWithFlags(t *testing.T) {
	fleet := writeTestFile(t, "fleet.txt", "D 0 0 0 2\nP 5 5 6 5\nA 2 9 6 9\nB 9 0 9 3\nS 3 2 5 2\n")
	shots := writeTestFile(t, "shots.txt", "5 5\n")

	var out bytes.Buffer
	code := run([]string{"-fleet", fleet, "-shots", shots, "-board"}, strings.NewReader(""), &out)
	if code != 0 {
		t.Fatalf("expected exit code: %d\tgot: %d", 0, code)
	}

	expected := `
9: ..AAAAA...
8: ..........
7: ..........
6: ..........
5: .....PP...
4: ..........
3: .........B
2: D..SSS...B
1: D........B
0: D........B
 : 0123456789
hit
`
	if out.String() != expected {
		t.Fatalf("expected output:\n%s\ngot:\n%s", expected, out.String())
	}
}

func TestRunErrors(t *testing.T) {
	badFleet := writeTestFile(t, "fleet.txt", "D 0 0 0 2\nP 0 1 1 1\n")
	goodFleet := writeTestFile(t, "good.txt", "D 0 0 0 2\nP 5 5 6 5\nA 2 9 6 9\nB 9 0 9 3\nS 3 2 5 2\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	tests := []struct {
		name           string
		stdin          string
		expectedOutput string
	}{
		{
			name:           "missing placement file",
			stdin:          missing + "\n",
			expectedOutput: "ERROR: Could not open file: " + missing + "\n",
		},
		{
			name:           "overlapping fleet",
			stdin:          badFleet + "\n",
			expectedOutput: "ERROR: overlapping ship: P 0 1 1 1\n",
		},
		{
			name:           "missing guess file",
			stdin:          goodFleet + "\n" + missing + "\n",
			expectedOutput: "ERROR: Could not open file: " + missing + "\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := run(nil, strings.NewReader(test.stdin), &out); code != 1 {
				t.Fatalf("expected exit code: %d\tgot: %d", 1, code)
			}
			if out.String() != test.expectedOutput {
				t.Fatalf("expected output: %q\tgot: %q", test.expectedOutput, out.String())
			}
		})
	}
}
