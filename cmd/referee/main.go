package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/saeidalz13/battleship-referee/internal/logger"
	"github.com/saeidalz13/battleship-referee/internal/referee"
)

func init() {
	logger.Init()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run reads the placement file and then the guess file. Names not given
// as flags are read from stdin, one per line.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("referee", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var fleetPath, shotsPath string
	var showBoard bool
	fs.StringVar(&fleetPath, "fleet", "", "ship placement file (read from stdin if empty)")
	fs.StringVar(&shotsPath, "shots", "", "guess file (read from stdin if empty)")
	fs.BoolVar(&showBoard, "board", false, "print the board after setup")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	names := bufio.NewReader(stdin)
	rf := referee.New(stdout)

	fleetFile, ok := openFile(fleetPath, names, stdout)
	if !ok {
		return 1
	}
	err := rf.Setup(fleetFile)
	fleetFile.Close()
	if err != nil {
		log.WithField("file", fleetFile.Name()).Debug(err)
		fmt.Fprintln(stdout, referee.SetupErrMessage(err))
		return 1
	}

	if showBoard {
		fmt.Fprint(stdout, rf.Game().Board().Render())
	}

	shotsFile, ok := openFile(shotsPath, names, stdout)
	if !ok {
		return 1
	}
	defer shotsFile.Close()

	if err := rf.Play(shotsFile); err != nil {
		log.Errorln("failed to read guesses:", err)
		return 1
	}
	return 0
}

func openFile(path string, names *bufio.Reader, stdout io.Writer) (*os.File, bool) {
	if path == "" {
		line, err := names.ReadString('\n')
		if err != nil && line == "" {
			log.Debugln("no file name on stdin:", err)
		}
		path = strings.TrimSpace(line)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(stdout, "ERROR: Could not open file: "+path)
		return nil, false
	}
	return f, true
}
