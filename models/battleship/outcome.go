package battleship

import "fmt"

type ShotResult uint8

const (
	ShotResultMiss ShotResult = iota
	ShotResultMissAgain
	ShotResultHit
	ShotResultHitAgain
	ShotResultSunk
	ShotResultAllSunk
)

var shotResultNames = [...]string{
	ShotResultMiss:      "miss",
	ShotResultMissAgain: "miss_again",
	ShotResultHit:       "hit",
	ShotResultHitAgain:  "hit_again",
	ShotResultSunk:      "sunk",
	ShotResultAllSunk:   "all_sunk",
}

func (r ShotResult) String() string {
	if int(r) < len(shotResultNames) {
		return shotResultNames[r]
	}
	return fmt.Sprintf("ShotResult(%d)", r)
}

// ShotOutcome classifies one shot. Ship is set only when the shot sank
// a ship.
type ShotOutcome struct {
	Result ShotResult
	Ship   ShipType
}

func NewShotOutcome(result ShotResult) ShotOutcome {
	return ShotOutcome{Result: result}
}

func NewSunkOutcome(result ShotResult, code ShipType) ShotOutcome {
	return ShotOutcome{Result: result, Ship: code}
}

func (o ShotOutcome) IsGameOver() bool {
	return o.Result == ShotResultAllSunk
}

// String renders the outcome the way the referee reports it.
func (o ShotOutcome) String() string {
	switch o.Result {
	case ShotResultMiss:
		return "miss"
	case ShotResultMissAgain:
		return "miss (again)"
	case ShotResultHit:
		return "hit"
	case ShotResultHitAgain:
		return "hit (again)"
	case ShotResultSunk:
		return fmt.Sprintf("%s sunk", o.Ship)
	case ShotResultAllSunk:
		return fmt.Sprintf("%s sunk\nall ships sunk: game over", o.Ship)
	default:
		return o.Result.String()
	}
}
