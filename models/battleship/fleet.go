package battleship

import "strings"

const BoardSize = 10

type ShipType string

const (
	ShipTypeAircraftCarrier ShipType = "A"
	ShipTypeBattleship      ShipType = "B"
	ShipTypeDestroyer       ShipType = "D"
	ShipTypePatrolBoat      ShipType = "P"
	ShipTypeSubmarine       ShipType = "S"
)

// FleetTypes lists every ship type a complete fleet holds, in the
// order used whenever the fleet is walked.
var FleetTypes = []ShipType{
	ShipTypeAircraftCarrier,
	ShipTypeBattleship,
	ShipTypeDestroyer,
	ShipTypePatrolBoat,
	ShipTypeSubmarine,
}

var shipLengths = map[ShipType]int{
	ShipTypeAircraftCarrier: 5,
	ShipTypeBattleship:      4,
	ShipTypeDestroyer:       3,
	ShipTypePatrolBoat:      2,
	ShipTypeSubmarine:       3,
}

// RequiredLength returns the length a ship of this type must span.
// ok is false for codes outside the fleet.
func (t ShipType) RequiredLength() (length int, ok bool) {
	length, ok = shipLengths[t]
	return length, ok
}

func (t ShipType) IsValid() bool {
	_, ok := shipLengths[t]
	return ok
}

func (t ShipType) String() string {
	return string(t)
}

// ParseShipType accepts a ship code in either case. The returned type
// is not checked against the fleet; use IsValid for that.
func ParseShipType(code string) ShipType {
	return ShipType(strings.ToUpper(strings.TrimSpace(code)))
}
