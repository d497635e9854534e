package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame

	// One ship placement per message
	CodePlaceShip

	// Closes the fleet setup; the fleet must be complete
	CodeFleetReady
	CodeFire

	// Sent after the shot that sank the last ship
	CodeEndGame

	// Debug view of the fleet placement
	CodeBoard
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}
