package edulink

// PHYEvent is an asynchronous notification from a PHY driver that the
// negotiated link parameters changed. Every delivered event triggers
// one resolution pass.
type PHYEvent struct {
	Speed  Speed
	Duplex Duplex
	Pause  Pause
	Link   bool
}
