package edulink

//go:generate mockgen -destination ./internal/mocks/mock_mac_ops.go -package mocks github.com/davidkroell/edulink MACOps

// MACOps is the adapter contract the Resolver drives the underlying
// MAC hardware through.
type MACOps interface {
	// SupportedCapabilities returns what the MAC can do in the given
	// autoneg mode.
	SupportedCapabilities(mode AutonegMode) CapabilitySet

	// LinkState returns the MAC's own view of the link, used by the
	// in-band modes.
	LinkState() (LinkState, error)

	// Configure pushes speed/duplex/pause settings down to the MAC.
	Configure(mode AutonegMode, state LinkState) error

	// RestartAutoneg restarts in-band autonegotiation.
	RestartAutoneg(mode AutonegMode)

	LinkDown(mode AutonegMode)
	LinkUp(mode AutonegMode)
}
