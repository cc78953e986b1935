package edulink

// AutonegMode selects how the effective link state is resolved. It is
// fixed for the lifetime of a Resolver.
type AutonegMode uint8

const (
	// ANModePHY delegates link resolution to an attached PHY.
	ANModePHY AutonegMode = iota

	// ANModeFixed reports the configured fixed-link parameters.
	ANModeFixed

	// ANModeSGMII negotiates in-band over an SGMII serial link.
	ANModeSGMII

	// ANMode1000BaseX negotiates in-band over a 1000base-X serial link.
	ANMode1000BaseX
)

func (m AutonegMode) String() string {
	switch m {
	case ANModePHY:
		return "phy"
	case ANModeFixed:
		return "fixed"
	case ANModeSGMII:
		return "sgmii"
	case ANMode1000BaseX:
		return "1000base-x"
	default:
		return ""
	}
}

// InBand reports whether link parameters are negotiated over the serial
// link itself.
func (m AutonegMode) InBand() bool {
	return m == ANModeSGMII || m == ANMode1000BaseX
}

// LinkState is an immutable snapshot of the link, produced by each
// resolution pass.
type LinkState struct {
	Supported     CapabilitySet
	Advertising   CapabilitySet
	LPAdvertising CapabilitySet

	Speed  Speed
	Duplex Duplex
	Pause  Pause

	Link            bool
	SyncStatus      bool
	AutonegEnabled  bool
	AutonegComplete bool
}
