package edulink

import (
	"strings"

	"github.com/mdlayher/ethtool"
)

// Speed is a link speed in Mbps.
type Speed uint32

const (
	SpeedUnknown Speed = 0
	Speed10      Speed = 10
	Speed100     Speed = 100
	Speed1000    Speed = 1000
	Speed2500    Speed = 2500
	Speed10000   Speed = 10000
)

// Duplex wraps ethtool.Duplex so the resolver reports the same values
// an ethtool caller would see.
type Duplex ethtool.Duplex

const (
	DuplexHalf    = Duplex(ethtool.Half)
	DuplexFull    = Duplex(ethtool.Full)
	DuplexUnknown = Duplex(ethtool.Unknown)
)

func (d Duplex) String() string {
	switch d {
	case DuplexHalf:
		return "half"
	case DuplexFull:
		return "full"
	default:
		return "unknown"
	}
}

// Pause is the set of flow control flags on a link.
type Pause uint8

const (
	PauseNone Pause = 0
	PauseSym  Pause = 1 << 0
	PauseAsym Pause = 1 << 1
)

func (p Pause) String() string {
	switch p {
	case PauseSym:
		return "sym"
	case PauseAsym:
		return "asym"
	case PauseSym | PauseAsym:
		return "sym+asym"
	default:
		return "none"
	}
}

type Capability uint8

const (
	Cap10Half Capability = iota
	Cap10Full
	Cap100Half
	Cap100Full
	Cap1000Half
	Cap1000Full
	Cap2500Full
	Cap10000Full
	CapAutoneg
	CapPause
	CapAsymPause
	numCapabilities
)

func (c Capability) String() string {
	switch c {
	case Cap10Half:
		return "10baseT-half"
	case Cap10Full:
		return "10baseT-full"
	case Cap100Half:
		return "100baseT-half"
	case Cap100Full:
		return "100baseT-full"
	case Cap1000Half:
		return "1000baseT-half"
	case Cap1000Full:
		return "1000baseT-full"
	case Cap2500Full:
		return "2500baseX-full"
	case Cap10000Full:
		return "10000baseT-full"
	case CapAutoneg:
		return "autoneg"
	case CapPause:
		return "pause"
	case CapAsymPause:
		return "asym-pause"
	default:
		return ""
	}
}

// CapabilitySet is a set of link capabilities, one bit per Capability.
type CapabilitySet uint16

func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	return s.With(caps...)
}

func (s CapabilitySet) Test(c Capability) bool {
	return s&(1<<c) != 0
}

func (s CapabilitySet) With(caps ...Capability) CapabilitySet {
	for _, c := range caps {
		s |= 1 << c
	}
	return s
}

func (s CapabilitySet) Without(caps ...Capability) CapabilitySet {
	for _, c := range caps {
		s &^= 1 << c
	}
	return s
}

func (s CapabilitySet) Intersect(other CapabilitySet) CapabilitySet {
	return s & other
}

func (s CapabilitySet) IsEmpty() bool {
	return s == 0
}

// HasLinkModes reports whether any speed/duplex capability is set,
// ignoring the autoneg and pause bits.
func (s CapabilitySet) HasLinkModes() bool {
	return !s.Without(CapAutoneg, CapPause, CapAsymPause).IsEmpty()
}

func (s CapabilitySet) String() string {
	var names []string
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Test(c) {
			names = append(names, c.String())
		}
	}
	return strings.Join(names, ",")
}

// linkModeTable maps a speed and duplex onto the single capability
// describing that link mode.
var linkModeTable = map[Speed]map[Duplex]Capability{
	Speed10:    {DuplexHalf: Cap10Half, DuplexFull: Cap10Full},
	Speed100:   {DuplexHalf: Cap100Half, DuplexFull: Cap100Full},
	Speed1000:  {DuplexHalf: Cap1000Half, DuplexFull: Cap1000Full},
	Speed2500:  {DuplexFull: Cap2500Full},
	Speed10000: {DuplexFull: Cap10000Full},
}

func capabilityFor(speed Speed, duplex Duplex) (Capability, error) {
	duplexes, ok := linkModeTable[speed]
	if !ok {
		return 0, ErrUnknownLinkMode
	}

	c, ok := duplexes[duplex]
	if !ok {
		return 0, ErrUnknownLinkMode
	}
	return c, nil
}
