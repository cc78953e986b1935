package edulink

import (
	"strconv"
	"strings"
)

const FixedLinkFormatString = "speed/duplex[/pause]"

//go:generate mockgen -destination ./internal/mocks/mock_link_status_reader.go -package mocks github.com/davidkroell/edulink LinkStatusReader

// LinkStatusReader supplies a live link-up override for a fixed link,
// typically backed by a GPIO line wired to the peer.
type LinkStatusReader interface {
	LinkUp() (bool, error)
}

// FixedLink holds the parameters of a link whose state is not
// negotiated but configured up front.
type FixedLink struct {
	Speed  Speed
	Duplex Duplex
	Pause  Pause

	// Status optionally overrides the link-up bit at resolve time.
	// A nil Status means the link is always considered up.
	Status LinkStatusReader
}

// ParseFixedLink parses the compact string form "speed/duplex[/pause]",
// e.g. "1000/full/sym".
func ParseFixedLink(config string) (*FixedLink, error) {
	splitted := strings.Split(config, "/")

	if len(splitted) != 2 && len(splitted) != 3 {
		return nil, ErrInvalidFixedLinkString
	}

	speed, err := strconv.ParseUint(splitted[0], 10, 32)
	if err != nil {
		return nil, ErrInvalidFixedLinkString
	}

	var duplex Duplex
	switch splitted[1] {
	case "half":
		duplex = DuplexHalf
	case "full":
		duplex = DuplexFull
	default:
		return nil, ErrInvalidDuplexString
	}

	pause := PauseNone
	if len(splitted) == 3 {
		switch splitted[2] {
		case "none":
			pause = PauseNone
		case "sym":
			pause = PauseSym
		case "asym":
			pause = PauseAsym
		case "sym+asym":
			pause = PauseSym | PauseAsym
		default:
			return nil, ErrInvalidPauseString
		}
	}

	return NewFixedLink(Speed(speed), duplex, pause)
}

// FixedLinkFromLegacy decodes the legacy compact encoding, a fixed-size
// array packed as duplex/speed/pause/asym-pause.
func FixedLinkFromLegacy(enc [4]uint32) (*FixedLink, error) {
	var duplex Duplex
	switch enc[0] {
	case 0:
		duplex = DuplexHalf
	case 1:
		duplex = DuplexFull
	default:
		return nil, ErrInvalidLegacyDuplex
	}

	pause := PauseNone
	if enc[2] != 0 {
		pause |= PauseSym
	}
	if enc[3] != 0 {
		pause |= PauseAsym
	}

	return NewFixedLink(Speed(enc[1]), duplex, pause)
}

func NewFixedLink(speed Speed, duplex Duplex, pause Pause) (*FixedLink, error) {
	if _, err := capabilityFor(speed, duplex); err != nil {
		return nil, err
	}

	return &FixedLink{
		Speed:  speed,
		Duplex: duplex,
		Pause:  pause,
	}, nil
}

// capabilities derives the supported/advertised set for the fixed link.
// The derivation is a table lookup, validated at construction.
func (f *FixedLink) capabilities() CapabilitySet {
	c, _ := capabilityFor(f.Speed, f.Duplex)

	s := NewCapabilitySet(c)
	if f.Pause&PauseSym != 0 {
		s = s.With(CapPause)
	}
	if f.Pause&PauseAsym != 0 {
		s = s.With(CapAsymPause)
	}
	return s
}

// LinkConfig is the static configuration a Resolver is constructed
// from.
type LinkConfig struct {
	Mode AutonegMode

	// Fixed must be set for ANModeFixed and must be nil otherwise.
	Fixed *FixedLink

	// Advertising restricts the default advertised set. Empty means
	// advertise everything the MAC supports.
	Advertising CapabilitySet
}

func (c *LinkConfig) validate() error {
	if c.Fixed != nil && c.Mode != ANModeFixed {
		return ErrIncompatibleLinkModes
	}

	if c.Mode == ANModeFixed && c.Fixed == nil {
		return ErrNoFixedLink
	}

	if c.Fixed != nil {
		if _, err := capabilityFor(c.Fixed.Speed, c.Fixed.Duplex); err != nil {
			return err
		}
	}

	return nil
}
