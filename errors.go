package edulink

import "errors"

var (
	ErrIncompatibleLinkModes = errors.New("incompatible link modes. fixed-link and in-band autonegotiation requested together")
	ErrNoFixedLink           = errors.New("fixed autoneg mode requires a fixed-link block")
	ErrNilLinkConfig         = errors.New("link config was nil")
	ErrNilMACOps             = errors.New("MAC operations adapter was nil")

	ErrUnknownLinkMode = errors.New("no capability for given speed and duplex combination")
	ErrLinkUnresolved  = errors.New("link state not resolved. MAC state query failed")

	ErrEmptyAdvertisement    = errors.New("no advertised link modes remain after masking with supported capabilities")
	ErrAutonegNoAdvertise    = errors.New("autonegotiation disabled and no valid forced link mode given")
	ErrFixedSettingsMismatch = errors.New("settings differ from the fixed-link configuration")

	ErrNoMIIEmulation     = errors.New("no MII emulation in PHY-managed mode")
	ErrInvalidMIIRegister = errors.New("MII register out of clause 22 range")

	ErrInvalidFixedLinkString = errors.New("invalid fixed-link string. malformed input, should have following format: '" + FixedLinkFormatString + "'")
	ErrInvalidDuplexString    = errors.New("duplex must be either 'half' or 'full'")
	ErrInvalidPauseString     = errors.New("pause must be one of 'none', 'sym', 'asym' or 'sym+asym'")
	ErrInvalidLegacyDuplex    = errors.New("legacy fixed-link duplex must be 0 (half) or 1 (full)")
)
