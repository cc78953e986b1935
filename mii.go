package edulink

// Clause 22 register addresses and bits, as defined by IEEE 802.3.
const (
	MIIRegBMCR   uint16 = 0x00
	MIIRegBMSR   uint16 = 0x01
	MIIRegPhyID1 uint16 = 0x02
	MIIRegPhyID2 uint16 = 0x03
	MIIRegANAR   uint16 = 0x04
	MIIRegANLPAR uint16 = 0x05

	miiMaxRegister uint16 = 0x1f
)

const (
	bmcrSpeed1000  uint16 = 0x0040
	bmcrFullDuplex uint16 = 0x0100
	bmcrANRestart  uint16 = 0x0200
	bmcrANEnable   uint16 = 0x1000
	bmcrSpeed100   uint16 = 0x2000
)

const (
	bmsrLinkStatus uint16 = 0x0004
	bmsrANCap      uint16 = 0x0008
	bmsrANComplete uint16 = 0x0020
	bmsr10Half     uint16 = 0x0800
	bmsr10Full     uint16 = 0x1000
	bmsr100Half    uint16 = 0x2000
	bmsr100Full    uint16 = 0x4000
)

const (
	anarSelector8023 uint16 = 0x0001
	anar10Half       uint16 = 0x0020
	anar10Full       uint16 = 0x0040
	anar100Half      uint16 = 0x0080
	anar100Full      uint16 = 0x0100
	anarPause        uint16 = 0x0400
	anarPauseAsym    uint16 = 0x0800
)

// MIIRead emulates an ioctl-style MII register read for the fixed and
// in-band modes, synthesizing register values from the current link
// state. In PHY-managed mode a real PHY owns the management bus, so
// there is nothing to emulate.
func (r *Resolver) MIIRead(reg uint16) (uint16, error) {
	if r.mode == ANModePHY {
		return 0, ErrNoMIIEmulation
	}
	if reg > miiMaxRegister {
		return 0, ErrInvalidMIIRegister
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.computeLocked()
	if err != nil {
		return 0, err
	}

	switch reg {
	case MIIRegBMCR:
		return bmcrFromState(state), nil
	case MIIRegBMSR:
		return bmsrFromState(state), nil
	case MIIRegANAR:
		return anarFromSet(state.Advertising), nil
	case MIIRegANLPAR:
		return anarFromSet(state.LPAdvertising), nil
	default:
		// PHY ID and vendor registers read as zero on the
		// synthetic PHY
		return 0, nil
	}
}

// MIIWrite accepts writes to the synthetic registers. Only the
// autoneg-restart bit has an effect: in the in-band modes it restarts
// autonegotiation on the MAC. Everything else is ignored, since the
// synthesized registers have no backing hardware.
func (r *Resolver) MIIWrite(reg, value uint16) error {
	if r.mode == ANModePHY {
		return ErrNoMIIEmulation
	}
	if reg > miiMaxRegister {
		return ErrInvalidMIIRegister
	}

	if reg == MIIRegBMCR && value&bmcrANRestart != 0 && r.mode.InBand() {
		r.mac.RestartAutoneg(r.mode)
	}
	return nil
}

func bmcrFromState(state LinkState) uint16 {
	var v uint16

	if state.AutonegEnabled {
		v |= bmcrANEnable
	}

	switch state.Speed {
	case Speed1000:
		v |= bmcrSpeed1000
	case Speed100:
		v |= bmcrSpeed100
	}

	if state.Duplex == DuplexFull {
		v |= bmcrFullDuplex
	}
	return v
}

func bmsrFromState(state LinkState) uint16 {
	var v uint16

	if state.Link {
		v |= bmsrLinkStatus
	}
	if state.AutonegEnabled {
		v |= bmsrANCap
	}
	if state.AutonegComplete {
		v |= bmsrANComplete
	}

	if state.Supported.Test(Cap10Half) {
		v |= bmsr10Half
	}
	if state.Supported.Test(Cap10Full) {
		v |= bmsr10Full
	}
	if state.Supported.Test(Cap100Half) {
		v |= bmsr100Half
	}
	if state.Supported.Test(Cap100Full) {
		v |= bmsr100Full
	}
	return v
}

func anarFromSet(s CapabilitySet) uint16 {
	v := anarSelector8023

	if s.Test(Cap10Half) {
		v |= anar10Half
	}
	if s.Test(Cap10Full) {
		v |= anar10Full
	}
	if s.Test(Cap100Half) {
		v |= anar100Half
	}
	if s.Test(Cap100Full) {
		v |= anar100Full
	}
	if s.Test(CapPause) {
		v |= anarPause
	}
	if s.Test(CapAsymPause) {
		v |= anarPauseAsym
	}
	return v
}
