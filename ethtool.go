package edulink

// Settings is the ethtool-style read/write surface of the resolver.
type Settings struct {
	Supported     CapabilitySet
	Advertising   CapabilitySet
	LPAdvertising CapabilitySet

	Speed          Speed
	Duplex         Duplex
	AutonegEnabled bool
}

// Settings returns the current settings. Speed and duplex reflect the
// resolved state, so a MAC state query failure is surfaced to the
// caller.
func (r *Resolver) Settings() (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.computeLocked()
	if err != nil {
		return Settings{}, err
	}

	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()

	return Settings{
		Supported:      r.cfg.Supported,
		Advertising:    r.cfg.Advertising,
		LPAdvertising:  state.LPAdvertising,
		Speed:          state.Speed,
		Duplex:         state.Duplex,
		AutonegEnabled: r.cfg.AutonegEnabled,
	}, nil
}

// SetSettings validates the requested settings fully before mutating
// any state, then applies them and schedules a resolution pass.
func (r *Resolver) SetSettings(s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode == ANModeFixed {
		if s.AutonegEnabled || s.Speed != r.fixed.Speed || s.Duplex != r.fixed.Duplex {
			return ErrFixedSettingsMismatch
		}
		return nil
	}

	var (
		advertising CapabilitySet
		forced      Capability
	)

	if s.AutonegEnabled {
		advertising = s.Advertising.Intersect(r.cfg.Supported)
		if !advertising.HasLinkModes() {
			return ErrEmptyAdvertisement
		}
		advertising = advertising.With(CapAutoneg)
	} else {
		c, err := capabilityFor(s.Speed, s.Duplex)
		if err != nil || !r.cfg.Supported.Test(c) {
			return ErrAutonegNoAdvertise
		}
		forced = c
	}

	r.cfgMu.Lock()
	r.cfg.AutonegEnabled = s.AutonegEnabled
	if s.AutonegEnabled {
		r.cfg.Advertising = advertising
		r.cfg.Speed = SpeedUnknown
		r.cfg.Duplex = DuplexUnknown
	} else {
		r.cfg.Advertising = NewCapabilitySet(forced)
		r.cfg.Speed = s.Speed
		r.cfg.Duplex = s.Duplex
	}
	r.cfgMu.Unlock()

	if r.mode.InBand() && s.AutonegEnabled {
		r.mac.RestartAutoneg(r.mode)
	}

	_ = r.resolveLocked()
	return nil
}
