package edulink

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// DisableReason is one independent reason the link is administratively
// held down. The link is forced down while any reason is active.
type DisableReason uint8

const (
	DisableStopped DisableReason = 1 << iota
	DisableHeld
)

// Resolver recomputes the effective link state from PHY state, MAC
// state or fixed configuration and raises up/down transitions towards
// the MAC adapter. All mutable state lives behind the state lock, so a
// resolution pass never interleaves with another one.
type Resolver struct {
	mac   MACOps
	mode  AutonegMode
	fixed *FixedLink

	// mu is the state lock. cfgMu is the config lock and is only ever
	// acquired while mu is held, never the other way around.
	mu    sync.Mutex
	cfgMu sync.Mutex

	cfg         LinkState
	phyState    LinkState
	phyAttached bool
	disable     DisableReason
	carrierUp   bool

	eventCh   chan PHYEvent
	resolveCh chan struct{}
}

// NewResolver validates the configuration and builds a resolver bound
// to the given MAC adapter. Configuration errors are fatal: no partial
// resolver is returned.
func NewResolver(config *LinkConfig, mac MACOps) (*Resolver, error) {
	if config == nil {
		return nil, ErrNilLinkConfig
	}
	if mac == nil {
		return nil, ErrNilMACOps
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	r := &Resolver{
		mac:       mac,
		mode:      config.Mode,
		fixed:     config.Fixed,
		eventCh:   make(chan PHYEvent, 16),
		resolveCh: make(chan struct{}, 1),
	}

	if config.Mode == ANModeFixed {
		r.cfg = LinkState{
			Supported:   config.Fixed.capabilities(),
			Advertising: config.Fixed.capabilities(),
			Speed:       config.Fixed.Speed,
			Duplex:      config.Fixed.Duplex,
			Pause:       config.Fixed.Pause,
		}
		return r, nil
	}

	supported := mac.SupportedCapabilities(config.Mode)

	advertising := supported
	if !config.Advertising.IsEmpty() {
		advertising = config.Advertising.Intersect(supported)
	}

	r.cfg = LinkState{
		Supported:      supported.With(CapAutoneg),
		Advertising:    advertising.With(CapAutoneg),
		Speed:          SpeedUnknown,
		Duplex:         DuplexUnknown,
		AutonegEnabled: true,
	}
	return r, nil
}

// Mode returns the autoneg mode the resolver was constructed with.
func (r *Resolver) Mode() AutonegMode {
	return r.mode
}

// PHYEvents returns the channel PHY drivers post link change events
// into. Events are consumed by the resolver task started with
// RunResolver.
func (r *Resolver) PHYEvents() chan<- PHYEvent {
	return r.eventCh
}

// RequestResolve enqueues one resolution pass. Requests arriving while
// a pass is already pending are coalesced with it.
func (r *Resolver) RequestResolve() {
	select {
	case r.resolveCh <- struct{}{}:
	default:
	}
}

// MACChanged notifies the resolver that the MAC's view of the link may
// have changed.
func (r *Resolver) MACChanged() {
	r.RequestResolve()
}

func (r *Resolver) RunResolver(ctx context.Context) {
	go r.runResolver(ctx)
}

func (r *Resolver) runResolver(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.eventCh:
			r.PHYChanged(ev)
		case <-r.resolveCh:
			r.mu.Lock()
			_ = r.resolveLocked()
			r.mu.Unlock()
		}
	}
}

// PHYChanged applies a PHY link change notification and runs one
// resolution pass. The buffered PHYEvents channel feeds into this, but
// PHY drivers running in their own goroutine may also call it directly.
func (r *Resolver) PHYChanged(ev PHYEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phyState.Speed = ev.Speed
	r.phyState.Duplex = ev.Duplex
	r.phyState.Pause = ev.Pause
	r.phyState.Link = ev.Link
	r.phyState.AutonegComplete = ev.Link
	_ = r.resolveLocked()
}

// AttachPHY tells the resolver a PHY is present. In the in-band modes
// the PHY's link bit is from now on ANDed into the resolved state. The
// supported set, if non-empty, restricts what is advertised.
func (r *Resolver) AttachPHY(supported CapabilitySet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phyAttached = true
	r.phyState = LinkState{
		Supported: supported,
		Speed:     SpeedUnknown,
		Duplex:    DuplexUnknown,
	}

	if supported.IsEmpty() {
		return
	}

	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()
	r.cfg.Supported = r.cfg.Supported.Intersect(supported.With(CapAutoneg))
	r.cfg.Advertising = r.cfg.Advertising.Intersect(r.cfg.Supported)
}

func (r *Resolver) DetachPHY() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phyAttached = false
	r.phyState = LinkState{}
	_ = r.resolveLocked()
}

// Start releases the stopped hold and schedules a resolution pass.
func (r *Resolver) Start() {
	r.Enable(DisableStopped)
}

// Stop holds the link down and waits for any in-flight resolution to
// finish, so callers never observe a stale carrier state after Stop
// returns.
func (r *Resolver) Stop() {
	r.Disable(DisableStopped)
}

// Disable adds an administrative hold-down reason and synchronously
// forces the link down.
func (r *Resolver) Disable(reason DisableReason) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disable |= reason
	_ = r.resolveLocked()
}

// Enable removes a hold-down reason and schedules a resolution pass.
func (r *Resolver) Enable(reason DisableReason) {
	r.mu.Lock()
	r.disable &^= reason
	r.mu.Unlock()

	r.RequestResolve()
}

// Resolve runs one synchronous resolution pass. It returns
// ErrLinkUnresolved when the MAC state query failed and the pass was
// aborted.
func (r *Resolver) Resolve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked()
}

// State computes the current link state without raising transitions.
// A MAC state query failure is returned to the caller.
func (r *Resolver) State() (LinkState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.computeLocked()
}

// resolveLocked is the single critical section guarding the whole
// compute-and-notify sequence. Callers hold mu.
func (r *Resolver) resolveLocked() error {
	state, err := r.computeLocked()
	if err != nil {
		log.Error().Msgf("MAC link state query failed, keeping carrier state: %v", err)
		return ErrLinkUnresolved
	}

	if state.Link == r.carrierUp {
		return nil
	}

	if !state.Link {
		r.carrierUp = false
		r.mac.LinkDown(r.mode)
		log.Info().Str("mode", r.mode.String()).Msg("link is down")
		return nil
	}

	if r.mode == ANModePHY {
		// keep MAC speed/duplex in sync with the PHY before
		// announcing the link
		if err := r.mac.Configure(r.mode, state); err != nil {
			log.Error().Msgf("MAC configure failed, link stays down: %v", err)
			return err
		}
	}

	r.mac.LinkUp(r.mode)
	r.carrierUp = true
	log.Info().
		Str("mode", r.mode.String()).
		Uint32("speed", uint32(state.Speed)).
		Str("duplex", state.Duplex.String()).
		Str("pause", state.Pause.String()).
		Msg("link is up")
	return nil
}

func (r *Resolver) computeLocked() (LinkState, error) {
	if r.disable != 0 {
		state := r.cfg
		state.Link = false
		return state, nil
	}

	var state LinkState

	switch r.mode {
	case ANModeFixed:
		state = r.fixedStateLocked()

	case ANModePHY:
		state = r.phyState

	case ANModeSGMII, ANMode1000BaseX:
		macState, err := r.mac.LinkState()
		if err != nil {
			return LinkState{}, err
		}
		state = macState
		state.Supported = r.cfg.Supported
		state.Advertising = r.cfg.Advertising
		state.AutonegEnabled = r.cfg.AutonegEnabled

		// without an attached PHY both in-band modes fall back to
		// the MAC-only view
		if r.phyAttached {
			state.Link = state.Link && r.phyState.Link
		}
	}

	return state, nil
}

func (r *Resolver) fixedStateLocked() LinkState {
	state := r.cfg
	state.Link = true
	state.SyncStatus = true
	state.AutonegComplete = true

	if r.fixed.Status != nil {
		up, err := r.fixed.Status.LinkUp()
		if err != nil {
			log.Error().Msgf("fixed-link status read failed, assuming link down: %v", err)
			up = false
		}
		state.Link = up
	}

	return state
}
