package main

import (
	"sync"

	"github.com/davidkroell/edulink"
	"github.com/rs/zerolog/log"
)

// simMAC is an in-memory MACOps implementation driven from the REPL.
type simMAC struct {
	mu    sync.Mutex
	state edulink.LinkState
}

func newSimMAC() *simMAC {
	return &simMAC{
		state: edulink.LinkState{
			Speed:  edulink.Speed1000,
			Duplex: edulink.DuplexFull,
		},
	}
}

func (m *simMAC) SupportedCapabilities(mode edulink.AutonegMode) edulink.CapabilitySet {
	return edulink.NewCapabilitySet(
		edulink.Cap10Half, edulink.Cap10Full,
		edulink.Cap100Half, edulink.Cap100Full,
		edulink.Cap1000Full, edulink.Cap2500Full,
		edulink.CapPause, edulink.CapAsymPause,
	)
}

func (m *simMAC) LinkState() (edulink.LinkState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state, nil
}

func (m *simMAC) Configure(mode edulink.AutonegMode, state edulink.LinkState) error {
	m.mu.Lock()
	m.state.Speed = state.Speed
	m.state.Duplex = state.Duplex
	m.state.Pause = state.Pause
	m.mu.Unlock()

	log.Debug().Str("mode", mode.String()).Msg("mac configured")
	return nil
}

func (m *simMAC) RestartAutoneg(mode edulink.AutonegMode) {
	log.Debug().Str("mode", mode.String()).Msg("mac autoneg restarted")
}

func (m *simMAC) LinkDown(mode edulink.AutonegMode) {
	log.Info().Str("mode", mode.String()).Msg("mac link down")
}

func (m *simMAC) LinkUp(mode edulink.AutonegMode) {
	log.Info().Str("mode", mode.String()).Msg("mac link up")
}

// SetLink flips the simulated MAC's own view of the link, as an in-band
// PCS would after (re)negotiation.
func (m *simMAC) SetLink(up bool, speed edulink.Speed, duplex edulink.Duplex) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Link = up
	m.state.SyncStatus = up
	m.state.AutonegComplete = up

	if speed != edulink.SpeedUnknown {
		m.state.Speed = speed
	}
	if duplex != edulink.DuplexUnknown {
		m.state.Duplex = duplex
	}
}
