package edulink_test

import (
	"testing"

	"github.com/davidkroell/edulink"
	"github.com/stretchr/testify/assert"
)

func TestCapabilitySetOperations(t *testing.T) {
	s := edulink.NewCapabilitySet(edulink.Cap100Full, edulink.Cap1000Full)

	assert.True(t, s.Test(edulink.Cap100Full))
	assert.True(t, s.Test(edulink.Cap1000Full))
	assert.False(t, s.Test(edulink.Cap10Half))

	s = s.With(edulink.CapPause)
	assert.True(t, s.Test(edulink.CapPause))

	s = s.Without(edulink.Cap100Full)
	assert.False(t, s.Test(edulink.Cap100Full))

	other := edulink.NewCapabilitySet(edulink.Cap1000Full, edulink.Cap10Full)
	assert.Equal(t, edulink.NewCapabilitySet(edulink.Cap1000Full), s.Intersect(other))

	assert.False(t, s.IsEmpty())
	assert.True(t, edulink.CapabilitySet(0).IsEmpty())
}

func TestCapabilitySetHasLinkModes(t *testing.T) {
	assert.True(t, edulink.NewCapabilitySet(edulink.Cap10Half).HasLinkModes())
	assert.False(t, edulink.NewCapabilitySet(edulink.CapAutoneg, edulink.CapPause).HasLinkModes())
	assert.False(t, edulink.CapabilitySet(0).HasLinkModes())
}

func TestCapabilitySetString(t *testing.T) {
	s := edulink.NewCapabilitySet(edulink.Cap100Full, edulink.CapPause)
	assert.Equal(t, "100baseT-full,pause", s.String())
	assert.Equal(t, "", edulink.CapabilitySet(0).String())
}

func TestAutonegModeInBand(t *testing.T) {
	tests := map[edulink.AutonegMode]bool{
		edulink.ANModePHY:       false,
		edulink.ANModeFixed:     false,
		edulink.ANModeSGMII:     true,
		edulink.ANMode1000BaseX: true,
	}

	for mode, want := range tests {
		t.Run(mode.String(), func(t *testing.T) {
			assert.Equal(t, want, mode.InBand())
		})
	}
}

func TestDuplexAndPauseStrings(t *testing.T) {
	assert.Equal(t, "half", edulink.DuplexHalf.String())
	assert.Equal(t, "full", edulink.DuplexFull.String())
	assert.Equal(t, "unknown", edulink.DuplexUnknown.String())

	assert.Equal(t, "none", edulink.PauseNone.String())
	assert.Equal(t, "sym", edulink.PauseSym.String())
	assert.Equal(t, "asym", edulink.PauseAsym.String())
	assert.Equal(t, "sym+asym", (edulink.PauseSym | edulink.PauseAsym).String())
}
