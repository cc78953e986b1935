package edulink_test

import (
	"testing"

	"github.com/davidkroell/edulink"
	"github.com/davidkroell/edulink/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverMIIReadFixedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	macMock := mocks.NewMockMACOps(ctrl)

	fixedLink, err := edulink.NewFixedLink(edulink.Speed100, edulink.DuplexFull, edulink.PauseSym)
	require.NoError(t, err)

	r, err := edulink.NewResolver(&edulink.LinkConfig{
		Mode:  edulink.ANModeFixed,
		Fixed: fixedLink,
	}, macMock)
	require.NoError(t, err)

	tests := map[string]struct {
		reg  uint16
		want uint16
	}{
		// speed-100 and full-duplex bits, autoneg off
		"BMCR": {reg: edulink.MIIRegBMCR, want: 0x2100},
		// link up, autoneg complete, 100baseT-full capable
		"BMSR": {reg: edulink.MIIRegBMSR, want: 0x4024},
		// selector, 100baseT-full, pause
		"ANAR": {reg: edulink.MIIRegANAR, want: 0x0501},
		// no link partner on a fixed link
		"ANLPAR": {reg: edulink.MIIRegANLPAR, want: 0x0001},
		// synthetic PHY has no ID
		"PhyID1": {reg: edulink.MIIRegPhyID1, want: 0x0000},
		"PhyID2": {reg: edulink.MIIRegPhyID2, want: 0x0000},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, err := r.MIIRead(tt.reg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestResolverMIIErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("PHYManagedMode", func(t *testing.T) {
		macMock := mocks.NewMockMACOps(ctrl)
		macMock.EXPECT().SupportedCapabilities(edulink.ANModePHY).Return(macSupported())

		r, err := edulink.NewResolver(&edulink.LinkConfig{Mode: edulink.ANModePHY}, macMock)
		require.NoError(t, err)

		_, err = r.MIIRead(edulink.MIIRegBMSR)
		assert.EqualError(t, err, edulink.ErrNoMIIEmulation.Error())

		err = r.MIIWrite(edulink.MIIRegBMCR, 0x0200)
		assert.EqualError(t, err, edulink.ErrNoMIIEmulation.Error())
	})

	t.Run("RegisterOutOfRange", func(t *testing.T) {
		macMock := mocks.NewMockMACOps(ctrl)
		macMock.EXPECT().SupportedCapabilities(edulink.ANModeSGMII).Return(macSupported())

		r, err := edulink.NewResolver(&edulink.LinkConfig{Mode: edulink.ANModeSGMII}, macMock)
		require.NoError(t, err)

		_, err = r.MIIRead(32)
		assert.EqualError(t, err, edulink.ErrInvalidMIIRegister.Error())

		err = r.MIIWrite(32, 0)
		assert.EqualError(t, err, edulink.ErrInvalidMIIRegister.Error())
	})
}

func TestResolverMIIWriteRestartsAutoneg(t *testing.T) {
	ctrl := gomock.NewController(t)
	macMock := mocks.NewMockMACOps(ctrl)
	macMock.EXPECT().SupportedCapabilities(edulink.ANModeSGMII).Return(macSupported())

	r, err := edulink.NewResolver(&edulink.LinkConfig{Mode: edulink.ANModeSGMII}, macMock)
	require.NoError(t, err)

	// autoneg-restart bit forwards to the MAC
	macMock.EXPECT().RestartAutoneg(edulink.ANModeSGMII).Times(1)
	require.NoError(t, r.MIIWrite(edulink.MIIRegBMCR, 0x0200))

	// everything else is ignored
	require.NoError(t, r.MIIWrite(edulink.MIIRegBMCR, 0x2100))
	require.NoError(t, r.MIIWrite(edulink.MIIRegANAR, 0x0101))
}

func TestResolverMIIWriteFixedModeIgnoresRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	macMock := mocks.NewMockMACOps(ctrl)

	fixedLink, err := edulink.NewFixedLink(edulink.Speed1000, edulink.DuplexFull, edulink.PauseNone)
	require.NoError(t, err)

	r, err := edulink.NewResolver(&edulink.LinkConfig{
		Mode:  edulink.ANModeFixed,
		Fixed: fixedLink,
	}, macMock)
	require.NoError(t, err)

	// nothing to restart on a fixed link
	require.NoError(t, r.MIIWrite(edulink.MIIRegBMCR, 0x0200))
}
