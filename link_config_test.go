package edulink_test

import (
	"testing"

	"github.com/davidkroell/edulink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixedLink(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    *edulink.FixedLink
		wantErr error
	}{
		"SpeedAndDuplex": {
			input: "1000/full",
			want:  &edulink.FixedLink{Speed: edulink.Speed1000, Duplex: edulink.DuplexFull},
		},
		"WithSymPause": {
			input: "100/half/sym",
			want:  &edulink.FixedLink{Speed: edulink.Speed100, Duplex: edulink.DuplexHalf, Pause: edulink.PauseSym},
		},
		"WithBothPauses": {
			input: "10/full/sym+asym",
			want:  &edulink.FixedLink{Speed: edulink.Speed10, Duplex: edulink.DuplexFull, Pause: edulink.PauseSym | edulink.PauseAsym},
		},
		"ExplicitNoPause": {
			input: "2500/full/none",
			want:  &edulink.FixedLink{Speed: edulink.Speed2500, Duplex: edulink.DuplexFull},
		},
		"TooFewParts": {
			input:   "1000",
			wantErr: edulink.ErrInvalidFixedLinkString,
		},
		"TooManyParts": {
			input:   "1000/full/sym/x",
			wantErr: edulink.ErrInvalidFixedLinkString,
		},
		"NonNumericSpeed": {
			input:   "fast/full",
			wantErr: edulink.ErrInvalidFixedLinkString,
		},
		"BadDuplex": {
			input:   "1000/both",
			wantErr: edulink.ErrInvalidDuplexString,
		},
		"BadPause": {
			input:   "1000/full/maybe",
			wantErr: edulink.ErrInvalidPauseString,
		},
		"UnknownCombination": {
			input:   "2500/half",
			wantErr: edulink.ErrUnknownLinkMode,
		},
		"UnknownSpeed": {
			input:   "42/full",
			wantErr: edulink.ErrUnknownLinkMode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := edulink.ParseFixedLink(tt.input)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixedLinkFromLegacy(t *testing.T) {
	tests := map[string]struct {
		input   [4]uint32
		want    *edulink.FixedLink
		wantErr error
	}{
		"GigabitFullSymPause": {
			input: [4]uint32{1, 1000, 1, 0},
			want:  &edulink.FixedLink{Speed: edulink.Speed1000, Duplex: edulink.DuplexFull, Pause: edulink.PauseSym},
		},
		"FastHalfBothPauses": {
			input: [4]uint32{0, 100, 1, 1},
			want:  &edulink.FixedLink{Speed: edulink.Speed100, Duplex: edulink.DuplexHalf, Pause: edulink.PauseSym | edulink.PauseAsym},
		},
		"NoPause": {
			input: [4]uint32{1, 10, 0, 0},
			want:  &edulink.FixedLink{Speed: edulink.Speed10, Duplex: edulink.DuplexFull},
		},
		"BadDuplexValue": {
			input:   [4]uint32{2, 100, 0, 0},
			wantErr: edulink.ErrInvalidLegacyDuplex,
		},
		"UnknownCombination": {
			input:   [4]uint32{0, 2500, 0, 0},
			wantErr: edulink.ErrUnknownLinkMode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := edulink.FixedLinkFromLegacy(tt.input)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
