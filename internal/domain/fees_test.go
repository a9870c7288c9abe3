package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutFee(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		speed  PayoutSpeed
		want   int64
	}{
		{"standard is free", 10000, PayoutSpeedStandard, 0},
		{"empty speed is standard", 10000, "", 0},
		{"same day is flat", 10000, PayoutSpeedSameDay, 300},
		{"instant percent", 10000, PayoutSpeedInstant, 150},
		{"instant rounds half up", 1100, PayoutSpeedInstant, 17},
		{"instant rounds down", 1030, PayoutSpeedInstant, 15},
		{"instant small amount", 10, PayoutSpeedInstant, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := PayoutFee(tc.amount, tc.speed)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fee)
		})
	}

	_, err := PayoutFee(100, "WARP")
	assert.ErrorIs(t, err, ErrValidation)
}
