package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShipIsOverLengthLimit(t *testing.T) {
	length := func(v string) decimal.NullDecimal {
		d, err := decimal.NewFromString(v)
		require.NoError(t, err)
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}

	require.False(t, (&Ship{}).IsOverLengthLimit())
	require.False(t, (&Ship{Length: length("10")}).IsOverLengthLimit())
	require.True(t, (&Ship{Length: length("10.01")}).IsOverLengthLimit())
	require.True(t, (&Ship{Length: length("24")}).IsOverLengthLimit())
}
