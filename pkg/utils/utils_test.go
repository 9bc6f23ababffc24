package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 18.75, RoundTo(18.745, 2))
	assert.Equal(t, 1.0, RoundTo(0.95, 0))
	assert.Equal(t, -2.35, RoundTo(-2.345, 2))
	assert.Equal(t, 0.0, RoundTo(math.NaN(), 2))
	assert.Equal(t, 0.0, RoundTo(math.Inf(1), 2))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "18.75%", FormatPercent(18.745, 2))
	assert.Equal(t, "100.0%", FormatPercent(100, 1))
	assert.Equal(t, "-", FormatPercent(math.NaN(), 1))
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, 10)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, "^[A-Za-z0-9]+$", a)
}
