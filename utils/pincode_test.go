package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePinCodes(t *testing.T) {
	t.Parallel()

	pins, err := ParsePinCodes("560001, 560002,560003")
	require.NoError(t, err)
	assert.Equal(t, []int{560001, 560002, 560003}, pins)
}

func TestParsePinCodes_Empty(t *testing.T) {
	t.Parallel()

	pins, err := ParsePinCodes("")
	require.NoError(t, err)
	assert.Nil(t, pins)

	pins, err = ParsePinCodes("  ")
	require.NoError(t, err)
	assert.Nil(t, pins)
}

func TestParsePinCodes_SkipsBlankEntries(t *testing.T) {
	t.Parallel()

	pins, err := ParsePinCodes("560001,,560002,")
	require.NoError(t, err)
	assert.Equal(t, []int{560001, 560002}, pins)
}

func TestParsePinCodes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParsePinCodes("560001,abc")
	assert.Error(t, err)
}

func TestNormalizePinCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{560001, 560002},
		NormalizePinCodes([]int{560001, 560002, 560001, 560002}))

	// Already-deduplicated input is returned unchanged.
	assert.Equal(t, []int{560001, 560002},
		NormalizePinCodes([]int{560001, 560002}))
}

func TestInvalidPinCodes(t *testing.T) {
	t.Parallel()

	supplierPins := []int{560001, 560002, 560003}

	assert.Empty(t, InvalidPinCodes([]int{560001, 560003}, supplierPins))
	assert.Equal(t, []int{560099},
		InvalidPinCodes([]int{560001, 560099}, supplierPins))
	assert.Equal(t, []int{560099, 560100},
		InvalidPinCodes([]int{560099, 560100}, supplierPins))
	assert.Empty(t, InvalidPinCodes(nil, supplierPins))
}
