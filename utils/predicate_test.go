package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scalarmap/utils"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsInRange(0, 0, 10))
	assert.True(t, utils.IsInRange(0, 10, 10))
	assert.False(t, utils.IsInRange(0, 11, 10))
	assert.False(t, utils.IsInRange(-1.5, -2.0, 1.5))
	assert.True(t, utils.IsInRange[uint64](0, 1<<53, 1<<53))
	assert.False(t, utils.IsInRange[uint64](0, 1<<53+1, 1<<53))
}

func TestIsSymmetricRange(t *testing.T) {
	t.Parallel()

	const bound = int64(1 << 53)

	assert.True(t, utils.IsSymmetricRange(bound, bound))
	assert.True(t, utils.IsSymmetricRange(-bound, bound))
	assert.False(t, utils.IsSymmetricRange(bound+1, bound))
	assert.False(t, utils.IsSymmetricRange(-bound-1, bound))
}
