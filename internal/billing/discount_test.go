package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRate(t *testing.T) {
	assert.InDelta(t, 33.46, ClampRate(33.456), 1e-9)
	assert.InDelta(t, 100.0, ClampRate(150), 1e-9)
	assert.InDelta(t, 0.0, ClampRate(-5), 1e-9)
	assert.InDelta(t, 0.0, ClampRate(math.NaN()), 1e-9)
	assert.InDelta(t, 0.0, ClampRate(math.Inf(1)), 1e-9)
	assert.InDelta(t, 12.5, ClampRate(12.5), 1e-9)
}

func TestProductKey_MatchesAggregationNormalization(t *testing.T) {
	assert.Equal(t, "keepit|office 365", ProductKey("  Keepit ", "Office  365"))
	assert.Equal(t, ProductKey("Microsoft", "Teams"), ProductKey("MICROSOFT", " teams "))
}

func TestDiscountedAmount(t *testing.T) {
	assert.InDelta(t, 75.0, DiscountedAmount(100, 25), 1e-9)
	assert.InDelta(t, 100.0, DiscountedAmount(100, 0), 1e-9)
	assert.InDelta(t, 0.0, DiscountedAmount(100, 100), 1e-9)
}

func TestIsDiscounted_Tolerance(t *testing.T) {
	assert.False(t, IsDiscounted(100, 100))
	assert.False(t, IsDiscounted(100, 100.004))
	assert.True(t, IsDiscounted(100, 99.9))
	assert.True(t, IsDiscounted(100, 75))
}
