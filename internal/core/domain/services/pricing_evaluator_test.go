package services_test

import (
	"testing"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEvaluator_Forward(t *testing.T) {
	evaluator := services.NewPricingEvaluator()

	zp, err := pricing.NewZonePricing(kernel.ZoneWithinCity, 30, 10, true, 0, 0, 0)
	require.NoError(t, err)

	t.Run("base price only within slab", func(t *testing.T) {
		assert.InDelta(t, 30.0, evaluator.Forward(zp, 0), 1e-9)
	})

	t.Run("adds increment price per unit", func(t *testing.T) {
		assert.InDelta(t, 40.0, evaluator.Forward(zp, 1), 1e-9)
		assert.InDelta(t, 60.0, evaluator.Forward(zp, 3), 1e-9)
	})
}

func TestPricingEvaluator_Return(t *testing.T) {
	evaluator := services.NewPricingEvaluator()

	t.Run("mirrors forward formula when flagged", func(t *testing.T) {
		// rto base/increment are deliberately different to prove they are
		// ignored when the row mirrors forward pricing.
		zp, err := pricing.NewZonePricing(kernel.ZoneWithinROI, 50, 20, true, 99, 99, 0)
		require.NoError(t, err)

		assert.InDelta(t, 50.0, evaluator.Return(zp, 0), 1e-9)
		assert.InDelta(t, 90.0, evaluator.Return(zp, 2), 1e-9)
	})

	t.Run("uses own rto prices otherwise", func(t *testing.T) {
		zp, err := pricing.NewZonePricing(kernel.ZoneWithinROI, 50, 20, false, 35, 15, 0)
		require.NoError(t, err)

		assert.InDelta(t, 35.0, evaluator.Return(zp, 0), 1e-9)
		assert.InDelta(t, 65.0, evaluator.Return(zp, 2), 1e-9)
	})

	t.Run("flat rto charge is added once in both modes", func(t *testing.T) {
		mirrored, err := pricing.NewZonePricing(kernel.ZoneWithinROI, 50, 20, true, 0, 0, 25)
		require.NoError(t, err)
		assert.InDelta(t, 95.0, evaluator.Return(mirrored, 1), 1e-9)

		own, err := pricing.NewZonePricing(kernel.ZoneWithinROI, 50, 20, false, 35, 15, 25)
		require.NoError(t, err)
		assert.InDelta(t, 75.0, evaluator.Return(own, 1), 1e-9)
	})
}
