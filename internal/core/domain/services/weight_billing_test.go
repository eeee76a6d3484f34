package services_test

import (
	"testing"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/services"
	"rates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, weight float64, weightUnit rate.WeightUnit,
	length, width, height float64, sizeUnit rate.SizeUnit,
) rate.RateRequest {
	t.Helper()

	pickup, err := kernel.NewPincode("560001")
	require.NoError(t, err)
	delivery, err := kernel.NewPincode("110001")
	require.NoError(t, err)

	req, err := rate.NewRateRequest(
		pickup, delivery,
		weight, weightUnit,
		length, width, height, sizeUnit,
		rate.PaymentTypePrepaid, 0, false,
	)
	require.NoError(t, err)
	return req
}

func TestWeightBillingCalculator_BilledWeightKg(t *testing.T) {
	calculator := services.NewWeightBillingCalculator()

	t.Run("dead weight wins for dense parcels", func(t *testing.T) {
		// 10x10x10 cm -> volumetric 1000/5000 = 0.2 kg, below the 0.6 kg
		// actual weight.
		req := newRequest(t, 0.6, rate.WeightUnitKilogram, 10, 10, 10, rate.SizeUnitCentimeter)

		billed, err := calculator.BilledWeightKg(req)

		require.NoError(t, err)
		assert.InDelta(t, 0.6, billed, 1e-9)
	})

	t.Run("volumetric weight wins for bulky parcels", func(t *testing.T) {
		// 50x40x30 cm -> volumetric 60000/5000 = 12 kg against 2 kg actual.
		req := newRequest(t, 2, rate.WeightUnitKilogram, 50, 40, 30, rate.SizeUnitCentimeter)

		billed, err := calculator.BilledWeightKg(req)

		require.NoError(t, err)
		assert.InDelta(t, 12.0, billed, 1e-9)
	})

	t.Run("normalizes grams and inches before comparing", func(t *testing.T) {
		// 500 g = 0.5 kg actual; 10x10x10 in = 25.4^3 cm^3 -> 3.277 kg
		// volumetric, so volumetric wins.
		req := newRequest(t, 500, rate.WeightUnitGram, 10, 10, 10, rate.SizeUnitInch)

		billed, err := calculator.BilledWeightKg(req)

		require.NoError(t, err)
		assert.InDelta(t, 25.4*25.4*25.4/5000, billed, 1e-9)
	})

	t.Run("monotonic in weight and dimensions", func(t *testing.T) {
		base := newRequest(t, 1, rate.WeightUnitKilogram, 20, 20, 20, rate.SizeUnitCentimeter)
		baseBilled, err := calculator.BilledWeightKg(base)
		require.NoError(t, err)

		heavier := newRequest(t, 3, rate.WeightUnitKilogram, 20, 20, 20, rate.SizeUnitCentimeter)
		heavierBilled, err := calculator.BilledWeightKg(heavier)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, heavierBilled, baseBilled)

		longer := newRequest(t, 1, rate.WeightUnitKilogram, 40, 20, 20, rate.SizeUnitCentimeter)
		longerBilled, err := calculator.BilledWeightKg(longer)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, longerBilled, baseBilled)
	})

	t.Run("unconstructed request is rejected", func(t *testing.T) {
		var req rate.RateRequest

		_, err := calculator.BilledWeightKg(req)

		require.Error(t, err)
	})
}

func TestWeightBillingCalculator_Increments(t *testing.T) {
	calculator := services.NewWeightBillingCalculator()

	t.Run("weight within slab costs zero increments", func(t *testing.T) {
		increments, err := calculator.Increments(0.5, 0.5, 0.5)

		require.NoError(t, err)
		assert.Equal(t, 0, increments)
	})

	t.Run("partial increments round up", func(t *testing.T) {
		// 0.6 kg billed over a 0.5 kg slab with 0.5 kg steps: a tenth of a
		// kilogram over still consumes one full unit.
		increments, err := calculator.Increments(0.6, 0.5, 0.5)

		require.NoError(t, err)
		assert.Equal(t, 1, increments)
	})

	t.Run("barely over a threshold consumes a full increment", func(t *testing.T) {
		increments, err := calculator.Increments(1.01, 0.5, 0.5)

		require.NoError(t, err)
		assert.Equal(t, 2, increments)
	})

	t.Run("exact step boundary does not consume a phantom unit", func(t *testing.T) {
		increments, err := calculator.Increments(1.5, 0.5, 0.5)

		require.NoError(t, err)
		assert.Equal(t, 2, increments)
	})

	t.Run("fractional steps accumulate correctly", func(t *testing.T) {
		increments, err := calculator.Increments(0.8, 0.5, 0.1)

		require.NoError(t, err)
		assert.Equal(t, 3, increments)
	})

	t.Run("rejects non-positive billed weight", func(t *testing.T) {
		_, err := calculator.Increments(0, 0.5, 0.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive increment weight", func(t *testing.T) {
		_, err := calculator.Increments(1, 0.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
