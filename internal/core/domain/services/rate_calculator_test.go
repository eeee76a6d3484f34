package services_test

import (
	"context"
	"testing"
	"time"

	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/services"
	"rates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calcRequest(t *testing.T, pickup, delivery string, paymentType rate.PaymentType,
	collectableAmount float64, isReverseOrder bool,
) rate.RateRequest {
	t.Helper()

	req, err := rate.NewRateRequest(
		pincode(t, pickup), pincode(t, delivery),
		0.6, rate.WeightUnitKilogram,
		10, 10, 10, rate.SizeUnitCentimeter,
		paymentType, collectableAmount, isReverseOrder,
	)
	require.NoError(t, err)
	return req
}

func newTestCourier(t *testing.T, name string, isReturnOnly bool, pickupTime time.Duration) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), name, courier.ServiceTypeSurface, isReturnOnly, pickupTime)
	require.NoError(t, err)
	return c
}

// newEntry builds a plan entry for the courier with one WITHIN_CITY price row
// and attaches it to the plan.
func newEntry(t *testing.T, plan *pricing.PricingPlan, c *courier.Courier,
	basePrice float64, forward, rto, cod bool,
) *pricing.CourierPricing {
	t.Helper()

	cp, err := pricing.NewCourierPricing(c.ID(), 0.5, 0.5, 10, 40, 1.5, forward, rto, cod, false)
	require.NoError(t, err)

	zp, err := pricing.NewZonePricing(kernel.ZoneWithinCity, basePrice, 10, true, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, cp.AddZonePricing(zp))

	require.NoError(t, plan.AddCourierPricing(cp))
	return cp
}

func TestRateCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	directory := newStubDirectory(t)
	calculator := services.NewRateCalculator()

	t.Run("single courier end to end", func(t *testing.T) {
		// 0.6 kg against a 0.5 kg slab with 0.5 kg steps: volumetric weight
		// is 0.2 kg, billed weight 0.6 kg, one increment, 30 + 10 = 40.
		c := newTestCourier(t, "BlueDart", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		quote := quotes[0]
		assert.Equal(t, kernel.ZoneWithinCity, quote.Zone())
		assert.InDelta(t, 0.6, quote.BilledWeightKg(), 1e-9)
		assert.InDelta(t, 40.0, quote.ForwardCharge(), 1e-9)
		assert.InDelta(t, 0.0, quote.RTOCharge(), 1e-9)
		assert.InDelta(t, 0.0, quote.CODCharge(), 1e-9)
		assert.InDelta(t, 40.0, quote.TotalCharge(), 1e-9)
		assert.Equal(t, "BlueDart", quote.CourierName())
	})

	t.Run("ranks by total ascending", func(t *testing.T) {
		cheap := newTestCourier(t, "Cheap", false, 8*time.Hour)
		expensive := newTestCourier(t, "Expensive", false, 2*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, expensive, 110, true, false, false) // total 120
		newEntry(t, plan, cheap, 85, true, false, false)      // total 95

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{cheap, expensive})

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, "Cheap", quotes[0].CourierName())
		assert.InDelta(t, 95.0, quotes[0].TotalCharge(), 1e-9)
		assert.Equal(t, "Expensive", quotes[1].CourierName())
		assert.InDelta(t, 120.0, quotes[1].TotalCharge(), 1e-9)
	})

	t.Run("equal totals tie-break on shorter pickup time", func(t *testing.T) {
		slow := newTestCourier(t, "Slow", false, 12*time.Hour)
		fast := newTestCourier(t, "Fast", false, 2*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, slow, 30, true, false, false)
		newEntry(t, plan, fast, 30, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{slow, fast})

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, "Fast", quotes[0].CourierName())
	})

	t.Run("equal totals and pickup times tie-break on courier id", func(t *testing.T) {
		first := newTestCourier(t, "First", false, 4*time.Hour)
		second := newTestCourier(t, "Second", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, first, 30, true, false, false)
		newEntry(t, plan, second, 30, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{first, second})

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Less(t, quotes[0].CourierID().String(), quotes[1].CourierID().String())
	})

	t.Run("skips inactive couriers", func(t *testing.T) {
		active := newTestCourier(t, "Active", false, 4*time.Hour)
		inactive := newTestCourier(t, "Inactive", false, 4*time.Hour)
		inactive.Deactivate()
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, active, 30, true, false, false)
		newEntry(t, plan, inactive, 10, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{active, inactive})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "Active", quotes[0].CourierName())
	})

	t.Run("skips couriers without forward applicability on forward legs", func(t *testing.T) {
		c := newTestCourier(t, "ReturnsDesk", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, false, true, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("skips return-only couriers on forward legs", func(t *testing.T) {
		c := newTestCourier(t, "ReverseOnly", true, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, true, true, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("reverse legs require rto applicability and add the rto charge", func(t *testing.T) {
		capable := newTestCourier(t, "Capable", false, 4*time.Hour)
		forwardOnly := newTestCourier(t, "ForwardOnly", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, capable, 30, true, true, false)
		newEntry(t, plan, forwardOnly, 30, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, true)

		quotes, err := calculator.Calculate(ctx, directory, req, plan,
			[]*courier.Courier{capable, forwardOnly})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		quote := quotes[0]
		assert.Equal(t, "Capable", quote.CourierName())
		// Mirrored RTO pricing: forward 40 plus RTO 40.
		assert.InDelta(t, 40.0, quote.ForwardCharge(), 1e-9)
		assert.InDelta(t, 40.0, quote.RTOCharge(), 1e-9)
		assert.InDelta(t, 80.0, quote.TotalCharge(), 1e-9)
	})

	t.Run("cod surcharge is included in the total", func(t *testing.T) {
		c := newTestCourier(t, "CashHandler", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, true, false, true)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypeCOD, 5000, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		quote := quotes[0]
		// max(40, 5000 * 1.5 / 100) = 75 on top of the 40 forward charge.
		assert.InDelta(t, 75.0, quote.CODCharge(), 1e-9)
		assert.InDelta(t, 115.0, quote.TotalCharge(), 1e-9)
		assert.GreaterOrEqual(t, quote.TotalCharge(), quote.ForwardCharge())
	})

	t.Run("unserved zone yields an empty list without error", func(t *testing.T) {
		// The plan prices WITHIN_CITY only; a rest-of-India lane finds no
		// price row and the courier is silently excluded.
		c := newTestCourier(t, "CityOnly", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, true, false, false)

		req := calcRequest(t, "570001", "226001", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("courier missing from the list is skipped", func(t *testing.T) {
		listed := newTestCourier(t, "Listed", false, 4*time.Hour)
		unlisted := newTestCourier(t, "Unlisted", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, listed, 30, true, false, false)
		newEntry(t, plan, unlisted, 10, true, false, false)

		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		quotes, err := calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{listed})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "Listed", quotes[0].CourierName())
	})

	t.Run("unresolvable pincode aborts the whole computation", func(t *testing.T) {
		c := newTestCourier(t, "BlueDart", false, 4*time.Hour)
		plan, err := pricing.NewPricingPlan(kernel.NewUUID(), "Default", true)
		require.NoError(t, err)
		newEntry(t, plan, c, 30, true, false, false)

		req := calcRequest(t, "560001", "999999", rate.PaymentTypePrepaid, 0, false)

		_, err = calculator.Calculate(ctx, directory, req, plan, []*courier.Courier{c})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed plan is rejected", func(t *testing.T) {
		req := calcRequest(t, "560001", "560002", rate.PaymentTypePrepaid, 0, false)

		_, err := calculator.Calculate(ctx, directory, req, nil, nil)

		require.Error(t, err)
		assert.Equal(t, pricing.ErrPricingPlanIsNotConstructed, err)
	})
}
