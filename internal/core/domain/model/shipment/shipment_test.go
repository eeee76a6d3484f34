package shipment_test

import (
	"testing"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(t *testing.T) rate.RateRequest {
	t.Helper()

	pickup, err := kernel.NewPincode("560001")
	require.NoError(t, err)
	delivery, err := kernel.NewPincode("110001")
	require.NoError(t, err)

	req, err := rate.NewRateRequest(
		pickup, delivery,
		0.6, rate.WeightUnitKilogram,
		10, 10, 10, rate.SizeUnitCentimeter,
		rate.PaymentTypePrepaid, 0, false,
	)
	require.NoError(t, err)
	return req
}

func validQuote(t *testing.T, courierID kernel.UUID) rate.RateQuote {
	t.Helper()

	quote, err := rate.NewRateQuote(courierID, "BlueDart", kernel.ZoneWithinCity, 0.6, 40, 0, 0)
	require.NoError(t, err)
	return quote
}

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment in Created status", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := shipment.NewShipment(id, validRequest(t))

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, shipment.Created, s.Status())
		assert.Nil(t, s.Courier())
		assert.Nil(t, s.Quote())
		assert.NoError(t, s.Validate())
	})

	t.Run("should fail with unconstructed request", func(t *testing.T) {
		var req rate.RateRequest

		_, err := shipment.NewShipment(kernel.NewUUID(), req)

		require.Error(t, err)
	})

	t.Run("nil shipment fails validation", func(t *testing.T) {
		var s *shipment.Shipment

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, err)
	})
}

func TestShipment_Book(t *testing.T) {
	t.Run("should book courier and snapshot quote", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))
		courierID := kernel.NewUUID()
		quote := validQuote(t, courierID)

		err := s.Book(quote)

		require.NoError(t, err)
		assert.Equal(t, shipment.Booked, s.Status())
		require.NotNil(t, s.Courier())
		assert.True(t, s.Courier().IsEqual(courierID))
		require.NotNil(t, s.Quote())
		assert.InDelta(t, 40.0, s.Quote().TotalCharge(), 1e-9)
	})

	t.Run("should allow rebooking with a different courier", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, s.Book(validQuote(t, first)))
		require.NoError(t, s.Book(validQuote(t, second)))

		assert.Equal(t, shipment.Booked, s.Status())
		assert.True(t, s.Courier().IsEqual(second))
	})

	t.Run("should reject booking a completed shipment", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))
		require.NoError(t, s.Book(validQuote(t, kernel.NewUUID())))
		require.NoError(t, s.Complete())

		err := s.Book(validQuote(t, kernel.NewUUID()))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Completed is not a valid status to book")
	})

	t.Run("should reject unconstructed quote", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))

		var quote rate.RateQuote
		err := s.Book(quote)

		require.Error(t, err)
		assert.Equal(t, shipment.Created, s.Status())
	})
}

func TestShipment_Complete(t *testing.T) {
	t.Run("should complete booked shipment", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))
		require.NoError(t, s.Book(validQuote(t, kernel.NewUUID())))

		require.NoError(t, s.Complete())
		assert.Equal(t, shipment.Completed, s.Status())
	})

	t.Run("should reject completing an unbooked shipment", func(t *testing.T) {
		s, _ := shipment.NewShipment(kernel.NewUUID(), validRequest(t))

		err := s.Complete()

		require.Error(t, err)
		assert.Equal(t, shipment.Created, s.Status())
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should restore booked shipment", func(t *testing.T) {
		id := kernel.NewUUID()
		courierID := kernel.NewUUID()
		quote := validQuote(t, courierID)

		s, err := shipment.RestoreShipment(id, validRequest(t), shipment.Booked, &courierID, &quote)

		require.NoError(t, err)
		assert.Equal(t, shipment.Booked, s.Status())
		assert.True(t, s.Courier().IsEqual(courierID))
	})

	t.Run("should reject booked status without courier", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), validRequest(t), shipment.Booked, nil, nil)

		require.Error(t, err)
	})

	t.Run("should reject created status with courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := shipment.RestoreShipment(kernel.NewUUID(), validRequest(t), shipment.Created, &courierID, nil)

		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string round-trip", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Created, shipment.Booked, shipment.Completed} {
			parsed, err := shipment.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, shipment.Unknown.Validate())
		assert.Equal(t, "Unknown", shipment.Status(42).String())

		_, err := shipment.StatusFromString("Teleported")
		require.Error(t, err)
	})
}
