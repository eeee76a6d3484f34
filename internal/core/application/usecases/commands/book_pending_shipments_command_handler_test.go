package commands_test

import (
	"testing"

	"rates/internal/core/application/usecases/commands"
	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/shipment"
	"rates/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingShipment(t *testing.T, pickup, delivery string) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(kernel.NewUUID(), shipmentRequest(t, pickup, delivery))
	require.NoError(t, err)
	return s
}

func TestBookPendingShipmentsCommandHandler_Handle_BooksServedLanes(t *testing.T) {
	// Arrange
	ctx := t.Context()
	plan, blueDart := cityPlanAndCourier(t)

	served := pendingShipment(t, "560001", "560002")
	unserved := pendingShipment(t, "560001", "110001") // no metro price row
	unknown := pendingShipment(t, "560001", "999999")  // not in the directory

	mockShipments := new(MockShipmentRepository)
	mockPlans := new(MockPlanRepository)
	mockCouriers := new(MockCourierRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipments).Once()
	mockShipments.On("GetAllInCreatedStatus", ctx).
		Return([]*shipment.Shipment{served, unserved, unknown}, nil).Once()
	mockUoW.On("PlanRepository").Return(mockPlans).Once()
	mockPlans.On("GetDefault", ctx).Return(plan, nil).Once()
	mockUoW.On("CourierRepository").Return(mockCouriers).Once()
	mockCouriers.On("GetAllActive", ctx).Return([]*courier.Courier{blueDart}, nil).Once()
	mockShipments.On("Update", ctx, served).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewBookPendingShipmentsCommandHandler(
		mockFactory, newFakeDirectory(t), services.NewRateCalculator())
	cmd := commands.NewBookPendingShipmentsCommand()

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, shipment.Booked, served.Status())
	require.NotNil(t, served.Quote())
	assert.InDelta(t, 40.0, served.Quote().TotalCharge(), 1e-9)

	// Unserved and unresolvable lanes stay pending for the next sweep.
	assert.Equal(t, shipment.Created, unserved.Status())
	assert.Equal(t, shipment.Created, unknown.Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipments.AssertExpectations(t)
	mockPlans.AssertExpectations(t)
	mockCouriers.AssertExpectations(t)
}

func TestBookPendingShipmentsCommandHandler_Handle_NoPendingShipments(t *testing.T) {
	// Arrange
	ctx := t.Context()

	mockShipments := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipments).Once()
	mockShipments.On("GetAllInCreatedStatus", ctx).Return([]*shipment.Shipment{}, nil).Once()
	// Rollback is called twice: once for the empty early-out and once deferred.
	mockUoW.On("Rollback", ctx).Return(nil).Twice()

	handler := commands.NewBookPendingShipmentsCommandHandler(
		mockFactory, newFakeDirectory(t), services.NewRateCalculator())
	cmd := commands.NewBookPendingShipmentsCommand()

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockShipments.AssertExpectations(t)
}

func TestBookPendingShipmentsCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.BookPendingShipmentsCommand

	mockFactory := new(MockUoWFactory)
	handler := commands.NewBookPendingShipmentsCommandHandler(
		mockFactory, newFakeDirectory(t), services.NewRateCalculator())

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrBookPendingShipmentsCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestBookPendingShipmentsCommandHandler_Handle_RollbackOnUpdateError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	plan, blueDart := cityPlanAndCourier(t)
	served := pendingShipment(t, "560001", "560002")

	updateErr := assert.AnError
	mockShipments := new(MockShipmentRepository)
	mockPlans := new(MockPlanRepository)
	mockCouriers := new(MockCourierRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipments).Once()
	mockShipments.On("GetAllInCreatedStatus", ctx).Return([]*shipment.Shipment{served}, nil).Once()
	mockUoW.On("PlanRepository").Return(mockPlans).Once()
	mockPlans.On("GetDefault", ctx).Return(plan, nil).Once()
	mockUoW.On("CourierRepository").Return(mockCouriers).Once()
	mockCouriers.On("GetAllActive", ctx).Return([]*courier.Courier{blueDart}, nil).Once()
	mockShipments.On("Update", ctx, served).Return(updateErr).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewBookPendingShipmentsCommandHandler(
		mockFactory, newFakeDirectory(t), services.NewRateCalculator())
	cmd := commands.NewBookPendingShipmentsCommand()

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, updateErr, err)
	mockUoW.AssertExpectations(t)
	mockShipments.AssertExpectations(t)
}
