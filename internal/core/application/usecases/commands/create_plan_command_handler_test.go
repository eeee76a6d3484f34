package commands_test

import (
	"context"
	"testing"

	"rates/internal/core/application/usecases/commands"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
	"rates/internal/core/ports"
	"rates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Add(ctx context.Context, plan *pricing.PricingPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *pricing.PricingPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.PricingPlan, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*pricing.PricingPlan), args.Error(1)
}

func (m *MockPlanRepository) GetDefault(ctx context.Context) (*pricing.PricingPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).(*pricing.PricingPlan), args.Error(1)
}

type MockPlanUoW struct {
	mock.Mock
}

func (m *MockPlanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanUoW) PlanRepository() ports.PlanRepository {
	args := m.Called()
	return args.Get(0).(ports.PlanRepository)
}

type MockPlanUoWFactory struct {
	mock.Mock
}

func (m *MockPlanUoWFactory) Create() commands.PlanUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanUoW)
}

func TestCreatePlanCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreatePlanCommand("Default", true,
		[]commands.CourierPricingInput{sampleCourierPricingInput(courierID.String())})
	require.NoError(t, err)

	mockRepo := new(MockPlanRepository)
	mockUoW := new(MockPlanUoW)
	mockFactory := new(MockPlanUoWFactory)

	var capturedPlan *pricing.PricingPlan
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PlanRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(p *pricing.PricingPlan) bool {
			capturedPlan = p
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreatePlanCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedPlan)
	assert.Equal(t, "Default", capturedPlan.Name())
	assert.True(t, capturedPlan.IsDefault())

	entry, ok := capturedPlan.PricingFor(courierID)
	require.True(t, ok)
	row, ok := entry.ZonePricingFor(kernel.ZoneWithinCity)
	require.True(t, ok)
	assert.InDelta(t, 30.0, row.BasePrice(), 1e-9)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreatePlanCommand

	mockFactory := new(MockPlanUoWFactory)
	handler := commands.NewCreatePlanCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreatePlanCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_MalformedPricing(t *testing.T) {
	// Arrange
	ctx := t.Context()
	input := sampleCourierPricingInput(kernel.NewUUID().String())
	input.IncrementWeight = 0 // would make incremental billing divide by zero

	cmd, err := commands.NewCreatePlanCommand("Broken", false,
		[]commands.CourierPricingInput{input})
	require.NoError(t, err)

	mockFactory := new(MockPlanUoWFactory)
	handler := commands.NewCreatePlanCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// The command is rejected before any transaction is opened.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockFactory.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_UnknownZone(t *testing.T) {
	// Arrange
	ctx := t.Context()
	input := sampleCourierPricingInput(kernel.NewUUID().String())
	input.ZonePricings[0].Zone = "WITHIN_GALAXY"

	cmd, err := commands.NewCreatePlanCommand("Broken", false,
		[]commands.CourierPricingInput{input})
	require.NoError(t, err)

	mockFactory := new(MockPlanUoWFactory)
	handler := commands.NewCreatePlanCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockFactory.AssertExpectations(t)
}

func TestCreatePlanCommandHandler_Handle_DuplicateCourier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courierID := kernel.NewUUID().String()
	cmd, err := commands.NewCreatePlanCommand("Duplicated", false,
		[]commands.CourierPricingInput{
			sampleCourierPricingInput(courierID),
			sampleCourierPricingInput(courierID),
		})
	require.NoError(t, err)

	mockFactory := new(MockPlanUoWFactory)
	handler := commands.NewCreatePlanCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, pricing.ErrCourierAlreadyPriced)
	mockFactory.AssertExpectations(t)
}
