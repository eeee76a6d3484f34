package commands

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/guard"
)

var (
	ErrCreatePlanCommandIsNotConstructed = errors.New(
		"CreatePlanCommand must be created via NewCreatePlanCommand constructor",
	)
	ErrPlanNameIsRequired = errors.New("plan name is required")
)

// ZonePricingInput is the raw price row for one zone inside a plan creation
// request. Field semantics follow pricing.ZonePricing; values are validated
// when the handler builds the domain aggregate, so a malformed row rejects
// the whole command.
type ZonePricingInput struct {
	Zone               string
	BasePrice          float64
	IncrementPrice     float64
	IsRTOSameAsForward bool
	RTOBasePrice       float64
	RTOIncrementPrice  float64
	FlatRTOCharge      float64
}

// CourierPricingInput is the raw pricing configuration for one courier inside
// a plan creation request, including its zone price rows.
type CourierPricingInput struct {
	CourierID               string
	WeightSlab              float64
	IncrementWeight         float64
	IncrementPrice          float64
	CODChargeFixed          float64
	CODChargePercent        float64
	IsForwardApplicable     bool
	IsRTOApplicable         bool
	IsCODApplicable         bool
	IsCODReversalApplicable bool
	ZonePricings            []ZonePricingInput
}

// CreatePlanCommand represents a request to create a pricing plan with its
// complete courier and zone pricing configuration in one shot. Plans are
// immutable from the engine's point of view, so the whole snapshot is
// accepted and persisted atomically.
//
// Example:
//
//	cmd, err := NewCreatePlanCommand("Enterprise", false, entries)
//	if err != nil {
//	    return fmt.Errorf("invalid plan data: %w", err)
//	}
//
//	handler := NewCreatePlanCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create plan: %w", err)
//	}
//	fmt.Printf("Created plan with ID: %s", cmd.PlanID())
type CreatePlanCommand struct { //nolint:recvcheck //using for validation
	planID          kernel.UUID
	name            string
	isDefault       bool
	courierPricings []CourierPricingInput

	guard guard.ConstructorGuard
}

// NewCreatePlanCommand creates a command to register a new pricing plan.
// Automatically generates a unique ID for the plan. The courier pricing
// inputs are carried as-is; their numeric validation happens against the
// domain model inside the handler.
func NewCreatePlanCommand(
	name string,
	isDefault bool,
	courierPricings []CourierPricingInput,
) (CreatePlanCommand, error) {
	command := CreatePlanCommand{
		isDefault:       isDefault,
		courierPricings: courierPricings,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPlanID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreatePlanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePlanCommandIsNotConstructed if validation fails.
func (c CreatePlanCommand) Validate() error {
	return c.guard.Validate(ErrCreatePlanCommandIsNotConstructed)
}

// PlanID returns the generated plan ID from the command.
func (c CreatePlanCommand) PlanID() kernel.UUID {
	return c.planID
}

// Name returns the plan name from the command.
func (c CreatePlanCommand) Name() string {
	return c.name
}

// IsDefault returns whether the plan is the system-wide fallback.
func (c CreatePlanCommand) IsDefault() bool {
	return c.isDefault
}

// CourierPricings returns the raw courier pricing inputs from the command.
func (c CreatePlanCommand) CourierPricings() []CourierPricingInput {
	return c.courierPricings
}

func (c *CreatePlanCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.planID = id
	return nil
}

func (c *CreatePlanCommand) setName(name string) error {
	if name == "" {
		return ErrPlanNameIsRequired
	}

	c.name = name
	return nil
}
