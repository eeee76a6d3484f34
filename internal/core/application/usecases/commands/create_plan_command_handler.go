package commands

import (
	"context"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/pricing"
)

// CreatePlanCommandHandler handles the business logic for pricing plan
// creation. Builds the complete plan aggregate from the raw inputs - every
// courier entry with its zone price rows - and persists it in one
// transaction, so readers never observe a partially configured plan.
//
// Example:
//
//	handler := NewCreatePlanCommandHandler(uowFactory)
//	cmd, _ := NewCreatePlanCommand("Default", true, entries)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("plan creation failed: %w", err)
//	}
type CreatePlanCommandHandler struct {
	uowFactory PlanUoWFactory
}

// NewCreatePlanCommandHandler creates a handler for plan creation.
// Requires a PlanUoWFactory for transactional persistence operations.
func NewCreatePlanCommandHandler(uowFactory PlanUoWFactory) CreatePlanCommandHandler {
	return CreatePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan creation command.
// Domain construction performs the numeric validation: non-positive increment
// weights, negative monetary fields, duplicate couriers or duplicate zone
// rows all reject the command before anything is written.
func (h *CreatePlanCommandHandler) Handle(ctx context.Context, cmd CreatePlanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	plan, err := h.buildPlan(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PlanRepository().Add(ctx, plan); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildPlan assembles the plan aggregate from the command's raw inputs.
func (h *CreatePlanCommandHandler) buildPlan(cmd CreatePlanCommand) (*pricing.PricingPlan, error) {
	plan, err := pricing.NewPricingPlan(cmd.PlanID(), cmd.Name(), cmd.IsDefault())
	if err != nil {
		return nil, err
	}

	for _, input := range cmd.CourierPricings() {
		courierID, idErr := kernel.UUIDFromString(input.CourierID)
		if idErr != nil {
			return nil, idErr
		}

		entry, cpErr := pricing.NewCourierPricing(
			courierID,
			input.WeightSlab,
			input.IncrementWeight,
			input.IncrementPrice,
			input.CODChargeFixed,
			input.CODChargePercent,
			input.IsForwardApplicable,
			input.IsRTOApplicable,
			input.IsCODApplicable,
			input.IsCODReversalApplicable,
		)
		if cpErr != nil {
			return nil, cpErr
		}

		for _, zoneInput := range input.ZonePricings {
			zone, zoneErr := kernel.ZoneFromString(zoneInput.Zone)
			if zoneErr != nil {
				return nil, zoneErr
			}

			row, zpErr := pricing.NewZonePricing(
				zone,
				zoneInput.BasePrice,
				zoneInput.IncrementPrice,
				zoneInput.IsRTOSameAsForward,
				zoneInput.RTOBasePrice,
				zoneInput.RTOIncrementPrice,
				zoneInput.FlatRTOCharge,
			)
			if zpErr != nil {
				return nil, zpErr
			}

			if err = entry.AddZonePricing(row); err != nil {
				return nil, err
			}
		}

		if err = plan.AddCourierPricing(entry); err != nil {
			return nil, err
		}
	}

	return plan, nil
}
