package commands

import (
	"context"

	"rates/internal/core/domain/model/shipment"
	"rates/internal/core/domain/services"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// submission. Quotes the request against the default pricing plan and the
// active couriers, books the top-ranked quote when one exists, and persists
// the shipment atomically.
//
// A lane no courier serves is not a failure: the shipment is stored in
// Created status and the booking job retries it once coverage changes.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, directory, calculator)
//	cmd, _ := NewCreateShipmentCommand(request)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment submission failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	directory  services.PincodeDirectory
	calculator services.RateCalculator
}

// NewCreateShipmentCommandHandler creates a handler for shipment submission.
// Requires a UoWFactory spanning shipments, plans and couriers plus the
// pincode directory feeding the rate calculator.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	directory services.PincodeDirectory,
	calculator services.RateCalculator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		calculator: calculator,
	}
}

// Handle processes the shipment submission command.
//
// Workflow:
//  1. create the shipment aggregate in Created status
//  2. quote the request against the default plan and active couriers
//  3. book the cheapest quote when the lane is served
//  4. persist the shipment within the transaction
//
// An unresolvable pincode aborts the command - a shipment with an unknown
// endpoint can never be quoted, so storing it would only poison the backlog.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Request())
	if err != nil {
		return err
	}

	plan, err := uow.PlanRepository().GetDefault(ctx)
	if err != nil {
		return err
	}

	couriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	quotes, err := h.calculator.Calculate(ctx, h.directory, cmd.Request(), plan, couriers)
	if err != nil {
		return err
	}

	if len(quotes) > 0 {
		if err = aggregate.Book(quotes[0]); err != nil {
			return err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
