package commands

import (
	"context"
	"errors"

	"rates/internal/core/domain/services"
	"rates/internal/pkg/errs"
)

// BookPendingShipmentsCommandHandler orchestrates the booking sweep over
// pending shipments. Each Created shipment is re-quoted against the current
// default plan and the active couriers; served lanes get their cheapest
// quote booked, unserved lanes stay pending for the next sweep.
//
// Example:
//
//	handler := NewBookPendingShipmentsCommandHandler(uowFactory, directory, calculator)
//	cmd := NewBookPendingShipmentsCommand()
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking sweep failed: %w", err)
//	}
type BookPendingShipmentsCommandHandler struct {
	uowFactory UoWFactory
	directory  services.PincodeDirectory
	calculator services.RateCalculator
}

// NewBookPendingShipmentsCommandHandler creates a handler for the booking sweep.
// Requires a UoWFactory spanning shipments, plans and couriers plus the
// pincode directory feeding the rate calculator.
func NewBookPendingShipmentsCommandHandler(
	uowFactory UoWFactory,
	directory services.PincodeDirectory,
	calculator services.RateCalculator,
) BookPendingShipmentsCommandHandler {
	return BookPendingShipmentsCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		calculator: calculator,
	}
}

// Handle processes the booking sweep command.
// Retrieves all shipments in Created status, quotes each one and books the
// top-ranked quote where available. All bookings of one sweep commit in a
// single transaction.
//
// A shipment whose pincode has vanished from the directory is left pending
// rather than failing the sweep - directory data may lag behind submissions.
func (h *BookPendingShipmentsCommandHandler) Handle(ctx context.Context, cmd BookPendingShipmentsCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	pending, err := shipmentRepo.GetAllInCreatedStatus(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return uow.Rollback(ctx)
	}

	plan, err := uow.PlanRepository().GetDefault(ctx)
	if err != nil {
		return err
	}

	couriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		quotes, calcErr := h.calculator.Calculate(ctx, h.directory, aggregate.Request(), plan, couriers)
		if calcErr != nil {
			if errors.Is(calcErr, errs.ErrObjectNotFound) {
				continue
			}
			return calcErr
		}

		if len(quotes) == 0 {
			continue
		}

		if err = aggregate.Book(quotes[0]); err != nil {
			return err
		}

		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
