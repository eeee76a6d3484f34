package commands

import (
	"errors"

	"rates/internal/pkg/guard"
)

var (
	ErrBookPendingShipmentsCommandIsNotConstructed = errors.New(
		"BookPendingShipmentsCommand must be created via NewBookPendingShipmentsCommand constructor",
	)
)

// BookPendingShipmentsCommand triggers re-quoting of every shipment still in
// Created status. This batch operation drains the backlog left behind when a
// lane had no serving courier at submission time.
//
// Example:
//
//	cmd := NewBookPendingShipmentsCommand()
//	handler := NewBookPendingShipmentsCommandHandler(uowFactory, directory, calculator)
//
//	// Run periodically to retry unserved lanes
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Booking sweep failed: %v", err)
//	}
type BookPendingShipmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewBookPendingShipmentsCommand creates a command to trigger the booking sweep.
// This is a parameterless command that processes all pending shipments.
func NewBookPendingShipmentsCommand() BookPendingShipmentsCommand {
	command := BookPendingShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookPendingShipmentsCommandIsNotConstructed if validation fails.
func (c *BookPendingShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrBookPendingShipmentsCommandIsNotConstructed)
}
