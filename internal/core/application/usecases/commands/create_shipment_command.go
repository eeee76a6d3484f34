package commands

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/model/rate"
	"rates/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a seller submitting a shipment for
// quoting. It carries a fully validated rate request; measurement and payment
// validation already happened when the request value object was built, so the
// handler can feed it straight into the rate calculator.
//
// Example:
//
//	req, _ := rate.NewRateRequest(pickup, delivery,
//	    0.6, rate.WeightUnitKilogram,
//	    10, 10, 10, rate.SizeUnitCentimeter,
//	    rate.PaymentTypePrepaid, 0, false)
//	cmd, err := NewCreateShipmentCommand(req)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, directory, calculator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Created shipment with ID: %s", cmd.ShipmentID())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	request    rate.RateRequest

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to submit a new shipment.
// Automatically generates a unique ID for the shipment.
func NewCreateShipmentCommand(request rate.RateRequest) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(kernel.NewUUID()),
		command.setRequest(request),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the generated shipment ID from the command.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Request returns the seller's rate request from the command.
func (c CreateShipmentCommand) Request() rate.RateRequest {
	return c.request
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setRequest(request rate.RateRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	c.request = request
	return nil
}
