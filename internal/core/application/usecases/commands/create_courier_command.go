package commands

import (
	"errors"
	"time"

	"rates/internal/core/domain/model/courier"
	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired       = errors.New("name is required")
	ErrPickupTimeIsInvalid  = errors.New("pickup time must not be negative")
	ErrServiceTypeIsInvalid = errors.New("service type is invalid")
)

// CreateCourierCommand represents a request to register a new courier service
// on the platform. Encapsulates the service attributes the quote aggregator
// filters and ranks on.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("BlueDart Express",
//	    courier.ServiceTypeExpress, false, 4*time.Hour)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	name         string
	serviceType  courier.ServiceType
	isReturnOnly bool
	pickupTime   time.Duration

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
// Validates that name is not empty, the service type is known and the pickup
// time is not negative.
func NewCreateCourierCommand(
	name string,
	serviceType courier.ServiceType,
	isReturnOnly bool,
	pickupTime time.Duration,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		isReturnOnly: isReturnOnly,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setServiceType(serviceType),
		command.setPickupTime(pickupTime),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID from the command.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name from the command.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// ServiceType returns the courier service type from the command.
func (c CreateCourierCommand) ServiceType() courier.ServiceType {
	return c.serviceType
}

// IsReturnOnly returns whether the courier serves reverse shipments only.
func (c CreateCourierCommand) IsReturnOnly() bool {
	return c.isReturnOnly
}

// PickupTime returns the typical pickup time from the command.
func (c CreateCourierCommand) PickupTime() time.Duration {
	return c.pickupTime
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setServiceType(serviceType courier.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return ErrServiceTypeIsInvalid
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateCourierCommand) setPickupTime(pickupTime time.Duration) error {
	if pickupTime < 0 {
		return ErrPickupTimeIsInvalid
	}

	c.pickupTime = pickupTime
	return nil
}
