package commands

import (
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var (
	ErrCreatePickupCommandIsNotConstructed = errors.New(
		"CreatePickupCommand must be created via NewCreatePickupCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreatePickupCommand represents a request to register a new pickup errand.
// The errand starts in the waiting-for-driver status and is advanced through
// its lifecycle by the assigned driver.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	addr, _ := kernel.NewAddress("123 Main Street", 4.2)
//	cmd, err := NewCreatePickupCommand(requestID, "Jane Customer", addr)
//	if err != nil {
//	    return fmt.Errorf("invalid pickup data: %w", err)
//	}
//
//	handler := NewCreatePickupCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create pickup: %w", err)
//	}
type CreatePickupCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	customerName string
	address      kernel.Address

	guard guard.ConstructorGuard
}

// NewCreatePickupCommand creates a command to register a new pickup errand.
// Validates that the request ID, customer name, and address are well-formed.
func NewCreatePickupCommand(
	requestID kernel.UUID,
	customerName string,
	address kernel.Address,
) (CreatePickupCommand, error) {
	pickupCommand := CreatePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setRequestID(requestID),
		pickupCommand.setCustomerName(customerName),
		pickupCommand.setAddress(address),
	); err != nil {
		return CreatePickupCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the pickup errand.
func (c CreatePickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CustomerName returns the name of the customer whose laundry is collected.
func (c CreatePickupCommand) CustomerName() string {
	return c.customerName
}

// Address returns the pickup address.
func (c CreatePickupCommand) Address() kernel.Address {
	return c.address
}

func (c *CreatePickupCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreatePickupCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreatePickupCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
