package commands

import (
	"errors"

	"launderly/internal/pkg/guard"
)

var ErrScheduleDeliveriesCommandIsNotConstructed = errors.New(
	"ScheduleDeliveriesCommand must be created via NewScheduleDeliveriesCommand constructor",
)

// ScheduleDeliveriesCommand triggers delivery scheduling for completed
// orders that have no delivery errand yet. Run periodically by the delivery
// scheduling job.
//
// Example:
//
//	cmd := NewScheduleDeliveriesCommand()
//	handler := NewScheduleDeliveriesCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoCompletedOrdersFound) {
//	    // nothing to schedule this round
//	}
type ScheduleDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewScheduleDeliveriesCommand creates a new command to trigger delivery scheduling.
// This is a parameterless command that sweeps all eligible orders.
func NewScheduleDeliveriesCommand() ScheduleDeliveriesCommand {
	return ScheduleDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ScheduleDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrScheduleDeliveriesCommandIsNotConstructed,
	)
}
