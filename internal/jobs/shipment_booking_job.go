package jobs

import (
	"context"
	"errors"
	"log/slog"

	"rates/internal/core/application/usecases/commands"
	"rates/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ShipmentBookingJob manages the scheduled booking sweep over pending
// shipments. Runs every ten seconds to quote shipments in Created status and
// book the cheapest available courier.
type ShipmentBookingJob struct {
	handler commands.BookPendingShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentBookingJob creates a new job for the booking sweep.
// Uses BookPendingShipmentsCommandHandler to process the backlog every ten seconds.
func NewShipmentBookingJob(handler commands.BookPendingShipmentsCommandHandler, logger *slog.Logger) *ShipmentBookingJob {
	return &ShipmentBookingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_booking_job"),
	}
}

// Start begins the booking sweep to run every ten seconds.
func (j *ShipmentBookingJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewBookPendingShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A missing default plan is a bootstrap state, not a failure:
			// shipments stay pending until a plan is configured.
			if errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.WarnContext(ctx, "Booking sweep skipped, no default pricing plan configured")
				return
			}

			j.logger.ErrorContext(ctx, "Shipment booking job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment booking job started (running every ten seconds)")
	return nil
}

// Stop stops the shipment booking job.
func (j *ShipmentBookingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment booking job stopped")
}
