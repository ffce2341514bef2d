package contracts

import (
	"context"

	"slotly-service/internal/app/models"
)

// BookingQueueService fans booking events out to downstream consumers
// (notification senders, sync jobs) without blocking the booking path.
type BookingQueueService interface {
	PublishBookingCreated(ctx context.Context, appointment *models.Appointment) error
}
