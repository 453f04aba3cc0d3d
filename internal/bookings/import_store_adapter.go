package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/KoIa247/SeatingApp/internal/imports"
)

// ImportStoreAdapter implements the import reconciler's BookingStore
// interface on top of the booking service. The adapter keeps the import
// engine free of any persistence dependency and prevents import cycles.
type ImportStoreAdapter struct {
	service Service
}

// NewImportStoreAdapter creates a new import store adapter
func NewImportStoreAdapter(service Service) *ImportStoreAdapter {
	return &ImportStoreAdapter{
		service: service,
	}
}

// FindByInstance returns the occupancy snapshot the allocator reads
// before assigning seats: occupied seat numbers plus the order ids
// already recorded for the instance. The read deliberately skips the
// cache so a re-run of the same spreadsheet always sees the order ids
// the previous run persisted.
func (a *ImportStoreAdapter) FindByInstance(ctx context.Context, eventDate, eventTime string) ([]imports.ExistingBooking, error) {
	bookings, err := a.service.SnapshotInstance(ctx, eventDate, eventTime)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s %s: %w", eventDate, eventTime, err)
	}

	existing := make([]imports.ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, imports.ExistingBooking{
			SeatNumber: b.SeatNumber,
			OrderID:    b.OrderID,
		})
	}
	return existing, nil
}

// BulkUpsert persists a batch of new seat assignments.
func (a *ImportStoreAdapter) BulkUpsert(ctx context.Context, assignments []imports.Assignment) error {
	now := time.Now().UTC()
	bookings := make([]Booking, 0, len(assignments))
	for _, asg := range assignments {
		bookings = append(bookings, Booking{
			SeatNumber:   asg.SeatNumber,
			EventDate:    asg.EventDate,
			EventTime:    asg.EventTime,
			SeatType:     asg.SeatType,
			CustomerName: asg.CustomerName,
			Role:         asg.Role,
			OrderID:      asg.OrderID,
			Row:          asg.Row,
			Col:          asg.Col,
			UpdatedAt:    now,
		})
	}
	return a.service.PersistAssignments(ctx, bookings)
}
