package bookings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Point query and instance listing
	FindByInstance(ctx context.Context, eventDate, eventTime string) ([]Booking, error)
	ListInstances(ctx context.Context) ([]Instance, error)

	// Upserts keyed by (seat_number, event_date, event_time). On conflict
	// every assignment field is overwritten; created_at is left untouched.
	Upsert(ctx context.Context, booking *Booking) error
	BulkUpsert(ctx context.Context, bookings []Booking) error

	// Deletion
	Delete(ctx context.Context, seatNumber, eventDate, eventTime string) error
	DeleteAllForInstance(ctx context.Context, eventDate, eventTime string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// conflictTarget is the composite occupancy key.
var conflictTarget = []clause.Column{
	{Name: "seat_number"},
	{Name: "event_date"},
	{Name: "event_time"},
}

// assignmentColumns are the fields an upsert overwrites on conflict.
var assignmentColumns = []string{
	"seat_type", "customer_name", "role", "order_id", "row", "col", "updated_at",
}

func (r *repository) FindByInstance(ctx context.Context, eventDate, eventTime string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("event_date = ? AND event_time = ?", eventDate, eventTime).
		Order("seat_number ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) ListInstances(ctx context.Context) ([]Instance, error) {
	var instances []Instance
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Distinct("event_date", "event_time").
		Order("event_date ASC, event_time ASC").
		Find(&instances).Error
	return instances, err
}

func (r *repository) Upsert(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   conflictTarget,
			DoUpdates: clause.AssignmentColumns(assignmentColumns),
		}).
		Create(booking).Error
}

func (r *repository) BulkUpsert(ctx context.Context, bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   conflictTarget,
			DoUpdates: clause.AssignmentColumns(assignmentColumns),
		}).
		Create(&bookings).Error
}

func (r *repository) Delete(ctx context.Context, seatNumber, eventDate, eventTime string) error {
	return r.db.WithContext(ctx).
		Where("seat_number = ? AND event_date = ? AND event_time = ?", seatNumber, eventDate, eventTime).
		Delete(&Booking{}).Error
}

func (r *repository) DeleteAllForInstance(ctx context.Context, eventDate, eventTime string) error {
	return r.db.WithContext(ctx).
		Where("event_date = ? AND event_time = ?", eventDate, eventTime).
		Delete(&Booking{}).Error
}
