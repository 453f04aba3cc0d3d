package bookings

import (
	"time"

	"github.com/KoIa247/SeatingApp/internal/seatmap"

	"github.com/google/uuid"
)

// Booking is one occupied seat in one show instance. The composite
// unique index on (seat_number, event_date, event_time) is the occupancy
// key: it makes upserts idempotent and is the database's last line of
// defense against concurrent double-allocation.
type Booking struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeatNumber   string           `gorm:"not null;uniqueIndex:idx_seat_instance" json:"seat_number"`
	EventDate    string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_seat_instance;index:idx_instance" json:"event_date"`
	EventTime    string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_seat_instance;index:idx_instance" json:"event_time"`
	SeatType     seatmap.SeatType `gorm:"type:varchar(20);check:seat_type IN ('LEFT_ROW', 'RIGHT_ROW', 'GENERAL', 'VIP');not null" json:"seat_type"`
	CustomerName string           `gorm:"not null" json:"customer_name"`
	Role         string           `gorm:"not null" json:"role"`
	OrderID      string           `gorm:"index" json:"order_id,omitempty"`
	Row          int              `json:"row"`
	Col          int              `json:"col"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// Instance is one (eventDate, eventTime) show the venue runs.
type Instance struct {
	EventDate string `json:"event_date"`
	EventTime string `json:"event_time"`
}

// Key returns the instance grouping key used across the system.
func (i Instance) Key() string {
	return i.EventDate + "|" + i.EventTime
}
