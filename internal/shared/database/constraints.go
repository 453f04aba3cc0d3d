package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints applies the pieces AutoMigrate cannot express. The
// composite unique index on (seat_number, event_date, event_time) is the
// occupancy invariant: two writers racing on the same batch cannot both
// book a seat past it.
func MigrateConstraints(db *gorm.DB) error {
	// uuid_generate_v4() used by primary key defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_seat_instance
		ON bookings (seat_number, event_date, event_time);
	`).Error
	if err != nil {
		return err
	}

	// Speeds up the per-instance snapshot query the importer runs
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_instance
		ON bookings (event_date, event_time);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
