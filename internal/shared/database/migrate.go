package database

import (
	"github.com/KoIa247/SeatingApp/internal/bookings"
	"github.com/KoIa247/SeatingApp/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&bookings.Booking{},
	)
}
