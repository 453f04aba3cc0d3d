package constants

import "time"

// Redis key layout for the seating app.
// Pattern: seatingapp:{module}:{operation}:{identifier}

const CachePrefix = "seatingapp"

const (
	// Bookings for one show instance (date + time slot). Invalidated on
	// every assignment, removal, and import, so the TTL is only a backstop.
	CacheKeyBookingsInstance = CachePrefix + ":bookings:instance:"

	// Distinct show instances present in the bookings table.
	CacheKeyInstanceList = CachePrefix + ":bookings:instances"
)

const (
	TTLBookings     = 5 * time.Minute
	TTLInstanceList = 15 * time.Minute
)

// BuildBookingsInstanceKey keys a cached seat list by its show instance.
func BuildBookingsInstanceKey(eventDate, eventTime string) string {
	return CacheKeyBookingsInstance + eventDate + "|" + eventTime
}
