package bookings

import "github.com/KoIa247/SeatingApp/internal/seatmap"

// SectionOccupancy reports how full one seat domain is.
type SectionOccupancy struct {
	Label    string           `json:"label"`
	SeatType seatmap.SeatType `json:"seat_type"`
	Side     string           `json:"side"`
	Section  int              `json:"section,omitempty"`
	Occupied int              `json:"occupied"`
	Capacity int              `json:"capacity"`
}

// OccupancyResponse is the per-instance occupancy summary shown above
// the seat grid.
type OccupancyResponse struct {
	EventDate     string             `json:"event_date"`
	EventTime     string             `json:"event_time"`
	TotalOccupied int                `json:"total_occupied"`
	TotalCapacity int                `json:"total_capacity"`
	Sections      []SectionOccupancy `json:"sections"`
}

// SeatRoleResponse is one entry of the role legend.
type SeatRoleResponse struct {
	Role  string `json:"role"`
	Color string `json:"color"`
}
