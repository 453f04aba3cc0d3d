package bookings

// AssignSeatRequest upserts one seat from the grid UI.
type AssignSeatRequest struct {
	SeatNumber   string `json:"seat_number" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	SeatType     string `json:"seat_type" binding:"required,oneof=LEFT_ROW RIGHT_ROW GENERAL VIP"`
	EventDate    string `json:"event_date" binding:"required"`
	EventTime    string `json:"event_time"`
	Role         string `json:"role"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	OrderID      string `json:"order_id"`
}

// SeatRef identifies one seat inside a multi-seat assignment.
type SeatRef struct {
	SeatNumber string `json:"seat_number" binding:"required"`
	SeatType   string `json:"seat_type" binding:"required,oneof=LEFT_ROW RIGHT_ROW GENERAL VIP"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

// AssignSeatsRequest books a block of seats for a single customer, e.g.
// a selected VIP table.
type AssignSeatsRequest struct {
	CustomerName string    `json:"customer_name" binding:"required"`
	Role         string    `json:"role"`
	EventDate    string    `json:"event_date" binding:"required"`
	EventTime    string    `json:"event_time"`
	Seats        []SeatRef `json:"seats" binding:"required,min=1,dive"`
}
