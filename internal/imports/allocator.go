package imports

import (
	"fmt"
	"strings"

	"github.com/KoIa247/SeatingApp/internal/seatmap"
)

// Request is one customer's parsed seating request: a quantity of seats
// in one domain of one show instance.
type Request struct {
	Customer string      `json:"customer"`
	Qty      int         `json:"qty"`
	Info     ProductInfo `json:"info"`
	OrderID  string      `json:"order_id,omitempty"` // external identifier used for deduplication
}

// ExistingBooking is the read-only view of an already-persisted booking
// the allocator needs: which seat it occupies and which order produced it.
type ExistingBooking struct {
	SeatNumber string
	OrderID    string
}

// Assignment is one newly allocated seat, ready to hand to the booking
// store for persistence.
type Assignment struct {
	SeatNumber   string           `json:"seat_number"`
	SeatType     seatmap.SeatType `json:"seat_type"`
	CustomerName string           `json:"customer_name"`
	Role         string           `json:"role"`
	EventDate    string           `json:"event_date"`
	EventTime    string           `json:"event_time"`
	Row          int              `json:"row"`
	Col          int              `json:"col"`
	OrderID      string           `json:"order_id,omitempty"`
}

// Result carries the seats allocated by one run plus per-request
// counters. Added counts fully satisfied requests, Skipped counts
// duplicate orders, Failed counts requests that got fewer seats than
// asked (including zero).
type Result struct {
	Assignments []Assignment `json:"assignments,omitempty"`
	Added       int          `json:"added"`
	Skipped     int          `json:"skipped"`
	Failed      int          `json:"failed"`
}

// Merge folds another result's counters and assignments into this one.
func (r *Result) Merge(other Result) {
	r.Assignments = append(r.Assignments, other.Assignments...)
	r.Added += other.Added
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// Summary renders the counters the way the admin UI reports them.
func (r Result) Summary() string {
	return fmt.Sprintf("Added: %d, Skipped: %d, Failed/Full: %d", r.Added, r.Skipped, r.Failed)
}

// Allocate assigns concrete seats to each request against a snapshot of
// the bookings already persisted for the same show instance. All
// requests must belong to that one instance; the import service
// guarantees this by grouping first.
//
// Requests are processed in input order, which decides who wins scarce
// seats. Within a request, seats are taken in enumeration order (lowest
// row, then lowest column). Capacity exhaustion is a reported outcome,
// never an error: a request that receives fewer seats than it asked for
// counts as Failed, but the seats it did receive are still emitted and
// occupied for the rest of the run.
func Allocate(requests []Request, existing []ExistingBooking) Result {
	occupied := make(map[string]struct{}, len(existing))
	seenOrders := make(map[string]struct{})
	for _, b := range existing {
		occupied[b.SeatNumber] = struct{}{}
		if id := strings.TrimSpace(b.OrderID); id != "" {
			seenOrders[id] = struct{}{}
		}
	}

	var res Result
	for _, req := range requests {
		if id := strings.TrimSpace(req.OrderID); id != "" {
			if _, dup := seenOrders[id]; dup {
				res.Skipped++
				continue
			}
			seenOrders[id] = struct{}{}
		}

		info := req.Info
		allocated := 0
		for _, slot := range seatmap.Enumerate(info.Type, info.Side, info.Section) {
			if allocated >= req.Qty {
				break
			}
			if _, taken := occupied[slot.ID]; taken {
				continue
			}
			occupied[slot.ID] = struct{}{}
			res.Assignments = append(res.Assignments, Assignment{
				SeatNumber:   slot.ID,
				SeatType:     info.Type,
				CustomerName: req.Customer,
				Role:         seatmap.RoleForType(info.Type),
				EventDate:    info.Date,
				EventTime:    info.Time,
				Row:          slot.Row,
				Col:          slot.Col,
				OrderID:      req.OrderID,
			})
			allocated++
		}

		if allocated < req.Qty {
			res.Failed++
		} else {
			res.Added++
		}
	}

	return res
}
