package seatmap

import "fmt"

// SeatType identifies one of the four seating domains of the venue.
type SeatType string

const (
	TypeLeftRow  SeatType = "LEFT_ROW"
	TypeRightRow SeatType = "RIGHT_ROW"
	TypeGeneral  SeatType = "GENERAL"
	TypeVIP      SeatType = "VIP"
)

// IsValid checks if the seat type is one of the known domains
func (t SeatType) IsValid() bool {
	switch t {
	case TypeLeftRow, TypeRightRow, TypeGeneral, TypeVIP:
		return true
	}
	return false
}

// String returns the string representation of SeatType
func (t SeatType) String() string {
	return string(t)
}

// IsRow checks if the seat type is a tiered row section
func (t SeatType) IsRow() bool {
	return t == TypeLeftRow || t == TypeRightRow
}

// Side codes used as seat-identifier prefixes.
const (
	SideLeft     = "L"
	SideRight    = "R"
	SideGeneral  = "GA"
	SideVIPLeft  = "VL"
	SideVIPRight = "VR"
)

// Venue geometry. The event runs in one fixed, irregular room, so the
// layout is a static table rather than venue CRUD.
const (
	RowSections = 5 // tiered sections per side, numbered 1..5

	VIPRows = 30
	VIPCols = 2

	GeneralRows = 20
	GeneralCols = 5
)

// SectionRows maps a row-section number to its seat count (rows within
// the section). Sections shrink toward the back of the room.
var SectionRows = map[int]int{
	1: 30,
	2: 30,
	3: 25,
	4: 20,
	5: 15,
}

// Slot is one enumerable physical seat. ID has the form "{side}-{a}-{b}"
// and is the sole occupancy key within a show instance. Row and Col hold
// the values persisted on a booking: for VIP and general admission they
// are the grid coordinates; for row sections Row is the seat's position
// within the section and Col is the section number.
type Slot struct {
	ID  string
	Row int
	Col int
}

// Enumerate returns every seat of the given domain in row-major order:
// lowest row first, then lowest column. Allocation walks this sequence
// front to back, so the order doubles as the tie-break rule for scarce
// seats. The result is a pure function of the inputs.
//
// A row-section request whose section is not 1..5 enumerates nothing;
// callers treat the empty domain as an unfulfillable request.
func Enumerate(seatType SeatType, side string, section int) []Slot {
	switch seatType {
	case TypeGeneral:
		return enumerateGrid(SideGeneral, GeneralRows, GeneralCols)
	case TypeVIP:
		return enumerateGrid(side, VIPRows, VIPCols)
	case TypeLeftRow, TypeRightRow:
		rows, ok := SectionRows[section]
		if !ok {
			return nil
		}
		slots := make([]Slot, 0, rows)
		for r := 1; r <= rows; r++ {
			slots = append(slots, Slot{
				ID:  fmt.Sprintf("%s-%d-%d", side, section, r),
				Row: r,
				Col: section,
			})
		}
		return slots
	default:
		return nil
	}
}

func enumerateGrid(side string, rows, cols int) []Slot {
	slots := make([]Slot, 0, rows*cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			slots = append(slots, Slot{
				ID:  fmt.Sprintf("%s-%d-%d", side, r, c),
				Row: r,
				Col: c,
			})
		}
	}
	return slots
}

// Capacity returns the number of seats in the given domain. Unknown
// sections have capacity zero, matching Enumerate.
func Capacity(seatType SeatType, section int) int {
	switch seatType {
	case TypeGeneral:
		return GeneralRows * GeneralCols
	case TypeVIP:
		return VIPRows * VIPCols
	case TypeLeftRow, TypeRightRow:
		return SectionRows[section]
	default:
		return 0
	}
}

// SideCapacity returns the total seat count for one side-wide domain:
// 120 per row side, 60 per VIP side, 100 for general admission.
func SideCapacity(seatType SeatType) int {
	switch seatType {
	case TypeGeneral:
		return GeneralRows * GeneralCols
	case TypeVIP:
		return VIPRows * VIPCols
	case TypeLeftRow, TypeRightRow:
		total := 0
		for _, rows := range SectionRows {
			total += rows
		}
		return total
	default:
		return 0
	}
}
