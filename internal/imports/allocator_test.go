package imports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KoIa247/SeatingApp/internal/seatmap"
)

func gaInfo() ProductInfo {
	return ProductInfo{
		Date: "2024-02-14",
		Time: "3:00 PM",
		Type: seatmap.TypeGeneral,
		Side: seatmap.SideGeneral,
	}
}

func rowInfo(side string, section int) ProductInfo {
	t := seatmap.TypeLeftRow
	if side == seatmap.SideRight {
		t = seatmap.TypeRightRow
	}
	return ProductInfo{
		Date:    "2024-02-14",
		Time:    "1:00 PM",
		Type:    t,
		Side:    side,
		Section: section,
	}
}

func TestAllocateTakesLowestSeatsFirst(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 2, Info: gaInfo(), OrderID: "1001"},
	}, nil)

	require.Len(t, res.Assignments, 2)
	assert.Equal(t, "GA-1-1", res.Assignments[0].SeatNumber)
	assert.Equal(t, "GA-1-2", res.Assignments[1].SeatNumber)
	assert.Equal(t, 1, res.Added)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Failed)
}

func TestAllocateSkipsOccupiedSeats(t *testing.T) {
	existing := []ExistingBooking{
		{SeatNumber: "GA-1-1", OrderID: "999"},
		{SeatNumber: "GA-1-3", OrderID: "998"},
	}

	res := Allocate([]Request{
		{Customer: "Ana", Qty: 3, Info: gaInfo(), OrderID: "1001"},
	}, existing)

	require.Len(t, res.Assignments, 3)
	assert.Equal(t, "GA-1-2", res.Assignments[0].SeatNumber)
	assert.Equal(t, "GA-1-4", res.Assignments[1].SeatNumber)
	assert.Equal(t, "GA-1-5", res.Assignments[2].SeatNumber)
}

func TestAllocateDeduplicatesPersistedOrders(t *testing.T) {
	existing := []ExistingBooking{
		{SeatNumber: "GA-1-1", OrderID: "1001"},
	}

	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: gaInfo(), OrderID: "1001"},
		{Customer: "Ben", Qty: 1, Info: gaInfo(), OrderID: "1002"},
	}, existing)

	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "Ben", res.Assignments[0].CustomerName)
}

func TestAllocateDeduplicatesWithinBatch(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: gaInfo(), OrderID: "A1"},
		{Customer: "Ana", Qty: 1, Info: gaInfo(), OrderID: "A1"},
	}, nil)

	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Assignments, 1)
}

func TestAllocateTrimsOrderIDs(t *testing.T) {
	existing := []ExistingBooking{
		{SeatNumber: "GA-1-1", OrderID: " 1001 "},
	}

	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: gaInfo(), OrderID: "1001"},
	}, existing)

	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Assignments)
}

func TestAllocateEmptyOrderIDNeverDeduplicates(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: gaInfo(), OrderID: ""},
		{Customer: "Ben", Qty: 1, Info: gaInfo(), OrderID: "  "},
	}, nil)

	assert.Equal(t, 2, res.Added)
	assert.Zero(t, res.Skipped)
}

func TestAllocatePartialFillCountsAsFailed(t *testing.T) {
	// Section 5 has 15 seats; occupy 14 and ask for 3.
	existing := make([]ExistingBooking, 0, 14)
	for i := 1; i <= 14; i++ {
		existing = append(existing, ExistingBooking{
			SeatNumber: fmt.Sprintf("R-5-%d", i),
			OrderID:    fmt.Sprintf("pre-%d", i),
		})
	}

	res := Allocate([]Request{
		{Customer: "Ana", Qty: 3, Info: rowInfo(seatmap.SideRight, 5), OrderID: "2001"},
	}, existing)

	// The one remaining seat is still emitted even though the request failed.
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "R-5-15", res.Assignments[0].SeatNumber)
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.Added)
}

func TestAllocatePartialSeatsBlockLaterRequests(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 20, Info: rowInfo(seatmap.SideRight, 5), OrderID: "1"},
		{Customer: "Ben", Qty: 1, Info: rowInfo(seatmap.SideRight, 5), OrderID: "2"},
	}, nil)

	// Ana drained all 15 seats and still failed; Ben finds nothing.
	assert.Equal(t, 2, res.Failed)
	assert.Zero(t, res.Added)
	assert.Len(t, res.Assignments, 15)
}

func TestAllocateUnknownSectionFailsSilently(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: rowInfo(seatmap.SideLeft, 0), OrderID: "3001"},
	}, nil)

	assert.Empty(t, res.Assignments)
	assert.Equal(t, 1, res.Failed)
}

func TestAllocateInputOrderWinsScarceSeats(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "First", Qty: 1, Info: gaInfo(), OrderID: "1"},
		{Customer: "Second", Qty: 1, Info: gaInfo(), OrderID: "2"},
	}, nil)

	require.Len(t, res.Assignments, 2)
	assert.Equal(t, "First", res.Assignments[0].CustomerName)
	assert.Equal(t, "GA-1-1", res.Assignments[0].SeatNumber)
	assert.Equal(t, "Second", res.Assignments[1].CustomerName)
	assert.Equal(t, "GA-1-2", res.Assignments[1].SeatNumber)
}

func TestAllocateAssignsRolesByType(t *testing.T) {
	vip := ProductInfo{Date: "2024-02-14", Time: "1:00 PM", Type: seatmap.TypeVIP, Side: seatmap.SideVIPLeft}

	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: vip, OrderID: "1"},
		{Customer: "Ben", Qty: 1, Info: rowInfo(seatmap.SideLeft, 1), OrderID: "2"},
		{Customer: "Cara", Qty: 1, Info: gaInfo(), OrderID: "3"},
	}, nil)

	require.Len(t, res.Assignments, 3)
	assert.Equal(t, "VIP TABLE", res.Assignments[0].Role)
	assert.Equal(t, seatmap.DefaultRole, res.Assignments[1].Role)
	assert.Equal(t, "GA Tickets Sales", res.Assignments[2].Role)
}

func TestAllocateRowAssignmentCoordinates(t *testing.T) {
	res := Allocate([]Request{
		{Customer: "Ana", Qty: 1, Info: rowInfo(seatmap.SideLeft, 3), OrderID: "1"},
	}, nil)

	require.Len(t, res.Assignments, 1)
	a := res.Assignments[0]
	assert.Equal(t, "L-3-1", a.SeatNumber)
	// Row bookings persist position-within-section as Row and the
	// section number as Col.
	assert.Equal(t, 1, a.Row)
	assert.Equal(t, 3, a.Col)
}

func TestResultSummary(t *testing.T) {
	r := Result{Added: 3, Skipped: 2, Failed: 1}
	assert.Equal(t, "Added: 3, Skipped: 2, Failed/Full: 1", r.Summary())
}

func TestResultMerge(t *testing.T) {
	a := Result{Added: 1, Assignments: []Assignment{{SeatNumber: "GA-1-1"}}}
	b := Result{Skipped: 2, Failed: 1, Assignments: []Assignment{{SeatNumber: "GA-1-2"}}}

	a.Merge(b)

	assert.Equal(t, 1, a.Added)
	assert.Equal(t, 2, a.Skipped)
	assert.Equal(t, 1, a.Failed)
	assert.Len(t, a.Assignments, 2)
}
