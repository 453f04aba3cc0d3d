package seatmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateRowSections(t *testing.T) {
	wantRows := map[int]int{1: 30, 2: 30, 3: 25, 4: 20, 5: 15}

	for section, rows := range wantRows {
		slots := Enumerate(TypeLeftRow, SideLeft, section)
		require.Len(t, slots, rows, "section %d", section)

		// Seats come out front to back within the section.
		assert.Equal(t, fmt.Sprintf("L-%d-1", section), slots[0].ID)
		assert.Equal(t, 1, slots[0].Row)
		assert.Equal(t, section, slots[0].Col)
		assert.Equal(t, rows, slots[len(slots)-1].Row)
	}
}

func TestEnumerateRightSideUsesRightPrefix(t *testing.T) {
	slots := Enumerate(TypeRightRow, SideRight, 5)
	require.Len(t, slots, 15)
	assert.Equal(t, "R-5-1", slots[0].ID)
	assert.Equal(t, "R-5-15", slots[14].ID)
}

func TestEnumerateUnknownSectionIsEmpty(t *testing.T) {
	assert.Empty(t, Enumerate(TypeLeftRow, SideLeft, 0))
	assert.Empty(t, Enumerate(TypeRightRow, SideRight, 6))
	assert.Empty(t, Enumerate(TypeLeftRow, SideLeft, -1))
}

func TestEnumerateVIP(t *testing.T) {
	slots := Enumerate(TypeVIP, SideVIPLeft, 0)
	require.Len(t, slots, 60)

	assert.Equal(t, "VL-1-1", slots[0].ID)
	assert.Equal(t, "VL-1-2", slots[1].ID)
	assert.Equal(t, "VL-2-1", slots[2].ID)
	assert.Equal(t, "VL-30-2", slots[59].ID)

	right := Enumerate(TypeVIP, SideVIPRight, 0)
	require.Len(t, right, 60)
	assert.Equal(t, "VR-1-1", right[0].ID)
}

func TestEnumerateGeneral(t *testing.T) {
	slots := Enumerate(TypeGeneral, SideGeneral, 0)
	require.Len(t, slots, 100)

	assert.Equal(t, "GA-1-1", slots[0].ID)
	assert.Equal(t, "GA-1-5", slots[4].ID)
	assert.Equal(t, "GA-2-1", slots[5].ID)
	assert.Equal(t, "GA-20-5", slots[99].ID)
}

func TestEnumerateIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})

	add := func(slots []Slot) {
		for _, s := range slots {
			_, dup := seen[s.ID]
			require.False(t, dup, "duplicate seat id %s", s.ID)
			seen[s.ID] = struct{}{}
		}
	}

	for section := 1; section <= RowSections; section++ {
		add(Enumerate(TypeLeftRow, SideLeft, section))
		add(Enumerate(TypeRightRow, SideRight, section))
	}
	add(Enumerate(TypeVIP, SideVIPLeft, 0))
	add(Enumerate(TypeVIP, SideVIPRight, 0))
	add(Enumerate(TypeGeneral, SideGeneral, 0))

	// 120 per row side, 60 per VIP side, 100 GA.
	assert.Len(t, seen, 120+120+60+60+100)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 100, Capacity(TypeGeneral, 0))
	assert.Equal(t, 60, Capacity(TypeVIP, 0))
	assert.Equal(t, 30, Capacity(TypeLeftRow, 1))
	assert.Equal(t, 15, Capacity(TypeRightRow, 5))
	assert.Equal(t, 0, Capacity(TypeLeftRow, 9))
}

func TestSideCapacity(t *testing.T) {
	assert.Equal(t, 120, SideCapacity(TypeLeftRow))
	assert.Equal(t, 120, SideCapacity(TypeRightRow))
	assert.Equal(t, 60, SideCapacity(TypeVIP))
	assert.Equal(t, 100, SideCapacity(TypeGeneral))
}

func TestSeatTypeValidity(t *testing.T) {
	assert.True(t, TypeLeftRow.IsValid())
	assert.True(t, TypeVIP.IsValid())
	assert.False(t, SeatType("BALCONY").IsValid())

	assert.True(t, TypeLeftRow.IsRow())
	assert.True(t, TypeRightRow.IsRow())
	assert.False(t, TypeVIP.IsRow())
	assert.False(t, TypeGeneral.IsRow())
}

func TestRoleForType(t *testing.T) {
	assert.Equal(t, "GA Tickets Sales", RoleForType(TypeGeneral))
	assert.Equal(t, "VIP TABLE", RoleForType(TypeVIP))
	assert.Equal(t, DefaultRole, RoleForType(TypeLeftRow))
	assert.Equal(t, DefaultRole, RoleForType(TypeRightRow))
}

func TestRoleColorsCoverDefaultRoles(t *testing.T) {
	assert.True(t, IsValidRole(DefaultRole))
	assert.True(t, IsValidRole("VIP TABLE"))
	assert.True(t, IsValidRole("GA Tickets Sales"))
	assert.False(t, IsValidRole("Stagehand"))
}
