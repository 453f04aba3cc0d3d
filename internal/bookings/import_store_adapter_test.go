package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KoIa247/SeatingApp/internal/imports"
	"github.com/KoIa247/SeatingApp/internal/seatmap"
	"github.com/KoIa247/SeatingApp/internal/shared/constants"
)

func TestImportStoreAdapterRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	adapter := NewImportStoreAdapter(svc)

	err := adapter.BulkUpsert(context.Background(), []imports.Assignment{
		{
			SeatNumber:   "L-1-1",
			EventDate:    "2024-02-14",
			EventTime:    "1:00 PM",
			SeatType:     seatmap.TypeLeftRow,
			CustomerName: "Ana",
			Role:         seatmap.DefaultRole,
			OrderID:      "ORD-200",
			Row:          1,
			Col:          1,
		},
	})
	require.NoError(t, err)

	existing, err := adapter.FindByInstance(context.Background(), "2024-02-14", "1:00 PM")
	require.NoError(t, err)
	require.Len(t, existing, 1)
	assert.Equal(t, "L-1-1", existing[0].SeatNumber)
	assert.Equal(t, "ORD-200", existing[0].OrderID)
}

// A re-run of the same spreadsheet must dedup against the order ids the
// previous run persisted, even when a cache write from the first run's
// read lands after the post-persist invalidation and leaves a stale
// snapshot behind.
func TestImportStoreAdapterSeesOwnWritesPastStaleCache(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	cacheSvc := newFakeCache()
	svc.SetCacheService(cacheSvc)
	adapter := NewImportStoreAdapter(svc)

	err := adapter.BulkUpsert(context.Background(), []imports.Assignment{
		{
			SeatNumber:   "GA-1-1",
			EventDate:    "2024-02-14",
			EventTime:    "1:00 PM",
			SeatType:     seatmap.TypeGeneral,
			CustomerName: "Ravi",
			Role:         "GA Tickets Sales",
			OrderID:      "ORD-300",
		},
	})
	require.NoError(t, err)

	key := constants.BuildBookingsInstanceKey("2024-02-14", "1:00 PM")
	require.NoError(t, cacheSvc.Set(context.Background(), key, []Booking{}, time.Minute))

	existing, err := adapter.FindByInstance(context.Background(), "2024-02-14", "1:00 PM")
	require.NoError(t, err)

	orderIDs := make([]string, 0, len(existing))
	for _, b := range existing {
		orderIDs = append(orderIDs, b.OrderID)
	}
	assert.Contains(t, orderIDs, "ORD-300")
}
