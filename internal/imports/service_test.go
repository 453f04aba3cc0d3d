package imports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps bookings in memory, keyed the same way the Postgres
// upsert is: seat number within a show instance.
type fakeStore struct {
	bookings  map[string][]ExistingBooking // instance key -> bookings
	fetchErr  error
	upsertErr error
	upserts   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{bookings: make(map[string][]ExistingBooking)}
}

func (f *fakeStore) FindByInstance(_ context.Context, eventDate, eventTime string) ([]ExistingBooking, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.bookings[eventDate+"|"+eventTime], nil
}

func (f *fakeStore) BulkUpsert(_ context.Context, assignments []Assignment) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	for _, a := range assignments {
		key := a.EventDate + "|" + a.EventTime
		f.bookings[key] = append(f.bookings[key], ExistingBooking{
			SeatNumber: a.SeatNumber,
			OrderID:    a.OrderID,
		})
	}
	return nil
}

type capturingPublisher struct {
	result    Result
	instances []string
	calls     int
	err       error
}

func (p *capturingPublisher) ImportCompleted(_ context.Context, result Result, instances []string) error {
	p.result = result
	p.instances = instances
	p.calls++
	return p.err
}

func newTestService(store BookingStore) Service {
	return NewService(store, NewParser(DefaultCalendar))
}

func row(customer, product, qty, order string) Row {
	return Row{
		"Customer":    customer,
		"Product":     product,
		"Quantity":    qty,
		"OrderNumber": order,
	}
}

func TestImportRowsEndToEnd(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana Silva", "FEBRUARY 14TH 3PM - General Admission", "2", "A1"),
		row("Ana Silva", "FEBRUARY 14TH 3PM - General Admission", "2", "A1"),
	}, fallback)
	require.NoError(t, err)

	// Same order number twice in one file: first wins, second skipped.
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)
	assert.Zero(t, res.Failed)

	require.Len(t, res.Assignments, 2)
	assert.Equal(t, "GA-1-1", res.Assignments[0].SeatNumber)
	assert.Equal(t, "GA-1-2", res.Assignments[1].SeatNumber)
	assert.Equal(t, "2024-02-14", res.Assignments[0].EventDate)
	assert.Equal(t, "3:00 PM", res.Assignments[0].EventTime)
}

func TestImportRowsIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	rows := []Row{
		row("Ana Silva", "FEBRUARY 14TH 3PM - General Admission", "2", "A1"),
		row("Ben Okafor", "FEBRUARY 14TH 1PM - Row 2 Left", "1", "B7"),
	}

	first, err := svc.ImportRows(context.Background(), rows, fallback)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	second, err := svc.ImportRows(context.Background(), rows, fallback)
	require.NoError(t, err)

	assert.Zero(t, second.Added)
	assert.Equal(t, 2, second.Skipped)
	assert.Empty(t, second.Assignments)
	assert.Equal(t, "Added: 0, Skipped: 2, Failed/Full: 0", second.Summary())
}

func TestImportRowsGroupsByInstance(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	// Same seat domain, different show instances: both get GA-1-1.
	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "1", "A1"),
		row("Ben", "FEBRUARY 15TH 3PM - General Admission", "1", "B1"),
	}, fallback)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	require.Len(t, res.Assignments, 2)
	assert.Equal(t, "GA-1-1", res.Assignments[0].SeatNumber)
	assert.Equal(t, "GA-1-1", res.Assignments[1].SeatNumber)
	assert.NotEqual(t, res.Assignments[0].EventDate, res.Assignments[1].EventDate)
}

func TestImportRowsSkipsUnusableRows(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	res, err := svc.ImportRows(context.Background(), []Row{
		row("", "FEBRUARY 14TH 3PM - General Admission", "1", "X1"),
		row("Ana", "", "1", "X2"),
		row("Ben", "FEBRUARY 14TH 3PM - General Admission", "1", "X3"),
	}, fallback)
	require.NoError(t, err)

	// Dropped rows are not failures, they are simply not requests.
	assert.Equal(t, 1, res.Added)
	assert.Zero(t, res.Failed)
	assert.Zero(t, res.Skipped)
}

func TestImportRowsQuantityDefaultsToOne(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "", "A1"),
		row("Ben", "FEBRUARY 14TH 3PM - General Admission", "two", "B1"),
	}, fallback)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	assert.Len(t, res.Assignments, 2)
}

func TestImportRowsHeaderNormalization(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	// Headers as spreadsheet tools mangle them: wrapped, spaced, cased.
	res, err := svc.ImportRows(context.Background(), []Row{
		{
			"customer":      "Ana Silva",
			"PRODUCT":       "FEBRUARY 14TH 3PM - General Admission",
			"Quantity":      "1",
			"Order\nNumber": "A1",
		},
	}, fallback)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Added)
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, "A1", res.Assignments[0].OrderID)
}

func TestImportRowsFetchErrorAbortsBatch(t *testing.T) {
	store := newFakeStore()
	store.fetchErr = errors.New("connection refused")
	svc := newTestService(store)

	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "1", "A1"),
	}, fallback)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "failed to fetch bookings")
	assert.Zero(t, store.upserts)
}

func TestImportRowsPersistErrorAbortsBatch(t *testing.T) {
	store := newFakeStore()
	store.upsertErr = errors.New("deadlock detected")
	svc := newTestService(store)

	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "1", "A1"),
	}, fallback)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "failed to persist assignments")
}

func TestImportRowsNotifiesPublisher(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	pub := &capturingPublisher{}
	svc.SetPublisher(pub)

	_, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "1", "A1"),
	}, fallback)
	require.NoError(t, err)

	assert.Equal(t, 1, pub.calls)
	assert.Equal(t, 1, pub.result.Added)
	assert.Equal(t, []string{"2024-02-14|3:00 PM"}, pub.instances)
}

func TestImportRowsPublisherFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	svc.SetPublisher(&capturingPublisher{err: errors.New("broker down")})

	res, err := svc.ImportRows(context.Background(), []Row{
		row("Ana", "FEBRUARY 14TH 3PM - General Admission", "1", "A1"),
	}, fallback)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
}

func TestImportFileCSV(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	csvData := strings.Join([]string{
		"Customer,Product,Quantity,OrderNumber",
		`Ana Silva,"FEBRUARY 14TH 3PM - General Admission",2,A1`,
		`Ben Okafor,"NEW YORK FASHION WEEK TICKETS FEBRUARY 14TH 1PM - Row 5 Right: $199",1,B7`,
	}, "\n")

	res, err := svc.ImportFile(context.Background(), "sales.csv", strings.NewReader(csvData), fallback)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	require.Len(t, res.Assignments, 3)
	assert.Equal(t, "R-5-1", res.Assignments[2].SeatNumber)
}

func TestImportFileRejectsUnknownExtension(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.ImportFile(context.Background(), "sales.pdf", strings.NewReader(""), fallback)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
