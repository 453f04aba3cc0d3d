package imports

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KoIa247/SeatingApp/pkg/logger"
)

// BookingStore is the persistence collaborator the reconciler runs
// against. FindByInstance returns the snapshot of bookings already
// recorded for one show instance; BulkUpsert persists a batch of new
// assignments keyed by (seat number, event date, event time).
type BookingStore interface {
	FindByInstance(ctx context.Context, eventDate, eventTime string) ([]ExistingBooking, error)
	BulkUpsert(ctx context.Context, assignments []Assignment) error
}

// Publisher receives a notification after a batch import completes.
type Publisher interface {
	ImportCompleted(ctx context.Context, result Result, instances []string) error
}

// Service reconciles a spreadsheet of ticket sale rows against the
// persisted bookings: parse, group by show instance, deduplicate by
// order number, allocate seats, persist.
type Service interface {
	ImportRows(ctx context.Context, rows []Row, fallbackDate string) (*Result, error)
	ImportFile(ctx context.Context, filename string, file io.Reader, fallbackDate string) (*Result, error)

	// SetPublisher wires the optional import notification publisher.
	SetPublisher(p Publisher)
}

type service struct {
	store     BookingStore
	parser    *Parser
	publisher Publisher
}

func NewService(store BookingStore, parser *Parser) Service {
	return &service{
		store:  store,
		parser: parser,
	}
}

func (s *service) SetPublisher(p Publisher) {
	s.publisher = p
}

// requestGroup holds the requests of one (eventDate, eventTime) show
// instance. Allocation and occupancy are scoped to a single instance, so
// each group is reconciled independently.
type requestGroup struct {
	date     string
	time     string
	requests []Request
}

// ImportFile decodes the upload by extension and reconciles its rows.
func (s *service) ImportFile(ctx context.Context, filename string, file io.Reader, fallbackDate string) (*Result, error) {
	var (
		rows []Row
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xls":
		rows, err = ReadXLSX(file)
	case ".csv":
		rows, err = ReadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	return s.ImportRows(ctx, rows, fallbackDate)
}

// ImportRows runs the full batch reconciliation. Groups are processed
// sequentially in first-seen order; a storage failure on any group
// aborts the whole batch and surfaces the error. Re-running the same
// spreadsheet is safe: rows whose order number is already persisted are
// skipped, not re-allocated.
func (s *service) ImportRows(ctx context.Context, rows []Row, fallbackDate string) (*Result, error) {
	appLogger := logger.GetDefault()
	groups := s.groupRows(rows, fallbackDate)

	total := &Result{}
	instances := make([]string, 0, len(groups))
	for _, g := range groups {
		existing, err := s.store.FindByInstance(ctx, g.date, g.time)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bookings for %s %s: %w", g.date, g.time, err)
		}

		res := Allocate(g.requests, existing)

		if len(res.Assignments) > 0 {
			if err := s.store.BulkUpsert(ctx, res.Assignments); err != nil {
				return nil, fmt.Errorf("failed to persist assignments for %s %s: %w", g.date, g.time, err)
			}
		}

		total.Merge(res)
		instances = append(instances, g.date+"|"+g.time)
	}

	appLogger.LogImportCompleted(ctx, total.Added, total.Skipped, total.Failed, instances)

	if s.publisher != nil {
		// Best effort: the import already succeeded, a lost notification
		// is only a gap in the audit trail.
		if err := s.publisher.ImportCompleted(ctx, *total, instances); err != nil {
			appLogger.Warn("Failed to publish import notification", slog.Any("error", err))
		}
	}

	return total, nil
}

// groupRows extracts a Request from every usable spreadsheet row and
// groups them by show instance, preserving first-seen group order and
// row order within each group (input order decides who wins scarce
// seats). Rows missing a customer or product are not valid requests and
// are dropped without counting as failures.
func (s *service) groupRows(rows []Row, fallbackDate string) []*requestGroup {
	byKey := make(map[string]*requestGroup)
	var ordered []*requestGroup

	for _, row := range rows {
		customer := strings.TrimSpace(row.Field(ColumnCustomer))
		product := strings.TrimSpace(row.Field(ColumnProduct))
		if customer == "" || product == "" {
			continue
		}

		qty := 1
		if n, err := strconv.Atoi(strings.TrimSpace(row.Field(ColumnQuantity))); err == nil {
			qty = n
		}

		info := s.parser.ParseProduct(product, fallbackDate)
		key := info.InstanceKey()

		g, ok := byKey[key]
		if !ok {
			g = &requestGroup{date: info.Date, time: info.Time}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		g.requests = append(g.requests, Request{
			Customer: customer,
			Qty:      qty,
			Info:     info,
			OrderID:  strings.TrimSpace(row.Field(ColumnOrderID)),
		})
	}

	return ordered
}
