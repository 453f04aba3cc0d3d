package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KoIa247/SeatingApp/internal/seatmap"
	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/constants"
	"github.com/KoIa247/SeatingApp/pkg/cache"
	"github.com/KoIa247/SeatingApp/pkg/logger"
)

var ErrInvalidSeatType = errors.New("invalid seat type")

type Service interface {
	// Reads
	GetBookings(ctx context.Context, eventDate, eventTime string) ([]Booking, error)
	ListInstances(ctx context.Context) ([]Instance, error)
	GetOccupancy(ctx context.Context, eventDate, eventTime string) (*OccupancyResponse, error)

	// Seat mutation (single-document upserts driven by the seat grid UI)
	AssignSeat(ctx context.Context, req AssignSeatRequest) (*Booking, error)
	AssignSeats(ctx context.Context, req AssignSeatsRequest) ([]Booking, error)
	RemoveSeat(ctx context.Context, seatNumber, eventDate, eventTime string) error
	ClearInstance(ctx context.Context, eventDate, eventTime string) error

	// SnapshotInstance reads the instance straight from Postgres,
	// bypassing the cache. The import reconciler allocates and dedups
	// against this snapshot, so it must see its own prior writes.
	SnapshotInstance(ctx context.Context, eventDate, eventTime string) ([]Booking, error)

	// PersistAssignments bulk-upserts and invalidates caches; used by the
	// import reconciler through its store adapter.
	PersistAssignments(ctx context.Context, bookings []Booking) error

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	config       *config.Config
	cacheService cache.Service
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func instanceCacheKey(eventDate, eventTime string) string {
	return constants.BuildBookingsInstanceKey(eventDate, eventTime)
}

// GetBookings returns the occupancy snapshot for one show instance,
// cache-aside when Redis is available. An empty event time falls back to
// the default show slot.
func (s *service) GetBookings(ctx context.Context, eventDate, eventTime string) ([]Booking, error) {
	if eventTime == "" {
		eventTime = s.config.Event.DefaultTime
	}

	if s.cacheService == nil {
		return s.repo.FindByInstance(ctx, eventDate, eventTime)
	}

	var bookings []Booking
	err := s.cacheService.GetOrSet(ctx, instanceCacheKey(eventDate, eventTime), s.config.Cache.BookingTTL,
		func() (interface{}, error) {
			return s.repo.FindByInstance(ctx, eventDate, eventTime)
		}, &bookings)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

func (s *service) SnapshotInstance(ctx context.Context, eventDate, eventTime string) ([]Booking, error) {
	if eventTime == "" {
		eventTime = s.config.Event.DefaultTime
	}
	return s.repo.FindByInstance(ctx, eventDate, eventTime)
}

func (s *service) ListInstances(ctx context.Context) ([]Instance, error) {
	if s.cacheService == nil {
		return s.repo.ListInstances(ctx)
	}

	var instances []Instance
	err := s.cacheService.GetOrSet(ctx, constants.CacheKeyInstanceList, constants.TTLInstanceList,
		func() (interface{}, error) {
			return s.repo.ListInstances(ctx)
		}, &instances)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}

func (s *service) AssignSeat(ctx context.Context, req AssignSeatRequest) (*Booking, error) {
	seatType := seatmap.SeatType(req.SeatType)
	if !seatType.IsValid() {
		return nil, ErrInvalidSeatType
	}

	role := req.Role
	if role == "" || !seatmap.IsValidRole(role) {
		role = seatmap.DefaultRole
	}

	eventTime := req.EventTime
	if eventTime == "" {
		eventTime = s.config.Event.DefaultTime
	}

	booking := &Booking{
		SeatNumber:   req.SeatNumber,
		EventDate:    req.EventDate,
		EventTime:    eventTime,
		SeatType:     seatType,
		CustomerName: req.CustomerName,
		Role:         role,
		OrderID:      req.OrderID,
		Row:          req.Row,
		Col:          req.Col,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to assign seat: %w", err)
	}

	s.invalidateInstance(ctx, booking.EventDate, booking.EventTime)
	logger.GetDefault().LogSeatAssigned(ctx, booking.SeatNumber, booking.EventDate, booking.EventTime)
	return booking, nil
}

// AssignSeats books several seats for one customer in one upsert batch,
// e.g. a VIP table block selected in the grid.
func (s *service) AssignSeats(ctx context.Context, req AssignSeatsRequest) ([]Booking, error) {
	role := req.Role
	if role == "" || !seatmap.IsValidRole(role) {
		role = seatmap.DefaultRole
	}

	eventTime := req.EventTime
	if eventTime == "" {
		eventTime = s.config.Event.DefaultTime
	}

	now := time.Now().UTC()
	bookings := make([]Booking, 0, len(req.Seats))
	for _, seat := range req.Seats {
		seatType := seatmap.SeatType(seat.SeatType)
		if !seatType.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSeatType, seat.SeatType)
		}
		bookings = append(bookings, Booking{
			SeatNumber:   seat.SeatNumber,
			EventDate:    req.EventDate,
			EventTime:    eventTime,
			SeatType:     seatType,
			CustomerName: req.CustomerName,
			Role:         role,
			Row:          seat.Row,
			Col:          seat.Col,
			UpdatedAt:    now,
		})
	}

	if err := s.repo.BulkUpsert(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to assign seats: %w", err)
	}

	s.invalidateInstance(ctx, req.EventDate, eventTime)
	return bookings, nil
}

func (s *service) RemoveSeat(ctx context.Context, seatNumber, eventDate, eventTime string) error {
	if err := s.repo.Delete(ctx, seatNumber, eventDate, eventTime); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	s.invalidateInstance(ctx, eventDate, eventTime)
	logger.GetDefault().LogSeatReleased(ctx, seatNumber, eventDate, eventTime)
	return nil
}

func (s *service) ClearInstance(ctx context.Context, eventDate, eventTime string) error {
	if err := s.repo.DeleteAllForInstance(ctx, eventDate, eventTime); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}
	s.invalidateInstance(ctx, eventDate, eventTime)
	return nil
}

func (s *service) PersistAssignments(ctx context.Context, bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	if err := s.repo.BulkUpsert(ctx, bookings); err != nil {
		return err
	}
	// One batch may touch several instances.
	seen := make(map[string]struct{})
	for _, b := range bookings {
		key := b.EventDate + "|" + b.EventTime
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		s.invalidateInstance(ctx, b.EventDate, b.EventTime)
	}
	return nil
}

// GetOccupancy summarises how full each seat domain is for one instance.
func (s *service) GetOccupancy(ctx context.Context, eventDate, eventTime string) (*OccupancyResponse, error) {
	bookings, err := s.GetBookings(ctx, eventDate, eventTime)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		occupied[b.SeatNumber] = struct{}{}
	}

	if eventTime == "" {
		eventTime = s.config.Event.DefaultTime
	}

	resp := &OccupancyResponse{
		EventDate: eventDate,
		EventTime: eventTime,
	}

	addDomain := func(label string, seatType seatmap.SeatType, side string, section int) {
		slots := seatmap.Enumerate(seatType, side, section)
		count := 0
		for _, slot := range slots {
			if _, ok := occupied[slot.ID]; ok {
				count++
			}
		}
		resp.Sections = append(resp.Sections, SectionOccupancy{
			Label:    label,
			SeatType: seatType,
			Side:     side,
			Section:  section,
			Occupied: count,
			Capacity: len(slots),
		})
		resp.TotalOccupied += count
		resp.TotalCapacity += len(slots)
	}

	for section := 1; section <= seatmap.RowSections; section++ {
		addDomain(fmt.Sprintf("Left Row %d", section), seatmap.TypeLeftRow, seatmap.SideLeft, section)
	}
	for section := 1; section <= seatmap.RowSections; section++ {
		addDomain(fmt.Sprintf("Right Row %d", section), seatmap.TypeRightRow, seatmap.SideRight, section)
	}
	addDomain("VIP Left", seatmap.TypeVIP, seatmap.SideVIPLeft, 0)
	addDomain("VIP Right", seatmap.TypeVIP, seatmap.SideVIPRight, 0)
	addDomain("General Admission", seatmap.TypeGeneral, seatmap.SideGeneral, 0)

	return resp, nil
}

func (s *service) invalidateInstance(ctx context.Context, eventDate, eventTime string) {
	if s.cacheService == nil {
		return
	}
	// Cache invalidation is best effort; a stale read self-heals at TTL.
	_ = s.cacheService.Delete(ctx, instanceCacheKey(eventDate, eventTime))
	_ = s.cacheService.Delete(ctx, constants.CacheKeyInstanceList)
}
