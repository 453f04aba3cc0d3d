package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KoIa247/SeatingApp/internal/bookings"
	"github.com/KoIa247/SeatingApp/internal/seatmap"
	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/database"
	"github.com/KoIa247/SeatingApp/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("🌱 Starting SeatingApp Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedUsers(); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seeder.SeedBookings(); err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables. Bookings has no FK to users, so
// order does not matter, but keep it deterministic anyway.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedUsers() error {
	seedUsers := []struct {
		firstName string
		lastName  string
		email     string
		password  string
		role      users.Role
	}{
		{"Admin", "User", "admin@seatingapp.local", "admin123", users.RoleAdmin},
		{"Box", "Office", "boxoffice@seatingapp.local", "boxoffice123", users.RoleUser},
	}

	for _, u := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &users.User{
			FirstName: u.firstName,
			LastName:  u.lastName,
			Email:     u.email,
			Password:  string(hashed),
			Role:      u.role,
		}
		if err := s.db.GetPostgreSQL().Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.email, err)
		}
		fmt.Printf("  ✅ user %s (%s)\n", u.email, u.role)
	}
	return nil
}

// SeedBookings places a handful of assignments in the default show
// instance so the seat grid has something to render.
func (s *Seeder) SeedBookings() error {
	repo := bookings.NewRepository(s.db.GetPostgreSQL())
	service := bookings.NewService(repo, s.cfg)

	date := s.cfg.Event.DefaultDate
	timeSlot := s.cfg.Event.DefaultTime

	demo := []bookings.AssignSeatRequest{
		{SeatNumber: "L-1-1", SeatType: string(seatmap.TypeLeftRow), CustomerName: "Ana Silva", Role: seatmap.DefaultRole, EventDate: date, EventTime: timeSlot, Row: 1, Col: 1},
		{SeatNumber: "L-1-2", SeatType: string(seatmap.TypeLeftRow), CustomerName: "Ana Silva", Role: seatmap.DefaultRole, EventDate: date, EventTime: timeSlot, Row: 2, Col: 1},
		{SeatNumber: "R-5-1", SeatType: string(seatmap.TypeRightRow), CustomerName: "Marcus Webb", Role: seatmap.DefaultRole, EventDate: date, EventTime: timeSlot, Row: 1, Col: 5},
		{SeatNumber: "VL-1-1", SeatType: string(seatmap.TypeVIP), CustomerName: "Priya Patel", Role: "VIP TABLE", EventDate: date, EventTime: timeSlot, Row: 1, Col: 1},
		{SeatNumber: "GA-1-1", SeatType: string(seatmap.TypeGeneral), CustomerName: "Jordan Lee", Role: "GA Tickets Sales", EventDate: date, EventTime: timeSlot, Row: 1, Col: 1},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, req := range demo {
		if _, err := service.AssignSeat(ctx, req); err != nil {
			return fmt.Errorf("failed to assign seat %s: %w", req.SeatNumber, err)
		}
		fmt.Printf("  ✅ booking %s -> %s\n", req.SeatNumber, req.CustomerName)
	}
	return nil
}
