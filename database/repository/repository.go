package repository

import (
	"fmt"

	bookingRepo "nivelfit/database/repository/booking"
	trainerRepo "nivelfit/database/repository/trainer"
	"nivelfit/models"
)

// Store bundles the repositories the booking core depends on.
type Store struct {
	Trainers trainerRepo.TrainerRepository
	Bookings bookingRepo.BookingRepository
}

// NewMongoStore assembles a Store backed by MongoDB.
func NewMongoStore() *Store {
	return &Store{
		Trainers: trainerRepo.NewMongoTrainerRepo(),
		Bookings: bookingRepo.NewMongoBookingRepo(),
	}
}

// NewMemoryStore assembles a purely in-process Store.
func NewMemoryStore() *Store {
	return &Store{
		Trainers: trainerRepo.NewMemoryTrainerRepo(),
		Bookings: bookingRepo.NewMemoryBookingRepo(),
	}
}

// Initialize seeds demo data when the store is empty. Calling it on a
// populated store is a no-op.
func (s *Store) Initialize() error {
	trainerCount, err := s.Trainers.Count()
	if err != nil {
		return fmt.Errorf("failed to check trainer seed state: %w", err)
	}
	if trainerCount == 0 {
		for _, t := range models.SeedTrainers() {
			trainer := t
			if err := s.Trainers.Save(&trainer); err != nil {
				return fmt.Errorf("failed to seed trainer %s: %w", t.ID, err)
			}
		}
		for _, sched := range models.SeedSchedules() {
			schedule := sched
			if err := s.Trainers.SaveSchedule(&schedule); err != nil {
				return fmt.Errorf("failed to seed schedule for trainer %s: %w", sched.TrainerID, err)
			}
		}
	}

	bookingCount, err := s.Bookings.Count()
	if err != nil {
		return fmt.Errorf("failed to check booking seed state: %w", err)
	}
	if bookingCount == 0 {
		for _, b := range models.SeedBookings() {
			booking := b
			if err := s.Bookings.Save(&booking); err != nil {
				return fmt.Errorf("failed to seed booking %s: %w", b.ID, err)
			}
		}
	}
	return nil
}

// Clear wipes all persisted data.
func (s *Store) Clear() error {
	if err := s.Trainers.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear trainers: %w", err)
	}
	if err := s.Bookings.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}
	return nil
}
