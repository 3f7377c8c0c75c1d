package bookingRepo

import (
	"fmt"
	"sync"
	"time"

	"nivelfit/models"
)

// MemoryBookingRepo is an in-process BookingRepository for tests and demos.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepo constructs an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Booking(nil), r.bookings...), nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			c := b
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryBookingRepo) GetByDate(date time.Time) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if models.SameDay(b.Date, date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) GetByTrainer(trainerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.TrainerID == trainerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) Save(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == booking.ID {
			r.bookings[i] = *booking
			return nil
		}
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepo) Update(id string, update models.BookingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}
		if update.ClientName != nil {
			r.bookings[i].ClientName = *update.ClientName
		}
		if update.Date != nil {
			r.bookings[i].Date = *update.Date
		}
		if update.Time != nil {
			r.bookings[i].Time = *update.Time
		}
		if update.Duration != nil {
			r.bookings[i].Duration = *update.Duration
		}
		if update.Status != nil {
			r.bookings[i].Status = *update.Status
		}
		return nil
	}
	return fmt.Errorf("booking with id %s not found", id)
}

func (r *MemoryBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking with id %s not found", id)
}

func (r *MemoryBookingRepo) DeleteCancelledBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var kept []models.Booking
	var removed int64
	for _, b := range r.bookings {
		if b.Status == models.StatusCancelled && b.Date.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	r.bookings = kept
	return removed, nil
}

func (r *MemoryBookingRepo) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.bookings)), nil
}

func (r *MemoryBookingRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = nil
	return nil
}
