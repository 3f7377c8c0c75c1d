package bookingRepo

import (
	"time"

	"nivelfit/models"
)

// BookingRepository defines persistence for bookings. GetByDate matches by
// calendar day, ignoring the time-of-day of both the stored date and the
// query date. GetByID returns (nil, nil) when nothing matches.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	GetByDate(date time.Time) ([]models.Booking, error)
	GetByTrainer(trainerID string) ([]models.Booking, error)
	Save(booking *models.Booking) error
	Update(id string, update models.BookingUpdate) error
	Delete(id string) error

	// DeleteCancelledBefore removes cancelled bookings dated before the cutoff
	// and reports how many were removed. Used by the retention worker.
	DeleteCancelledBefore(cutoff time.Time) (int64, error)

	Count() (int64, error)
	DeleteAll() error
}
