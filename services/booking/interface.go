package booking

import (
	"time"

	"nivelfit/database/repository"
	"nivelfit/models"
)

// BookingService exposes the operations the presentation layer consumes:
// availability resolution, booking creation and the thin reads around them.
type BookingService interface {
	GetAvailableSlots(trainerID string, date time.Time) ([]string, error)
	CreateBooking(input models.BookingInput) (*models.Booking, error)

	GetTrainers() ([]models.Trainer, error)
	GetTrainerByID(id string) (*models.Trainer, error)
	GetBookingByID(id string) (*models.Booking, error)
	GetBookingsByDate(date time.Time) ([]models.Booking, error)
	GetBookingsByTrainer(trainerID string) ([]models.Booking, error)
	UpdateBooking(id string, update models.BookingUpdate) (*models.Booking, error)
	DeleteBooking(id string) error

	GetSchedule(trainerID string) (*models.TrainerSchedule, error)
	SaveSchedule(schedule models.TrainerSchedule) (*models.TrainerSchedule, error)
}

// DefaultBookingService implements BookingService against a Store.
type DefaultBookingService struct {
	Store *repository.Store

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time

	locks slotLocks
}

// NewDefaultBookingService wires a booking service around the given store.
func NewDefaultBookingService(store *repository.Store) *DefaultBookingService {
	return &DefaultBookingService{
		Store: store,
		Now:   time.Now,
	}
}

func (svc *DefaultBookingService) clock() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
