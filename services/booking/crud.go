package booking

import (
	"fmt"
	"time"

	"nivelfit/models"
)

// GetTrainers returns all trainers.
func (svc *DefaultBookingService) GetTrainers() ([]models.Trainer, error) {
	trainers, err := svc.Store.Trainers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainers: %w", err)
	}
	return trainers, nil
}

// GetTrainerByID returns a trainer, or nil when none exists.
func (svc *DefaultBookingService) GetTrainerByID(id string) (*models.Trainer, error) {
	return svc.Store.Trainers.GetByID(id)
}

// GetBookingByID returns a booking, or nil when none exists.
func (svc *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	return svc.Store.Bookings.GetByID(id)
}

// GetBookingsByDate returns all bookings on the same calendar day, regardless
// of trainer or status.
func (svc *DefaultBookingService) GetBookingsByDate(date time.Time) ([]models.Booking, error) {
	bookings, err := svc.Store.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// GetBookingsByTrainer returns all bookings referencing the trainer.
func (svc *DefaultBookingService) GetBookingsByTrainer(trainerID string) ([]models.Booking, error) {
	bookings, err := svc.Store.Bookings.GetByTrainer(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for trainer %s: %w", trainerID, err)
	}
	return bookings, nil
}

// UpdateBooking applies a partial update and returns the stored result.
func (svc *DefaultBookingService) UpdateBooking(id string, update models.BookingUpdate) (*models.Booking, error) {
	existing, err := svc.Store.Bookings.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if existing == nil {
		return nil, NewNotFoundError("booking not found")
	}

	if err := svc.Store.Bookings.Update(id, update); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return svc.Store.Bookings.GetByID(id)
}

// DeleteBooking removes a booking outright.
func (svc *DefaultBookingService) DeleteBooking(id string) error {
	existing, err := svc.Store.Bookings.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	if existing == nil {
		return NewNotFoundError("booking not found")
	}
	return svc.Store.Bookings.Delete(id)
}

// GetSchedule returns a trainer's weekly schedule, or nil when none is saved.
func (svc *DefaultBookingService) GetSchedule(trainerID string) (*models.TrainerSchedule, error) {
	return svc.Store.Trainers.GetSchedule(trainerID)
}

// SaveSchedule replaces a trainer's weekly schedule wholesale. The schedule
// is normalized against the per-day templates before persisting: each day's
// slots are rebuilt in template order and times outside the template are
// dropped, so a rogue slot can never be offered no matter its toggle.
func (svc *DefaultBookingService) SaveSchedule(schedule models.TrainerSchedule) (*models.TrainerSchedule, error) {
	trainer, err := svc.Store.Trainers.GetByID(schedule.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer %s: %w", schedule.TrainerID, err)
	}
	if trainer == nil {
		return nil, NewNotFoundError("trainer not found")
	}
	if len(schedule.WeeklySchedule) != models.WorkingDays {
		return nil, NewValidationError("schedule must cover Monday through Saturday")
	}

	normalized := models.TrainerSchedule{
		TrainerID:   schedule.TrainerID,
		TrainerName: trainer.Name,
	}
	for dayIndex, day := range schedule.WeeklySchedule {
		toggles := make(map[string]bool, len(day.Slots))
		for _, slot := range day.Slots {
			toggles[slot.Time] = slot.Available
		}

		template := models.TemplateForDay(dayIndex)
		slots := make([]models.TimeSlot, 0, len(template))
		for _, t := range template {
			slots = append(slots, models.TimeSlot{Time: t, Available: toggles[t]})
		}
		normalized.WeeklySchedule = append(normalized.WeeklySchedule, models.DaySchedule{
			Day:   models.DayNames[dayIndex],
			Slots: slots,
		})
	}

	if err := svc.Store.Trainers.SaveSchedule(&normalized); err != nil {
		return nil, fmt.Errorf("failed to save schedule for trainer %s: %w", schedule.TrainerID, err)
	}
	return &normalized, nil
}
