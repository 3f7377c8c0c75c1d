package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nivelfit/models"
	"nivelfit/utils"
)

// CreateBooking validates the input, re-checks availability at write time and
// persists exactly one booking record. Validation fails fast in a fixed
// order: client name, duration, date, then availability.
func (svc *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(input.ClientName) == "" {
		return nil, NewValidationError("empty client name")
	}
	if input.Duration < models.MinDurationMinutes || input.Duration > models.MaxDurationMinutes {
		return nil, NewValidationError("duration out of range")
	}
	now := svc.clock()
	if startOfDay(input.Date).Before(startOfDay(now)) {
		return nil, NewValidationError("date in the past")
	}

	// Serialize writers for this trainer and day so the availability re-check
	// below stays valid until the record is persisted.
	unlock := svc.locks.acquire(slotKey(input.TrainerID, input.Date))
	defer unlock()

	slots, err := svc.GetAvailableSlots(input.TrainerID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !containsTime(slots, input.Time) {
		return nil, NewConflictError("slot unavailable")
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	trainerName := input.TrainerName
	if trainerName == "" {
		trainer, err := svc.Store.Trainers.GetByID(input.TrainerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load trainer %s: %w", input.TrainerID, err)
		}
		if trainer != nil {
			trainerName = trainer.Name
		}
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		ClientName:  input.ClientName,
		TrainerID:   input.TrainerID,
		TrainerName: trainerName,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    input.Duration,
		Status:      status,
		CreatedAt:   now,
	}

	if err := svc.Store.Bookings.Save(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("trainerID", booking.TrainerID),
		zap.String("date", booking.Date.Format("2006-01-02")),
		zap.String("time", booking.Time))
	return booking, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func containsTime(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
