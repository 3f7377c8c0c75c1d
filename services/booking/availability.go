package booking

import (
	"fmt"
	"time"

	"nivelfit/models"
)

// GetAvailableSlots resolves the bookable times for a trainer on a calendar
// date: the day's schedule template filtered by availability toggles, minus
// the times already taken by non-cancelled bookings. Template order is
// preserved. An unknown trainer resolves to no availability, not an error.
func (svc *DefaultBookingService) GetAvailableSlots(trainerID string, date time.Time) ([]string, error) {
	trainer, err := svc.Store.Trainers.GetByID(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer %s: %w", trainerID, err)
	}
	if trainer == nil {
		return []string{}, nil
	}

	schedule, err := svc.Store.Trainers.GetSchedule(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for trainer %s: %w", trainerID, err)
	}

	if schedule == nil {
		// No weekly schedule configured: the trainer's default slots apply
		// uniformly to every date.
		booked, err := svc.bookedTimes(trainerID, date)
		if err != nil {
			return nil, err
		}
		return subtractBooked(trainer.AvailableSlots, booked), nil
	}

	// Sundays are always closed; Monday..Saturday map onto indices 0..5.
	weekday := date.Weekday()
	if weekday == time.Sunday {
		return []string{}, nil
	}
	dayIndex := int(weekday) - 1
	if dayIndex >= len(schedule.WeeklySchedule) {
		return []string{}, nil
	}

	var offered []string
	for _, slot := range schedule.WeeklySchedule[dayIndex].Slots {
		if slot.Available {
			offered = append(offered, slot.Time)
		}
	}

	booked, err := svc.bookedTimes(trainerID, date)
	if err != nil {
		return nil, err
	}
	return subtractBooked(offered, booked), nil
}

// bookedTimes collects the slot times taken by the trainer's non-cancelled
// bookings on the given calendar day.
func (svc *DefaultBookingService) bookedTimes(trainerID string, date time.Time) (map[string]bool, error) {
	bookings, err := svc.Store.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date.Format("2006-01-02"), err)
	}

	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.TrainerID == trainerID && b.Status != models.StatusCancelled {
			booked[b.Time] = true
		}
	}
	return booked, nil
}

func subtractBooked(slots []string, booked map[string]bool) []string {
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if !booked[s] {
			free = append(free, s)
		}
	}
	return free
}
