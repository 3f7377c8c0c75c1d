package models

import "time"

// SeedTrainers are the demo trainers loaded on first start.
func SeedTrainers() []Trainer {
	return []Trainer{
		{
			ID:             "trainer1",
			Name:           "Diego Lamas",
			AvailableSlots: []string{"09:00", "10:00", "11:00", "16:00", "17:00", "18:00"},
		},
		{
			ID:             "trainer2",
			Name:           "Jeanpierre Casas",
			AvailableSlots: []string{"08:00", "09:00", "15:00", "16:00", "19:00", "20:00"},
		},
	}
}

// SeedSchedules builds the demo weekly schedules, one per seed trainer, with
// each trainer's default slots toggled available across the week.
func SeedSchedules() []TrainerSchedule {
	var schedules []TrainerSchedule
	for _, t := range SeedTrainers() {
		schedules = append(schedules, TrainerSchedule{
			TrainerID:      t.ID,
			TrainerName:    t.Name,
			WeeklySchedule: BuildWeeklySchedule(t.AvailableSlots),
		})
	}
	return schedules
}

// SeedBookings are the demo bookings loaded on first start. One is cancelled
// so its slot shows as free again.
func SeedBookings() []Booking {
	return []Booking{
		{
			ID:          "booking1",
			ClientName:  "María González",
			TrainerID:   "trainer1",
			TrainerName: "Diego Lamas",
			Date:        time.Date(2026, time.January, 22, 0, 0, 0, 0, time.Local),
			Time:        "09:00",
			Duration:    60,
			Status:      StatusConfirmed,
		},
		{
			ID:          "booking2",
			ClientName:  "Carlos Ruiz",
			TrainerID:   "trainer2",
			TrainerName: "Jeanpierre Casas",
			Date:        time.Date(2026, time.January, 23, 0, 0, 0, 0, time.Local),
			Time:        "16:00",
			Duration:    60,
			Status:      StatusConfirmed,
		},
		{
			ID:          "booking3",
			ClientName:  "Ana Martín",
			TrainerID:   "trainer1",
			TrainerName: "Diego Lamas",
			Date:        time.Date(2026, time.January, 24, 0, 0, 0, 0, time.Local),
			Time:        "10:00",
			Duration:    60,
			Status:      StatusCancelled,
		},
	}
}
