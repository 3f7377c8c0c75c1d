package booking

import (
	"testing"
	"time"

	"nivelfit/database/repository"
	"nivelfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "now" so date validation is deterministic.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(t *testing.T) (*DefaultBookingService, *repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := NewDefaultBookingService(store)
	svc.Now = fixedClock(time.Date(2027, time.January, 15, 12, 0, 0, 0, time.Local))
	return svc, store
}

func saveTrainer(t *testing.T, store *repository.Store, trainer models.Trainer) {
	t.Helper()
	require.NoError(t, store.Trainers.Save(&trainer))
}

var (
	// 2027-02-01 is a Monday, 2027-02-07 a Sunday.
	monday = time.Date(2027, time.February, 1, 0, 0, 0, 0, time.Local)
	sunday = time.Date(2027, time.February, 7, 0, 0, 0, 0, time.Local)
)

func TestGetAvailableSlotsUnknownTrainer(t *testing.T) {
	svc, _ := newTestService(t)

	slots, err := svc.GetAvailableSlots("nobody", monday)
	require.NoError(t, err)
	assert.Empty(t, slots, "unknown trainer should resolve to no availability")
}

func TestGetAvailableSlotsDefaultFallback(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{
		ID:             "t1",
		Name:           "Diego Lamas",
		AvailableSlots: []string{"09:00", "10:00", "11:00", "16:00"},
	})

	t.Run("no bookings returns defaults in order", func(t *testing.T) {
		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "16:00"}, slots)
	})

	t.Run("booked times are subtracted, order preserved", func(t *testing.T) {
		require.NoError(t, store.Bookings.Save(&models.Booking{
			ID: "b1", ClientName: "María", TrainerID: "t1",
			Date: monday, Time: "10:00", Duration: 60, Status: models.StatusConfirmed,
		}))

		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:00", "16:00"}, slots)
	})

	t.Run("cancelled bookings do not block their slot", func(t *testing.T) {
		require.NoError(t, store.Bookings.Save(&models.Booking{
			ID: "b2", ClientName: "Ana", TrainerID: "t1",
			Date: monday, Time: "09:00", Duration: 60, Status: models.StatusCancelled,
		}))

		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Contains(t, slots, "09:00")
	})

	t.Run("fallback applies on any weekday including Sunday", func(t *testing.T) {
		slots, err := svc.GetAvailableSlots("t1", sunday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "16:00"}, slots)
	})
}

func TestGetAvailableSlotsWithSchedule(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas"})
	require.NoError(t, store.Trainers.SaveSchedule(&models.TrainerSchedule{
		TrainerID:      "t1",
		TrainerName:    "Diego Lamas",
		WeeklySchedule: models.BuildWeeklySchedule([]string{"09:00", "10:00", "11:00"}),
	}))

	t.Run("sunday is always closed", func(t *testing.T) {
		slots, err := svc.GetAvailableSlots("t1", sunday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("monday offers the toggled template times", func(t *testing.T) {
		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
	})

	t.Run("unavailable template slots never appear", func(t *testing.T) {
		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.NotContains(t, slots, "06:00")
		assert.NotContains(t, slots, "12:00")
	})

	t.Run("idempotent with no intervening writes", func(t *testing.T) {
		first, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		second, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("booking removes its slot, other days unaffected", func(t *testing.T) {
		require.NoError(t, store.Bookings.Save(&models.Booking{
			ID: "b1", ClientName: "Carlos", TrainerID: "t1",
			Date: monday, Time: "10:00", Duration: 60, Status: models.StatusConfirmed,
		}))

		slots, err := svc.GetAvailableSlots("t1", monday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:00"}, slots)

		tuesday := monday.AddDate(0, 0, 1)
		slots, err = svc.GetAvailableSlots("t1", tuesday)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)
	})
}

func TestGetAvailableSlotsIgnoresOtherTrainersBookings(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "A", AvailableSlots: []string{"09:00"}})
	saveTrainer(t, store, models.Trainer{ID: "t2", Name: "B", AvailableSlots: []string{"09:00"}})

	require.NoError(t, store.Bookings.Save(&models.Booking{
		ID: "b1", ClientName: "X", TrainerID: "t2",
		Date: monday, Time: "09:00", Duration: 60, Status: models.StatusConfirmed,
	}))

	slots, err := svc.GetAvailableSlots("t1", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)
}
