package booking

import (
	"sync"
	"testing"
	"time"

	"nivelfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		ClientName:  "María González",
		TrainerID:   "t1",
		TrainerName: "Diego Lamas",
		Date:        monday,
		Time:        "10:00",
		Duration:    60,
		Status:      models.StatusConfirmed,
	}
}

func TestCreateBookingValidationOrder(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00"}})

	t.Run("empty client name wins over bad duration", func(t *testing.T) {
		input := validInput()
		input.ClientName = "   "
		input.Duration = 5

		_, err := svc.CreateBooking(input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "empty client name", vErr.Message)
	})

	t.Run("bad duration wins over past date", func(t *testing.T) {
		input := validInput()
		input.Duration = 10
		input.Date = monday.AddDate(-1, 0, 0)

		_, err := svc.CreateBooking(input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "duration out of range", vErr.Message)
	})

	t.Run("past date rejected before availability", func(t *testing.T) {
		input := validInput()
		input.Date = monday.AddDate(-1, 0, 0)
		input.Time = "23:59" // would conflict, but date is checked first

		_, err := svc.CreateBooking(input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "date in the past", vErr.Message)
	})
}

func TestCreateBookingDurationBoundaries(t *testing.T) {
	cases := []struct {
		duration int
		ok       bool
	}{
		{29, false},
		{30, true},
		{180, true},
		{181, false},
	}

	for _, tc := range cases {
		svc, store := newTestService(t)
		saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00"}})

		input := validInput()
		input.Duration = tc.duration

		_, err := svc.CreateBooking(input)
		if tc.ok {
			assert.NoError(t, err, "duration %d should be accepted", tc.duration)
		} else {
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "duration %d should be rejected", tc.duration)
			assert.Equal(t, "duration out of range", vErr.Message)
		}
	}
}

func TestCreateBookingDatePolicy(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00"}})

	// The clock is pinned to 2027-01-15 12:00. A booking whose date is the
	// same calendar day at midnight is allowed: the comparison is by calendar
	// date, not full timestamp.
	input := validInput()
	input.Date = time.Date(2027, time.January, 15, 0, 0, 0, 0, time.Local)

	created, err := svc.CreateBooking(input)
	require.NoError(t, err)
	assert.True(t, models.SameDay(created.Date, input.Date))

	yesterday := time.Date(2027, time.January, 14, 23, 0, 0, 0, time.Local)
	input2 := validInput()
	input2.Date = yesterday
	_, err = svc.CreateBooking(input2)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date in the past", vErr.Message)
}

func TestCreateBookingScenario(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas"})
	require.NoError(t, store.Trainers.SaveSchedule(&models.TrainerSchedule{
		TrainerID:      "t1",
		TrainerName:    "Diego Lamas",
		WeeklySchedule: models.BuildWeeklySchedule([]string{"09:00", "10:00", "11:00"}),
	}))

	slots, err := svc.GetAvailableSlots("t1", monday)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "10:00", "11:00"}, slots)

	created, err := svc.CreateBooking(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusConfirmed, created.Status)

	slots, err = svc.GetAvailableSlots("t1", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, slots)

	_, err = svc.CreateBooking(validInput())
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "slot unavailable", cErr.Message)
}

func TestCreateBookingDefaults(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00", "11:00"}})

	t.Run("missing status defaults to pending", func(t *testing.T) {
		input := validInput()
		input.Status = ""

		created, err := svc.CreateBooking(input)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, created.Status)
	})

	t.Run("missing trainer name is denormalized from the trainer", func(t *testing.T) {
		input := validInput()
		input.Time = "11:00"
		input.TrainerName = ""

		created, err := svc.CreateBooking(input)
		require.NoError(t, err)
		assert.Equal(t, "Diego Lamas", created.TrainerName)
	})
}

func TestCreateBookingExactlyOneRecord(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00"}})

	_, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	count, err := store.Bookings.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// A rejected attempt writes nothing.
	_, err = svc.CreateBooking(validInput())
	require.Error(t, err)
	count, err = store.Bookings.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	svc, store := newTestService(t)
	saveTrainer(t, store, models.Trainer{ID: "t1", Name: "Diego Lamas", AvailableSlots: []string{"10:00"}})

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(validInput())
		}(i)
	}
	wg.Wait()

	successes := 0
	conflicts := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var cErr *ConflictError
		if assert.ErrorAs(t, err, &cErr) {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one writer may take the slot")
	assert.Equal(t, attempts-1, conflicts)

	count, err := store.Bookings.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
