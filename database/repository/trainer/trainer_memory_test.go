package trainerRepo

import (
	"testing"

	"nivelfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTrainerRoundTrip(t *testing.T) {
	repo := NewMemoryTrainerRepo()

	require.NoError(t, repo.Save(&models.Trainer{
		ID:             "t1",
		Name:           "Diego Lamas",
		AvailableSlots: []string{"09:00", "10:00"},
	}))

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Diego Lamas", got.Name)

	missing, err := repo.GetByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Mutating the returned copy must not leak into the store.
	got.AvailableSlots[0] = "13:00"
	fresh, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", fresh.AvailableSlots[0])
}

func TestMemoryTrainerSaveReplacesByID(t *testing.T) {
	repo := NewMemoryTrainerRepo()

	require.NoError(t, repo.Save(&models.Trainer{ID: "t1", Name: "Before"}))
	require.NoError(t, repo.Save(&models.Trainer{ID: "t1", Name: "After"}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
}

func TestMemoryScheduleRoundTrip(t *testing.T) {
	repo := NewMemoryTrainerRepo()

	missing, err := repo.GetSchedule("t1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	schedule := &models.TrainerSchedule{
		TrainerID:      "t1",
		TrainerName:    "Diego Lamas",
		WeeklySchedule: models.BuildWeeklySchedule([]string{"09:00"}),
	}
	require.NoError(t, repo.SaveSchedule(schedule))

	got, err := repo.GetSchedule("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.WeeklySchedule, models.WorkingDays)

	// Saving again replaces wholesale.
	schedule.WeeklySchedule = models.BuildWeeklySchedule([]string{"10:00"})
	require.NoError(t, repo.SaveSchedule(schedule))

	got, err = repo.GetSchedule("t1")
	require.NoError(t, err)
	for _, slot := range got.WeeklySchedule[0].Slots {
		if slot.Time == "09:00" {
			assert.False(t, slot.Available)
		}
		if slot.Time == "10:00" {
			assert.True(t, slot.Available)
		}
	}
}

func TestMemoryDeleteAll(t *testing.T) {
	repo := NewMemoryTrainerRepo()
	require.NoError(t, repo.Save(&models.Trainer{ID: "t1", Name: "Diego Lamas"}))
	require.NoError(t, repo.SaveSchedule(&models.TrainerSchedule{
		TrainerID:      "t1",
		WeeklySchedule: models.BuildWeeklySchedule(nil),
	}))

	require.NoError(t, repo.DeleteAll())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	schedule, err := repo.GetSchedule("t1")
	require.NoError(t, err)
	assert.Nil(t, schedule)
}
