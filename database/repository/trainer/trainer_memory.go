package trainerRepo

import (
	"sync"

	"nivelfit/models"
)

// MemoryTrainerRepo is an in-process TrainerRepository for tests and demos.
// All methods copy on the way in and out so callers never alias stored state.
type MemoryTrainerRepo struct {
	mu        sync.RWMutex
	trainers  []models.Trainer
	schedules map[string]models.TrainerSchedule
}

// NewMemoryTrainerRepo constructs an empty in-memory trainer repository.
func NewMemoryTrainerRepo() *MemoryTrainerRepo {
	return &MemoryTrainerRepo{
		schedules: make(map[string]models.TrainerSchedule),
	}
}

func (r *MemoryTrainerRepo) GetAll() ([]models.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Trainer, len(r.trainers))
	for i, t := range r.trainers {
		out[i] = copyTrainer(t)
	}
	return out, nil
}

func (r *MemoryTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.trainers {
		if t.ID == id {
			c := copyTrainer(t)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryTrainerRepo) Save(trainer *models.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyTrainer(*trainer)
	for i, t := range r.trainers {
		if t.ID == trainer.ID {
			r.trainers[i] = stored
			return nil
		}
	}
	r.trainers = append(r.trainers, stored)
	return nil
}

func (r *MemoryTrainerRepo) GetSchedule(trainerID string) (*models.TrainerSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schedules[trainerID]
	if !ok {
		return nil, nil
	}
	c := copySchedule(s)
	return &c, nil
}

func (r *MemoryTrainerRepo) SaveSchedule(schedule *models.TrainerSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schedules[schedule.TrainerID] = copySchedule(*schedule)
	return nil
}

func (r *MemoryTrainerRepo) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.trainers)), nil
}

func (r *MemoryTrainerRepo) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trainers = nil
	r.schedules = make(map[string]models.TrainerSchedule)
	return nil
}

func copyTrainer(t models.Trainer) models.Trainer {
	t.AvailableSlots = append([]string(nil), t.AvailableSlots...)
	return t
}

func copySchedule(s models.TrainerSchedule) models.TrainerSchedule {
	week := make([]models.DaySchedule, len(s.WeeklySchedule))
	for i, d := range s.WeeklySchedule {
		d.Slots = append([]models.TimeSlot(nil), d.Slots...)
		week[i] = d
	}
	s.WeeklySchedule = week
	return s
}
