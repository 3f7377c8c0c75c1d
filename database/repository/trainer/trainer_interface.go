package trainerRepo

import "nivelfit/models"

// TrainerRepository defines persistence for trainers and their weekly
// schedules. Read methods return (nil, nil) when nothing matches; callers
// treat a missing trainer or schedule as "no availability", not an error.
type TrainerRepository interface {
	GetAll() ([]models.Trainer, error)
	GetByID(id string) (*models.Trainer, error)
	Save(trainer *models.Trainer) error

	GetSchedule(trainerID string) (*models.TrainerSchedule, error)
	SaveSchedule(schedule *models.TrainerSchedule) error

	Count() (int64, error)
	DeleteAll() error
}
