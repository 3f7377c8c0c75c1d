package trainerRepo

import (
	"errors"
	"fmt"
	"time"

	"nivelfit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll returns every trainer document.
func (r *MongoTrainerRepo) GetAll() ([]models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.trainerColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("failed to decode trainers: %w", err)
	}
	return trainers, nil
}

// GetByID returns the trainer with the given id, or nil when none exists.
func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trainer models.Trainer
	if err := r.trainerColl.FindOne(ctx, bson.M{"id": id}).Decode(&trainer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	return &trainer, nil
}

// Save upserts a trainer document keyed by its id.
func (r *MongoTrainerRepo) Save(trainer *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": trainer.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.trainerColl.ReplaceOne(ctx, filter, trainer, opts); err != nil {
		return fmt.Errorf("failed to save trainer with id %s: %w", trainer.ID, err)
	}
	return nil
}

// GetSchedule returns the weekly schedule for a trainer, or nil when the
// trainer has not saved one.
func (r *MongoTrainerRepo) GetSchedule(trainerID string) (*models.TrainerSchedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var schedule models.TrainerSchedule
	if err := r.scheduleColl.FindOne(ctx, bson.M{"trainer_id": trainerID}).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for trainer %s: %w", trainerID, err)
	}
	return &schedule, nil
}

// SaveSchedule replaces a trainer's weekly schedule wholesale.
func (r *MongoTrainerRepo) SaveSchedule(schedule *models.TrainerSchedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"trainer_id": schedule.TrainerID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.scheduleColl.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("failed to save schedule for trainer %s: %w", schedule.TrainerID, err)
	}
	return nil
}

// Count returns the number of stored trainers.
func (r *MongoTrainerRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.trainerColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count trainers: %w", err)
	}
	return n, nil
}

// DeleteAll wipes trainers and their schedules.
func (r *MongoTrainerRepo) DeleteAll() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.trainerColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete trainers: %w", err)
	}
	if _, err := r.scheduleColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete schedules: %w", err)
	}
	return nil
}
