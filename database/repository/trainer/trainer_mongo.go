package trainerRepo

import (
	"context"
	"time"

	"nivelfit/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	trainerColl  *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoTrainerRepo constructs a new instance of MongoTrainerRepo.
func NewMongoTrainerRepo() TrainerRepository {
	db := database.MongoClient.Database(database.DBName)
	return &MongoTrainerRepo{
		trainerColl:  db.Collection("trainers"),
		scheduleColl: db.Collection("schedules"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
