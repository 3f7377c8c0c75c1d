package models

import "time"

// BookingInput is the payload for creating a booking. Status is optional and
// defaults to pending when the caller leaves it empty.
type BookingInput struct {
	ClientName  string    `json:"clientName" binding:"required"`
	TrainerID   string    `json:"trainerId" binding:"required"`
	TrainerName string    `json:"trainerName"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	Duration    int       `json:"duration" binding:"required"`
	Status      string    `json:"status"`
}

// BookingUpdate carries the fields a partial booking update may change.
// Nil fields are left untouched.
type BookingUpdate struct {
	ClientName *string    `json:"clientName,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Time       *string    `json:"time,omitempty"`
	Duration   *int       `json:"duration,omitempty"`
	Status     *string    `json:"status,omitempty"`
}
