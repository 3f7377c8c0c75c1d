package models

import "time"

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Duration bounds for a session, in minutes.
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 180
)

// Booking represents a confirmed or pending session reservation.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	ClientName  string    `bson:"client_name" json:"clientName"`    // Person attending the session
	TrainerID   string    `bson:"trainer_id" json:"trainerId"`      // Trainer who was booked
	TrainerName string    `bson:"trainer_name" json:"trainerName"`  // Denormalized display copy
	Date        time.Time `bson:"date" json:"date"`                 // Calendar date of the session; time-of-day is ignored for matching
	Time        string    `bson:"time" json:"time"`                 // Slot time "HH:MM"
	Duration    int       `bson:"duration" json:"duration"`         // Minutes, within [MinDurationMinutes, MaxDurationMinutes]
	Status      string    `bson:"status" json:"status"`             // "confirmed", "pending" or "cancelled"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`      // Timestamp when the booking was persisted
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
