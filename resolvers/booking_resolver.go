package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nivelfit/models"
	"nivelfit/services/booking"
	"nivelfit/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionTTL bounds how long an abandoned wizard session lingers in Redis.
const sessionTTL = 10 * time.Minute

// BookSessionInput is the unified input for the booking wizard flow.
type BookSessionInput struct {
	// If empty, a new session is started (trainer selection phase).
	SessionID string `json:"sessionID"`
	// Trainer the client picked.
	TrainerID string `json:"trainerId"`
	// Calendar date the client picked, "YYYY-MM-DD".
	Date string `json:"date"`
	// Set once the client confirms a time from the availability list.
	ConfirmedTime string `json:"confirmedTime"`
	ClientName    string `json:"clientName"`
	Duration      int    `json:"duration"`
}

// BookingSession is the wizard state cached between steps.
type BookingSession struct {
	TrainerID    string   `json:"trainerId"`
	TrainerName  string   `json:"trainerName"`
	Date         string   `json:"date"`
	Availability []string `json:"availability"`
}

// BookSessionResponse carries whichever stage output the flow produced.
type BookSessionResponse struct {
	SessionID    string           `json:"sessionID,omitempty"`
	Trainers     []models.Trainer `json:"trainers,omitempty"`
	Availability []string         `json:"availability,omitempty"`
	Booking      *models.Booking  `json:"booking,omitempty"`
}

// Resolver holds dependencies for the session-based booking flow.
type Resolver struct {
	BookingSvc  booking.BookingService
	CacheClient *redis.Client
}

// BookSession integrates trainer selection, availability resolution and
// booking confirmation behind a cached session, one step per call.
func (r *Resolver) BookSession(ctx context.Context, input BookSessionInput) (*BookSessionResponse, error) {
	logger := utils.GetLogger()
	resp := &BookSessionResponse{}

	// STEP 1: If no sessionID is provided, start a new session (trainer selection phase).
	if input.SessionID == "" {
		trainers, err := r.BookingSvc.GetTrainers()
		if err != nil {
			logger.Error("Trainer lookup failed", zap.Error(err))
			return nil, fmt.Errorf("trainer lookup failed: %w", err)
		}
		sessionID := uuid.New().String()
		sessionData, err := json.Marshal(BookingSession{})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal booking session: %w", err)
		}
		if err := r.CacheClient.Set(ctx, sessionID, sessionData, sessionTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache booking session: %w", err)
		}
		resp.SessionID = sessionID
		resp.Trainers = trainers
		return resp, nil
	}

	// STEP 2: Load existing session.
	sessionData, err := r.CacheClient.Get(ctx, input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired")
	}
	var session BookingSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}

	// STEP 3: Trainer or date selection changed; recalculate availability.
	if input.ConfirmedTime == "" {
		if input.TrainerID != "" {
			session.TrainerID = input.TrainerID
			if trainer, err := r.BookingSvc.GetTrainerByID(input.TrainerID); err == nil && trainer != nil {
				session.TrainerName = trainer.Name
			}
		}
		if input.Date != "" {
			session.Date = input.Date
		}
		if session.TrainerID == "" || session.Date == "" {
			return nil, fmt.Errorf("insufficient booking data provided")
		}

		date, err := parseSessionDate(session.Date)
		if err != nil {
			return nil, err
		}
		avail, err := r.BookingSvc.GetAvailableSlots(session.TrainerID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve availability: %w", err)
		}
		session.Availability = avail

		updated, err := json.Marshal(session)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal booking session: %w", err)
		}
		if err := r.CacheClient.Set(ctx, input.SessionID, updated, sessionTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache booking session: %w", err)
		}

		resp.SessionID = input.SessionID
		resp.Availability = session.Availability
		return resp, nil
	}

	// STEP 4: A confirmed time is provided; finalize the booking.
	if session.TrainerID == "" || session.Date == "" {
		return nil, fmt.Errorf("trainer or date not selected; cannot confirm booking")
	}
	date, err := parseSessionDate(session.Date)
	if err != nil {
		return nil, err
	}
	confirmed, err := r.BookingSvc.CreateBooking(models.BookingInput{
		ClientName:  input.ClientName,
		TrainerID:   session.TrainerID,
		TrainerName: session.TrainerName,
		Date:        date,
		Time:        input.ConfirmedTime,
		Duration:    input.Duration,
		Status:      models.StatusConfirmed,
	})
	if err != nil {
		logger.Error("Booking finalization failed", zap.Error(err))
		return nil, err
	}
	// Clear the session from cache.
	r.CacheClient.Del(ctx, input.SessionID)

	resp.Booking = confirmed
	return resp, nil
}

// CancelSession discards a wizard session without booking.
func (r *Resolver) CancelSession(ctx context.Context, sessionID string) error {
	if err := r.CacheClient.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func parseSessionDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session date %q: %w", s, err)
	}
	return date, nil
}
