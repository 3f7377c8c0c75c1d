package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nivelfit/models"
	"nivelfit/services/booking"
	"nivelfit/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const trainersCacheKey = "trainers:all"
const trainersCacheTTL = 5 * time.Minute

// TrainerHandler serves trainer and schedule endpoints.
type TrainerHandler struct {
	Service     booking.BookingService
	CacheClient *redis.Client
}

// NewTrainerHandler constructs a TrainerHandler.
func NewTrainerHandler(svc booking.BookingService, cache *redis.Client) *TrainerHandler {
	return &TrainerHandler{Service: svc, CacheClient: cache}
}

// GetTrainersHandler lists all trainers. Trainers rarely change, so the
// response is cached briefly in Redis.
func (h *TrainerHandler) GetTrainersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := context.Background()

	if h.CacheClient != nil {
		if cached, err := h.CacheClient.Get(ctx, trainersCacheKey).Result(); err == nil {
			var trainers []models.Trainer
			if err := json.Unmarshal([]byte(cached), &trainers); err == nil {
				c.JSON(http.StatusOK, gin.H{"trainers": trainers})
				return
			}
		}
	}

	trainers, err := h.Service.GetTrainers()
	if err != nil {
		logger.Error("Failed to fetch trainers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainers", "message": err.Error()})
		return
	}

	if h.CacheClient != nil {
		if data, err := json.Marshal(trainers); err == nil {
			h.CacheClient.Set(ctx, trainersCacheKey, data, trainersCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// GetTrainerByIDHandler returns a single trainer.
func (h *TrainerHandler) GetTrainerByIDHandler(c *gin.Context) {
	trainerID := c.Param("id")

	trainer, err := h.Service.GetTrainerByID(trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainer", "message": err.Error()})
		return
	}
	if trainer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

// GetAvailableSlotsHandler resolves the bookable times for a trainer on a
// date supplied as ?date=YYYY-MM-DD.
func (h *TrainerHandler) GetAvailableSlotsHandler(c *gin.Context) {
	trainerID := c.Param("id")
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(trainerID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve availability", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainerId": trainerID, "date": dateParam, "slots": slots})
}

// GetScheduleHandler returns a trainer's weekly schedule; a trainer without
// one gets a null schedule, not an error.
func (h *TrainerHandler) GetScheduleHandler(c *gin.Context) {
	trainerID := c.Param("id")

	schedule, err := h.Service.GetSchedule(trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// SaveScheduleHandler replaces a trainer's weekly schedule wholesale.
func (h *TrainerHandler) SaveScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	trainerID := c.Param("id")

	var req models.TrainerSchedule
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.TrainerID = trainerID

	saved, err := h.Service.SaveSchedule(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "schedule": saved})
}
