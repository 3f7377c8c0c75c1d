package handlers

import (
	"context"
	"net/http"

	"nivelfit/database/repository"
	"nivelfit/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StoreHandler exposes demo-data management.
type StoreHandler struct {
	Store       *repository.Store
	CacheClient *redis.Client
}

// NewStoreHandler constructs a StoreHandler.
func NewStoreHandler(store *repository.Store, cache *redis.Client) *StoreHandler {
	return &StoreHandler{Store: store, CacheClient: cache}
}

// ResetHandler wipes all persisted data and reseeds the demo set.
func (h *StoreHandler) ResetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if err := h.Store.Clear(); err != nil {
		logger.Error("Failed to clear store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear store", "message": err.Error()})
		return
	}
	if err := h.Store.Initialize(); err != nil {
		logger.Error("Failed to reseed store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reseed store", "message": err.Error()})
		return
	}
	if h.CacheClient != nil {
		h.CacheClient.Del(context.Background(), trainersCacheKey)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store reset to demo data"})
}
