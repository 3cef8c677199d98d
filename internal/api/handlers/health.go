package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]interface{}),
	}

	overallHealthy := true

	dbStatus := h.checkDatabase(c.Request.Context())
	response.Services["postgres"] = dbStatus
	if !dbStatus["healthy"].(bool) {
		overallHealthy = false
	}

	redisStatus := h.checkRedis(c.Request.Context())
	response.Services["redis"] = redisStatus
	if !redisStatus["healthy"].(bool) {
		overallHealthy = false
	}

	if overallHealthy {
		response.Status = "healthy"
		c.JSON(http.StatusOK, response)
	} else {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) checkDatabase(ctx context.Context) map[string]interface{} {
	status := map[string]interface{}{
		"service": "postgres",
		"healthy": false,
	}

	if h.db == nil {
		status["error"] = "Database client not initialized"
		return status
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		status["error"] = err.Error()
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		status["error"] = err.Error()
		return status
	}

	status["healthy"] = true
	status["message"] = "Connected"
	return status
}

func (h *HealthHandler) checkRedis(ctx context.Context) map[string]interface{} {
	status := map[string]interface{}{
		"service": "redis",
		"healthy": false,
	}

	if h.redisClient == nil {
		status["error"] = "Redis client not initialized"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		status["error"] = err.Error()
		return status
	}

	status["healthy"] = true
	status["responseTime"] = time.Since(start).String()
	return status
}
