package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"meetsync/models"
	"meetsync/services/calendar"
	"meetsync/services/scheduling"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	proposeCachePrefix = "proposeResult:"
	proposeCacheTTL    = 60 * time.Second
)

// ScheduleHandler exposes the proposal engine directly, for callers that
// already hold a canonical SchedulingRequest.
type ScheduleHandler struct {
	Engine   scheduling.Engine
	Calendar calendar.Provider
	Cache    *redis.Client
}

func NewScheduleHandler(engine scheduling.Engine, provider calendar.Provider, cache *redis.Client) *ScheduleHandler {
	return &ScheduleHandler{
		Engine:   engine,
		Calendar: provider,
		Cache:    cache,
	}
}

// Propose handles POST /api/schedule/propose.
func (h *ScheduleHandler) Propose(c *gin.Context) {
	var req models.SchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	now := time.Now().UTC()
	cacheKey := proposeCacheKey(req, now)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var result models.ScheduleResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				c.JSON(http.StatusOK, result)
				return
			}
		}
	}

	horizonDays := req.HorizonDays
	if horizonDays <= 0 {
		horizonDays = 30
	}
	window := models.TimeInterval{
		Start: now,
		End:   now.Add(time.Duration(horizonDays) * 24 * time.Hour),
	}

	busy, err := h.Calendar.FetchBusyPeriods(c.Request.Context(), req.ParticipantIDs, window)
	if err != nil {
		// A failed calendar fetch must never be treated as a free calendar.
		utils.JSONError(c, http.StatusBadGateway, "calendar data unavailable", err.Error())
		return
	}

	result, err := h.Engine.Propose(req, busy)
	if err != nil {
		var ve *scheduling.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "field": ve.Field, "details": ve.Message})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute proposals", err.Error())
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			h.Cache.Set(c.Request.Context(), cacheKey, data, proposeCacheTTL)
		}
	}

	c.JSON(http.StatusOK, result)
}

// proposeCacheKey hashes the request together with a minute bucket, so
// identical retries within the bucket reuse the computed result while the
// moving "now" floor still advances.
func proposeCacheKey(req models.SchedulingRequest, now time.Time) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(append(data, []byte(now.Truncate(time.Minute).Format(time.RFC3339))...))
	return proposeCachePrefix + hex.EncodeToString(sum[:])
}
