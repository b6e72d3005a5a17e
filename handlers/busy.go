package handlers

import (
	"fmt"
	"net/http"
	"time"

	busyRepo "meetsync/database/repository/busy"
	"meetsync/models"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

// BusyHandler manages the stand-in calendar store: participants' busy
// periods as synced from their upstream calendars.
type BusyHandler struct {
	Repo busyRepo.BusyPeriodRepository
}

func NewBusyHandler(repo busyRepo.BusyPeriodRepository) *BusyHandler {
	return &BusyHandler{Repo: repo}
}

type busyPayload struct {
	Periods []models.TimeInterval `json:"periods" binding:"required"`
}

// Replace handles PUT /api/participants/:id/busy with a full calendar snapshot.
func (h *BusyHandler) Replace(c *gin.Context) {
	h.write(c, true)
}

// Add handles POST /api/participants/:id/busy with incremental periods.
func (h *BusyHandler) Add(c *gin.Context) {
	h.write(c, false)
}

func (h *BusyHandler) write(c *gin.Context, replace bool) {
	ownerID := c.Param("id")

	var payload busyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	periods := make([]models.BusyPeriod, 0, len(payload.Periods))
	for i, iv := range payload.Periods {
		if !iv.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid busy period",
				"details": fmt.Sprintf("period %d has end at or before start", i),
			})
			return
		}
		periods = append(periods, models.BusyPeriod{
			OwnerID: ownerID,
			Start:   iv.Start.UTC(),
			End:     iv.End.UTC(),
		})
	}

	var err error
	if replace {
		err = h.Repo.ReplaceForOwner(c.Request.Context(), ownerID, periods)
	} else {
		err = h.Repo.AddForOwner(c.Request.Context(), ownerID, periods)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store busy periods", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ownerId": ownerID, "stored": len(periods)})
}

// List handles GET /api/participants/:id/busy?from=&to= (RFC 3339).
func (h *BusyHandler) List(c *gin.Context) {
	ownerID := c.Param("id")
	now := time.Now().UTC()

	window := models.TimeInterval{Start: now, End: now.AddDate(0, 0, 30)}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp", "details": err.Error()})
			return
		}
		window.Start = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp", "details": err.Error()})
			return
		}
		window.End = t
	}
	if !window.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must be after 'from'"})
		return
	}

	periods, err := h.Repo.GetByOwner(c.Request.Context(), ownerID, window)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch busy periods", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ownerId": ownerID, "periods": periods})
}
