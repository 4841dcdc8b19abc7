package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roomly/services/apperr"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// availabilityResult is the cached/returned shape of an availability probe.
type availabilityResult struct {
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
	Conflict  *interval `json:"conflict,omitempty"`
}

type interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CheckAvailabilityHandler reports whether a slot on a resource can be booked
// right now. Results are cached briefly in Redis; a booking landing between
// probe and confirm is still caught by the transactional create.
func CheckAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	resourceID := c.Param("id")

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing start; expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing end; expected RFC3339"})
		return
	}

	ctx := c.Request.Context()
	cache := utils.GetCacheClient()
	cacheKey := fmt.Sprintf("%s%s:%d:%d", utils.AvailabilityCachePrefix, resourceID, start.Unix(), end.Unix())

	if cached, cerr := cache.Get(ctx, cacheKey).Result(); cerr == nil {
		var result availabilityResult
		if json.Unmarshal([]byte(cached), &result) == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	} else if cerr != redis.Nil {
		logger.Warn("availability cache lookup failed", zap.Error(cerr))
	}

	result := availabilityResult{Available: true}
	if err := BookingService.CheckAvailability(ctx, resourceID, start, end); err != nil {
		e, ok := apperr.As(err)
		if !ok || (e.Kind != apperr.KindBusiness && e.Kind != apperr.KindConflict) {
			writeError(c, err)
			return
		}
		result.Available = false
		result.Reason = e.Message
		if e.Conflicting != nil {
			result.Conflict = &interval{Start: e.Conflicting.Start, End: e.Conflicting.End}
		}
	}

	if data, merr := json.Marshal(result); merr == nil {
		if cerr := cache.Set(ctx, cacheKey, data, utils.AvailabilityCacheTTL).Err(); cerr != nil {
			logger.Warn("availability cache write failed", zap.Error(cerr))
		}
	}
	c.JSON(http.StatusOK, result)
}

// ResourceScheduleHandler lists the occupying reservations on a resource in a
// time window, for rendering calendars. Defaults to the next seven days.
func ResourceScheduleHandler(c *gin.Context) {
	resourceID := c.Param("id")

	from := time.Now().UTC()
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from; expected RFC3339"})
			return
		}
		from = parsed
	}
	to := from.Add(7 * 24 * time.Hour)
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to; expected RFC3339"})
			return
		}
		to = parsed
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before to"})
		return
	}

	schedule, err := BookingService.ResourceSchedule(c.Request.Context(), resourceID, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resourceId": resourceID, "reservations": schedule})
}
