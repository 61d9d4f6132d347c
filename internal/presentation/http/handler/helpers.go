package handler

import (
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/enum"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// parseDate accepts the console's date formats: yyyy-mm-dd or RFC3339.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseWindow resolves the period/from/to query triple used by the stats,
// bill listing and export endpoints.
func parseWindow(periodStr, fromStr, toStr string) (enum.Period, time.Time, time.Time, bool) {
	period, err := enum.ParsePeriod(periodStr)
	if err != nil {
		return "", time.Time{}, time.Time{}, false
	}
	from, ok := parseDate(fromStr)
	if !ok {
		return "", time.Time{}, time.Time{}, false
	}
	to, ok := parseDate(toStr)
	if !ok {
		return "", time.Time{}, time.Time{}, false
	}
	// from/to without an explicit period means a custom window
	if period != enum.PeriodCustom && (!from.IsZero() || !to.IsZero()) && periodStr == "" {
		period = enum.PeriodCustom
	}
	return period, from, to, true
}
