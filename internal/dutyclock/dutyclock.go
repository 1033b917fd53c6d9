// Package dutyclock computes how long a driver has been on duty today and
// during the current Monday-based week, and whether another session may start.
package dutyclock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

// Duty caps in hours.
const (
	DailyLimitHours  = 10.0
	WeeklyLimitHours = 48.0
)

// Result is the outcome of an eligibility evaluation.
type Result struct {
	HoursToday    float64 `json:"hours_today"`
	HoursThisWeek float64 `json:"hours_this_week"`
	CanDrive      bool    `json:"can_drive"`
	Message       string  `json:"message"`
}

// DayWindow returns [midnight(now), midnight(now)+24h).
func DayWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// WeekWindow returns [most recent Monday 00:00, following Monday 00:00).
func WeekWindow(now time.Time) (start, end time.Time) {
	midnight, _ := DayWindow(now)
	offset := (7 + int(now.Weekday()) - int(time.Monday)) % 7
	start = midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// Evaluate sums the driver's session time that falls inside the day and week
// windows around now and applies the daily cap before the weekly one.
// Open sessions count until now. Sessions of other drivers are ignored.
func Evaluate(driverID uuid.UUID, sessions []models.DriverWorkSessionDB, now time.Time) Result {
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)

	var today, week time.Duration
	for _, s := range sessions {
		if s.DriverID != driverID {
			continue
		}
		end := now
		if s.EndTime != nil {
			end = *s.EndTime
		}
		if !s.StartTime.Before(weekEnd) || !end.After(weekStart) {
			continue
		}
		today += overlap(s.StartTime, end, dayStart, dayEnd)
		week += overlap(s.StartTime, end, weekStart, weekEnd)
	}

	res := Result{
		HoursToday:    today.Hours(),
		HoursThisWeek: week.Hours(),
	}
	switch {
	case res.HoursToday >= DailyLimitHours:
		res.Message = fmt.Sprintf("daily limit reached: %.2fh driven today, limit is %.0fh", res.HoursToday, DailyLimitHours)
	case res.HoursThisWeek >= WeeklyLimitHours:
		res.Message = fmt.Sprintf("weekly limit reached: %.2fh driven this week, limit is %.0fh", res.HoursThisWeek, WeeklyLimitHours)
	default:
		res.CanDrive = true
		res.Message = "driver is within duty limits"
	}
	return res
}

// overlap is the length of [start, end) ∩ [windowStart, windowEnd), never negative.
func overlap(start, end, windowStart, windowEnd time.Time) time.Duration {
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	if d := end.Sub(start); d > 0 {
		return d
	}
	return 0
}
