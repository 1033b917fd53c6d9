package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkSessionStatus is the state of a driver work session.
type WorkSessionStatus string

const (
	WorkSessionStatusInProgress WorkSessionStatus = "IN_PROGRESS"
	WorkSessionStatusCompleted  WorkSessionStatus = "COMPLETED"
)

// DriverWorkSessionDB represents a driver's duty interval.
// At most one row per driver may be IN_PROGRESS; the database enforces it with a partial unique index.
type DriverWorkSessionDB struct {
	SessionID       uuid.UUID         `json:"session_id" db:"session_id"`
	DriverID        uuid.UUID         `json:"driver_id" db:"driver_id"`
	TripID          *uuid.UUID        `json:"trip_id,omitempty" db:"trip_id"`
	StartTime       time.Time         `json:"start_time" db:"start_time"`
	EndTime         *time.Time        `json:"end_time,omitempty" db:"end_time"` // nil while the session is open
	Status          WorkSessionStatus `json:"status" db:"status"`
	DurationInHours float64           `json:"duration_in_hours" db:"duration_in_hours"`
}
