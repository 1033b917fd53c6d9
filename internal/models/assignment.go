package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentType distinguishes the lead driver from a co-driver.
type AssignmentType string

const (
	AssignmentTypePrimary   AssignmentType = "PRIMARY"
	AssignmentTypeSecondary AssignmentType = "SECONDARY"
)

// PaymentStatus tracks whether the driver's service fee was paid by the owner.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// TripDriverAssignmentDB binds a driver to a trip.
type TripDriverAssignmentDB struct {
	AssignmentID     uuid.UUID      `json:"assignment_id" db:"assignment_id"`
	TripID           uuid.UUID      `json:"trip_id" db:"trip_id"`
	DriverID         uuid.UUID      `json:"driver_id" db:"driver_id"`
	Type             AssignmentType `json:"type" db:"type"`
	AssignmentStatus string         `json:"assignment_status" db:"assignment_status"`
	PaymentStatus    PaymentStatus  `json:"payment_status" db:"payment_status"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}
