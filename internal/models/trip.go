package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is an operational state of a trip.
type TripStatus string

// Trip statuses in lifecycle order, followed by the exit states.
const (
	TripStatusCreated                     TripStatus = "CREATED"
	TripStatusLookingForDriver            TripStatus = "LOOKING_FOR_DRIVER"
	TripStatusPendingDriverAssignment     TripStatus = "PENDING_DRIVER_ASSIGNMENT"
	TripStatusReadyForContract            TripStatus = "READY_FOR_CONTRACT"
	TripStatusAwaitingDriverContract      TripStatus = "AWAITING_DRIVER_CONTRACT"
	TripStatusAwaitingContractSignature   TripStatus = "AWAITING_CONTRACT_SIGNATURE"
	TripStatusAwaitingOwnerPayment        TripStatus = "AWAITING_OWNER_PAYMENT"
	TripStatusReadyForVehicleHandover     TripStatus = "READY_FOR_VEHICLE_HANDOVER"
	TripStatusVehicleHandover             TripStatus = "VEHICLE_HANDOVER"
	TripStatusMovingToPickup              TripStatus = "MOVING_TO_PICKUP"
	TripStatusLoading                     TripStatus = "LOADING"
	TripStatusInTransit                   TripStatus = "IN_TRANSIT"
	TripStatusUnloading                   TripStatus = "UNLOADING"
	TripStatusDelivered                   TripStatus = "DELIVERED"
	TripStatusReturningVehicle            TripStatus = "RETURNING_VEHICLE"
	TripStatusAwaitingFinalProviderPayout TripStatus = "AWAITING_FINAL_PROVIDER_PAYOUT"
	TripStatusAwaitingFinalDriverPayout   TripStatus = "AWAITING_FINAL_DRIVER_PAYOUT"
	TripStatusCompleted                   TripStatus = "COMPLETED"
	TripStatusCancelled                   TripStatus = "CANCELLED"
	TripStatusDeleted                     TripStatus = "DELETED"
)

// TripDB represents a trip row in the database
type TripDB struct {
	TripID    uuid.UUID  `json:"trip_id" db:"trip_id"`
	OwnerID   uuid.UUID  `json:"owner_id" db:"owner_id"` // Cargo owner who created the trip
	Status    TripStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
