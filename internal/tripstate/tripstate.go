// Package tripstate holds the trip lifecycle transition table.
//
// Every forward state has exactly one predecessor. CANCELLED is reachable from
// any non-terminal state and DELETED only from CREATED. COMPLETED, CANCELLED and
// DELETED are terminal.
package tripstate

import "github.com/sbilibin2017/gw-trip-ledger/internal/models"

// lifecycle lists the forward path of a trip; each entry is the only valid successor of the previous one.
var lifecycle = []models.TripStatus{
	models.TripStatusCreated,
	models.TripStatusLookingForDriver,
	models.TripStatusPendingDriverAssignment,
	models.TripStatusReadyForContract,
	models.TripStatusAwaitingDriverContract,
	models.TripStatusAwaitingContractSignature,
	models.TripStatusAwaitingOwnerPayment,
	models.TripStatusReadyForVehicleHandover,
	models.TripStatusVehicleHandover,
	models.TripStatusMovingToPickup,
	models.TripStatusLoading,
	models.TripStatusInTransit,
	models.TripStatusUnloading,
	models.TripStatusDelivered,
	models.TripStatusReturningVehicle,
	models.TripStatusAwaitingFinalProviderPayout,
	models.TripStatusAwaitingFinalDriverPayout,
	models.TripStatusCompleted,
}

var terminal = map[models.TripStatus]struct{}{
	models.TripStatusCompleted: {},
	models.TripStatusCancelled: {},
	models.TripStatusDeleted:   {},
}

// transitions is the adjacency table built once from lifecycle.
var transitions = buildTransitions()

func buildTransitions() map[models.TripStatus]map[models.TripStatus]struct{} {
	table := make(map[models.TripStatus]map[models.TripStatus]struct{}, len(lifecycle)+2)
	for i, status := range lifecycle {
		if _, ok := terminal[status]; ok {
			continue
		}
		next := map[models.TripStatus]struct{}{
			lifecycle[i+1]:            {},
			models.TripStatusCancelled: {},
		}
		table[status] = next
	}
	table[models.TripStatusCreated][models.TripStatusDeleted] = struct{}{}
	return table
}

// IsValidTransition reports whether a trip may move from current to next.
func IsValidTransition(current, next models.TripStatus) bool {
	_, ok := transitions[current][next]
	return ok
}

// IsTerminal reports whether no transition out of status exists.
func IsTerminal(status models.TripStatus) bool {
	_, ok := terminal[status]
	return ok
}

// IsKnown reports whether status belongs to the trip lifecycle.
func IsKnown(status models.TripStatus) bool {
	if _, ok := terminal[status]; ok {
		return true
	}
	_, ok := transitions[status]
	return ok
}

// Successors returns the statuses reachable from status in one step.
func Successors(status models.TripStatus) []models.TripStatus {
	next := transitions[status]
	out := make([]models.TripStatus, 0, len(next))
	for _, candidate := range All() {
		if _, ok := next[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

// All returns every trip status.
func All() []models.TripStatus {
	out := make([]models.TripStatus, 0, len(lifecycle)+2)
	out = append(out, lifecycle...)
	return append(out, models.TripStatusCancelled, models.TripStatusDeleted)
}
