package services

import (
	"testing"

	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/tripstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeTable(t *testing.T) {
	want := map[models.TransactionType][2]models.TripStatus{
		models.TransactionTypeDriverServicePayment: {models.TripStatusAwaitingOwnerPayment, models.TripStatusReadyForVehicleHandover},
		models.TransactionTypeOwnerPayout:          {models.TripStatusAwaitingFinalProviderPayout, models.TripStatusAwaitingFinalDriverPayout},
		models.TransactionTypeDriverPayout:         {models.TripStatusAwaitingFinalDriverPayout, models.TripStatusCompleted},
	}
	require.Len(t, cascades, len(want))

	for typ, pair := range want {
		rule, ok := cascades[typ]
		require.True(t, ok, typ)
		assert.Equal(t, pair[0], rule.requires, typ)
		assert.Equal(t, pair[1], rule.next, typ)
		assert.True(t, tripstate.IsValidTransition(rule.requires, rule.next), typ)
	}

	assert.NotNil(t, cascades[models.TransactionTypeDriverServicePayment].also)
	assert.Nil(t, cascades[models.TransactionTypeOwnerPayout].also)
	assert.Nil(t, cascades[models.TransactionTypeDriverPayout].also)
}

func TestCascadeTable_NoRuleForPlainTypes(t *testing.T) {
	for _, typ := range []models.TransactionType{
		models.TransactionTypeTopup,
		models.TransactionTypeWithdrawal,
		models.TransactionTypePayment,
	} {
		_, ok := cascades[typ]
		assert.False(t, ok, typ)
	}
}
