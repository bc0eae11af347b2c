package services_test

import (
	"testing"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDataGenerator_DeterministicWithSeed(t *testing.T) {
	gen := services.NewAccountDataGenerator()
	opts := models.MockDataOptions{Users: 10, Seed: 365}

	first := gen.GenerateRecords(opts)
	second := gen.GenerateRecords(opts)

	require.NotEmpty(t, first)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].TradingAccountID, second[i].TradingAccountID)
		assert.Equal(t, first[i].UserEmail, second[i].UserEmail)
		assert.True(t, first[i].Balance.Equal(second[i].Balance))
	}

	other := gen.GenerateRecords(models.MockDataOptions{Users: 10, Seed: 366})
	assert.NotEqual(t, first[0].TradingAccountID, other[0].TradingAccountID)
}

func TestAccountDataGenerator_Shape(t *testing.T) {
	gen := services.NewAccountDataGenerator()
	opts := models.MockDataOptions{Users: 40, MaxCSPPerUser: 2, MaxTradingPerCSP: 3, Seed: 7}

	records := gen.GenerateRecords(opts)

	users := map[string]bool{}
	cspPerUser := map[string]map[string]int{}
	for _, r := range records {
		require.NoError(t, r.Validate())
		assert.True(t, models.IsValidConnectionStatus(r.Status), r.Status)
		assert.True(t, r.Balance.GreaterThan(decimal.Zero))
		assert.NotEmpty(t, r.TradingAccountNumber)

		users[r.UserID] = true
		if cspPerUser[r.UserID] == nil {
			cspPerUser[r.UserID] = map[string]int{}
		}
		cspPerUser[r.UserID][r.CSPAccountID]++
	}

	assert.Len(t, users, 40)
	for userID, csps := range cspPerUser {
		assert.LessOrEqual(t, len(csps), 2, userID)
		for _, trading := range csps {
			assert.GreaterOrEqual(t, trading, 1)
			assert.LessOrEqual(t, trading, 3)
		}
	}
}

func TestAccountDataGenerator_IncompleteUsers(t *testing.T) {
	gen := services.NewAccountDataGenerator()

	complete := gen.GenerateRecords(models.MockDataOptions{Users: 20, IncompleteUserRate: 0, Seed: 1})
	assert.Len(t, services.BuildHierarchy(complete), 20)

	incomplete := gen.GenerateRecords(models.MockDataOptions{Users: 20, IncompleteUserRate: 1, Seed: 1})
	require.NotEmpty(t, incomplete)
	assert.Empty(t, services.BuildHierarchy(incomplete))
}

func TestAccountDataGenerator_InactiveCSPIsDisconnected(t *testing.T) {
	records := services.NewAccountDataGenerator().GenerateRecords(models.MockDataOptions{Users: 50, Seed: 99})

	for _, r := range records {
		if r.CSPStatus == models.CSPStatusInactive {
			assert.Equal(t, string(models.ConnectionStatusDisconnected), r.Status)
		}
	}
}
