package services

import (
	"fmt"

	"tradebot365-admin/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type accountDataGenerator struct {
	cspPool []cspTemplate
}

type cspTemplate struct {
	name    string
	apiName string
}

const (
	minLiveBalance = 500
	maxLiveBalance = 250000
	minDemoBalance = 10000
	maxDemoBalance = 100000
)

var (
	connectionStatusWeights = []models.ConnectionStatus{
		models.ConnectionStatusConnected,
		models.ConnectionStatusConnected,
		models.ConnectionStatusConnected,
		models.ConnectionStatusConnected,
		models.ConnectionStatusDisconnected,
		models.ConnectionStatusDisconnected,
		models.ConnectionStatusError,
		models.ConnectionStatusPending,
	}

	cspStatuses = []string{
		models.CSPStatusActive,
		models.CSPStatusActive,
		models.CSPStatusActive,
		models.CSPStatusInactive,
	}

	tradingAccountTypes = []string{
		models.TradingAccountTypeStandard,
		models.TradingAccountTypeECN,
		models.TradingAccountTypeProp,
	}
)

// NewAccountDataGenerator creates a generator of mock flat account rows
func NewAccountDataGenerator() AccountDataGeneratorInterface {
	return &accountDataGenerator{
		cspPool: initializeCSPPool(),
	}
}

func initializeCSPPool() []cspTemplate {
	return []cspTemplate{
		{"IC Markets", "MetaTrader 5"},
		{"IC Markets", "cTrader"},
		{"Pepperstone", "MetaTrader 5"},
		{"Pepperstone", "TradingView"},
		{"FTMO", "MetaTrader 5"},
		{"FTMO", "DXtrade"},
		{"The5ers", "MetaTrader 5"},
		{"FundedNext", "MatchTrader"},
		{"Tradovate", "Tradovate API"},
		{"Interactive Brokers", "TWS API"},
		{"OANDA", "v20 REST"},
		{"Binance", "Binance Futures"},
		{"Bybit", "Bybit V5"},
		{"TopStep", "TradeLocker"},
	}
}

// GenerateRecords returns one flat row per generated trading account. Rows of a user are
// contiguous, and a share of users given by IncompleteUserRate have no email, so their rows
// never reach the hierarchy. The same non-zero seed always yields the same rows.
func (g *accountDataGenerator) GenerateRecords(opts models.MockDataOptions) []models.FlatAccountRecord {
	opts = opts.WithDefaults()
	f := gofakeit.New(opts.Seed)

	records := make([]models.FlatAccountRecord, 0, opts.Users*opts.MaxCSPPerUser)
	for u := 0; u < opts.Users; u++ {
		userID := fmt.Sprintf("usr_%s", f.LetterN(10))
		userName := f.Name()
		userEmail := f.Email()
		if f.Float64() < opts.IncompleteUserRate {
			userEmail = ""
		}

		cspCount := f.IntRange(1, opts.MaxCSPPerUser)
		for c := 0; c < cspCount; c++ {
			tmpl := g.cspPool[f.IntRange(0, len(g.cspPool)-1)]
			cspID := fmt.Sprintf("csp_%s", f.LetterN(8))
			cspStatus := f.RandomString(cspStatuses)

			tradingCount := f.IntRange(1, opts.MaxTradingPerCSP)
			for t := 0; t < tradingCount; t++ {
				isLive := f.Bool()
				records = append(records, models.FlatAccountRecord{
					UserID:               userID,
					UserName:             userName,
					UserEmail:            userEmail,
					CSPAccountID:         cspID,
					CSPAccountName:       tmpl.name,
					CSPStatus:            cspStatus,
					APIName:              tmpl.apiName,
					TradingAccountID:     fmt.Sprintf("ta_%s", f.LetterN(10)),
					TradingAccountNumber: f.Numerify("########"),
					TradingAccountType:   f.RandomString(tradingAccountTypes),
					Balance:              generateBalance(f, isLive),
					IsLive:               isLive,
					Status:               string(generateConnectionStatus(f, cspStatus)),
				})
			}
		}
	}

	return records
}

func generateBalance(f *gofakeit.Faker, isLive bool) decimal.Decimal {
	if isLive {
		return decimal.NewFromFloat(f.Float64Range(minLiveBalance, maxLiveBalance)).Round(2)
	}
	return decimal.NewFromFloat(f.Float64Range(minDemoBalance, maxDemoBalance)).Round(2)
}

// generateConnectionStatus keeps accounts under an inactive CSP disconnected
func generateConnectionStatus(f *gofakeit.Faker, cspStatus string) models.ConnectionStatus {
	if cspStatus == models.CSPStatusInactive {
		return models.ConnectionStatusDisconnected
	}
	return connectionStatusWeights[f.IntRange(0, len(connectionStatusWeights)-1)]
}
