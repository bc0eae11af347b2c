package services_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradebot365-admin/internal/config"
	"tradebot365-admin/internal/database"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
	"tradebot365-admin/internal/services"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WriteThroughAccountManagerSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	repo      repositories.AccountRecordRepositoryInterface
	server    *httptest.Server
	handler   http.HandlerFunc
	hierarchy services.AccountHierarchyServiceInterface
	actions   services.AccountActionServiceInterface
}

func TestWriteThroughAccountManagerSuite(t *testing.T) {
	suite.Run(t, new(WriteThroughAccountManagerSuite))
}

func (s *WriteThroughAccountManagerSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewAccountRecordRepository(s.db.DB)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	actionLogger := services.NewActionLogger(quiet)

	s.hierarchy = services.NewAccountHierarchyService(s.repo, cache.New(time.Minute, time.Minute), metrics, actionLogger, services.HierarchyConfig{})

	remote := services.NewAccountManagerClient(&config.AccountManagerConfig{
		BaseURL: s.server.URL,
		Timeout: 2 * time.Second,
	}, quiet)
	s.actions = services.NewAccountActionService(
		services.NewWriteThroughAccountManager(remote, s.repo, quiet),
		s.hierarchy,
		services.NewAuditService(repositories.NewAuditLogRepository(s.db.DB)),
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		metrics,
		actionLogger,
	)

	s.Require().NoError(s.repo.CreateBatch(s.ctx, []models.FlatAccountRecord{
		{UserID: "U1", UserEmail: "a@x.com", CSPAccountID: "C1", TradingAccountID: "T1", Balance: decimal.NewFromInt(100), IsLive: true, Status: "Connected"},
		{UserID: "U1", UserEmail: "a@x.com", CSPAccountID: "C1", TradingAccountID: "T2", Balance: decimal.NewFromInt(50), Status: "Disconnected"},
	}))
}

func (s *WriteThroughAccountManagerSuite) TearDownTest() {
	s.server.Close()
	database.CleanupTestDB(s.T(), s.db)
}

// tradingAccounts returns the trading accounts of U1 as the dashboard shows them
func (s *WriteThroughAccountManagerSuite) tradingAccounts() map[string]models.TradingAccount {
	page, err := s.hierarchy.GetHierarchyPage(s.ctx, models.AccountHierarchyQuery{Page: 1})
	s.Require().NoError(err)
	s.Require().Len(page.Users, 1)

	accounts := make(map[string]models.TradingAccount)
	for _, csp := range page.Users[0].CSPAccounts {
		for _, ta := range csp.TradingAccounts {
			accounts[ta.ID] = ta
		}
	}
	return accounts
}

func (s *WriteThroughAccountManagerSuite) TestToggleConnection_ShowsInHierarchy() {
	s.Equal("Connected", s.tradingAccounts()["T1"].Status)

	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/trading-accounts/T1/toggle-connection", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"data":{"user_id":"U1","user_email":"a@x.com","csp_account_id":"C1","trading_account_id":"T1","balance":"100","is_live":true,"status":"Disconnected"}}`)
	}

	account, err := s.actions.ToggleConnection(s.ctx, "T1", uuid.New(), "10.0.0.1", "test")
	s.Require().NoError(err)
	s.Equal("Disconnected", account.Status)

	s.Equal("Disconnected", s.tradingAccounts()["T1"].Status)
}

func (s *WriteThroughAccountManagerSuite) TestEditTradingAccount_ShowsInHierarchy() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"csp_account_id":"C1","trading_account_id":"T2","trading_account_number":"7001","balance":"875.25","status":"Disconnected"}}`)
	}

	balance := decimal.RequireFromString("875.25")
	_, err := s.actions.EditTradingAccount(s.ctx, "T2", models.TradingAccountEdit{Balance: &balance}, uuid.New(), "", "")
	s.Require().NoError(err)

	updated := s.tradingAccounts()["T2"]
	s.True(balance.Equal(updated.Balance))
	s.Equal("7001", updated.Number)
}

func (s *WriteThroughAccountManagerSuite) TestDeleteTradingAccount_ShowsInHierarchy() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	s.Require().NoError(s.actions.DeleteTradingAccount(s.ctx, "T1", uuid.New(), "", ""))

	accounts := s.tradingAccounts()
	s.NotContains(accounts, "T1")
	s.Contains(accounts, "T2")
}

func (s *WriteThroughAccountManagerSuite) TestRemoteFailure_LeavesStoreUntouched() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":{"code":"NOT_FOUND","message":"missing"}}`)
	}

	_, err := s.actions.ToggleConnection(s.ctx, "T1", uuid.New(), "", "")
	s.ErrorIs(err, services.ErrTradingAccountNotFound)

	s.Equal("Connected", s.tradingAccounts()["T1"].Status)
}
