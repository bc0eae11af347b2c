package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
	"tradebot365-admin/internal/services"
	"tradebot365-admin/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountActionServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	manager        *service_mocks.MockAccountManager
	hierarchy      *service_mocks.MockAccountHierarchyServiceInterface
	auditService   *service_mocks.MockAuditServiceInterface
	circuitBreaker *service_mocks.MockCircuitBreakerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	logger         *service_mocks.MockActionLoggerInterface
	service        services.AccountActionServiceInterface
	actor          uuid.UUID
}

func TestAccountActionServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountActionServiceTestSuite))
}

func (s *AccountActionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.manager = service_mocks.NewMockAccountManager(s.ctrl)
	s.hierarchy = service_mocks.NewMockAccountHierarchyServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.circuitBreaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = service_mocks.NewMockActionLoggerInterface(s.ctrl)
	s.actor = uuid.New()

	s.service = services.NewAccountActionService(
		s.manager,
		s.hierarchy,
		s.auditService,
		s.circuitBreaker,
		s.metrics,
		s.logger,
	)
}

func (s *AccountActionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountActionServiceTestSuite) record(tradingAccountID, status string) *models.FlatAccountRecord {
	return &models.FlatAccountRecord{
		UserID:               "U1",
		UserEmail:            gofakeit.Email(),
		CSPAccountID:         "C1",
		TradingAccountID:     tradingAccountID,
		TradingAccountNumber: gofakeit.Numerify("########"),
		Balance:              decimal.NewFromInt(1500),
		IsLive:               true,
		Status:               status,
	}
}

// expectForwarded sets the expectations of a successful forward of action
func (s *AccountActionServiceTestSuite) expectForwarded(action, tradingAccountID string) {
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.metrics.EXPECT().RecordProcessingTime(action, gomock.Any())
	s.circuitBreaker.EXPECT().RecordSuccess()
	s.hierarchy.EXPECT().Invalidate()
	s.metrics.EXPECT().IncrementCounter("account_action", map[string]string{"action": action, "status": "success"})
	s.logger.EXPECT().LogActionForwarded(gomock.Any(), action, tradingAccountID, gomock.Any())
}

// expectFailed sets the expectations of a forward the collaborator rejected
func (s *AccountActionServiceTestSuite) expectFailed(action, tradingAccountID string) {
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.metrics.EXPECT().RecordProcessingTime(action, gomock.Any())
	s.metrics.EXPECT().IncrementCounter("account_action", map[string]string{"action": action, "status": "failed"})
	s.logger.EXPECT().LogActionFailed(gomock.Any(), action, tradingAccountID, gomock.Any())
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_Success() {
	balance := decimal.NewFromInt(2500)
	edit := models.TradingAccountEdit{Balance: &balance}
	updated := s.record("T1", "Connected")
	updated.Balance = balance

	s.expectForwarded(services.ActionEditTradingAccount, "T1")
	s.manager.EXPECT().UpdateTradingAccount(s.ctx, "T1", edit).Return(updated, nil)
	s.auditService.EXPECT().LogTradingAccountAction(models.AuditActionTradingAccountUpdated, "T1", s.actor, "10.0.0.1", "test-agent", gomock.Any()).
		DoAndReturn(func(_, _ string, _ uuid.UUID, _, _ string, metadata models.JSONBMap) error {
			s.Contains(metadata, "balance")
			return nil
		})

	account, err := s.service.EditTradingAccount(s.ctx, " T1 ", edit, s.actor, "10.0.0.1", "test-agent")

	s.Require().NoError(err)
	s.Equal("T1", account.ID)
	s.True(balance.Equal(account.Balance))
	s.Equal("Connected", account.Status)
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_EmptyEdit() {
	_, err := s.service.EditTradingAccount(s.ctx, "T1", models.TradingAccountEdit{}, s.actor, "", "")
	s.ErrorIs(err, services.ErrNoChanges)
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_InvalidValues() {
	negative := decimal.NewFromInt(-1)
	_, err := s.service.EditTradingAccount(s.ctx, "T1", models.TradingAccountEdit{Balance: &negative}, s.actor, "", "")
	s.ErrorIs(err, models.ErrInvalidBalance)

	status := "Sleeping"
	_, err = s.service.EditTradingAccount(s.ctx, "T1", models.TradingAccountEdit{Status: &status}, s.actor, "", "")
	s.ErrorIs(err, models.ErrInvalidConnectionStatus)
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_BlankID() {
	number := "12345"
	_, err := s.service.EditTradingAccount(s.ctx, "   ", models.TradingAccountEdit{Number: &number}, s.actor, "", "")
	s.ErrorIs(err, services.ErrInvalidTradingAccountID)
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_NotFound() {
	number := "12345"
	edit := models.TradingAccountEdit{Number: &number}

	s.expectFailed(services.ActionEditTradingAccount, "T9")
	s.manager.EXPECT().UpdateTradingAccount(s.ctx, "T9", edit).Return(nil, repositories.ErrTradingAccountNotFound)
	s.circuitBreaker.EXPECT().RecordSuccess()

	_, err := s.service.EditTradingAccount(s.ctx, "T9", edit, s.actor, "", "")
	s.ErrorIs(err, services.ErrTradingAccountNotFound)
}

func (s *AccountActionServiceTestSuite) TestEditTradingAccount_CollaboratorFailure() {
	number := "12345"
	edit := models.TradingAccountEdit{Number: &number}
	cause := errors.New("connection reset")

	s.expectFailed(services.ActionEditTradingAccount, "T1")
	s.manager.EXPECT().UpdateTradingAccount(s.ctx, "T1", edit).Return(nil, cause)
	s.circuitBreaker.EXPECT().RecordFailure()

	_, err := s.service.EditTradingAccount(s.ctx, "T1", edit, s.actor, "", "")
	s.ErrorIs(err, cause)
	s.Contains(err.Error(), "account manager")
}

func (s *AccountActionServiceTestSuite) TestDeleteTradingAccount_Success() {
	s.expectForwarded(services.ActionDeleteTradingAccount, "T1")
	s.manager.EXPECT().DeleteTradingAccount(s.ctx, "T1").Return(nil)
	s.auditService.EXPECT().LogTradingAccountAction(models.AuditActionTradingAccountDeleted, "T1", s.actor, "", "", models.JSONBMap(nil)).Return(nil)

	s.NoError(s.service.DeleteTradingAccount(s.ctx, "T1", s.actor, "", ""))
}

func (s *AccountActionServiceTestSuite) TestDeleteTradingAccount_AuditFailureDoesNotFail() {
	s.expectForwarded(services.ActionDeleteTradingAccount, "T1")
	s.manager.EXPECT().DeleteTradingAccount(s.ctx, "T1").Return(nil)
	s.auditService.EXPECT().LogTradingAccountAction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("audit store down"))

	s.NoError(s.service.DeleteTradingAccount(s.ctx, "T1", s.actor, "", ""))
}

func (s *AccountActionServiceTestSuite) TestDeleteTradingAccount_NotFound() {
	s.expectFailed(services.ActionDeleteTradingAccount, "T9")
	s.manager.EXPECT().DeleteTradingAccount(s.ctx, "T9").Return(repositories.ErrTradingAccountNotFound)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.ErrorIs(s.service.DeleteTradingAccount(s.ctx, "T9", s.actor, "", ""), services.ErrTradingAccountNotFound)
}

func (s *AccountActionServiceTestSuite) TestToggleConnection_RejectedDoesNotTripBreaker() {
	rejected := fmt.Errorf("%w: account is locked", services.ErrActionRejected)

	s.expectFailed(services.ActionToggleConnection, "T1")
	s.manager.EXPECT().ToggleConnection(s.ctx, "T1").Return(nil, rejected)
	s.circuitBreaker.EXPECT().RecordSuccess()

	_, err := s.service.ToggleConnection(s.ctx, "T1", s.actor, "", "")
	s.ErrorIs(err, services.ErrActionRejected)
	s.Contains(err.Error(), "account is locked")
}

func (s *AccountActionServiceTestSuite) TestDeleteTradingAccount_CircuitOpen() {
	s.circuitBreaker.EXPECT().IsOpen().Return(true)
	s.metrics.EXPECT().IncrementCounter("circuit_breaker.open", map[string]string{"service": "account_manager"})
	s.metrics.EXPECT().IncrementCounter("account_action", map[string]string{"action": services.ActionDeleteTradingAccount, "status": "unavailable"})
	s.logger.EXPECT().LogActionFailed(gomock.Any(), services.ActionDeleteTradingAccount, "T1", services.ErrCircuitBreakerOpen.Error())

	s.ErrorIs(s.service.DeleteTradingAccount(s.ctx, "T1", s.actor, "", ""), services.ErrAccountManagerDown)
}

func (s *AccountActionServiceTestSuite) TestToggleConnection_Success() {
	toggled := s.record("T1", "Disconnected")

	s.expectForwarded(services.ActionToggleConnection, "T1")
	s.manager.EXPECT().ToggleConnection(s.ctx, "T1").Return(toggled, nil)
	s.logger.EXPECT().LogConnectionToggled(gomock.Any(), "T1", "Disconnected")
	s.auditService.EXPECT().LogTradingAccountAction(models.AuditActionTradingAccountToggled, "T1", s.actor, "", "",
		models.JSONBMap{"new_status": "Disconnected"}).Return(nil)

	account, err := s.service.ToggleConnection(s.ctx, "T1", s.actor, "", "")

	s.Require().NoError(err)
	s.Equal("Disconnected", account.Status)
	s.Equal(toggled.TradingAccountNumber, account.Number)
}

func (s *AccountActionServiceTestSuite) TestToggleConnection_BlankID() {
	_, err := s.service.ToggleConnection(s.ctx, "", s.actor, "", "")
	s.ErrorIs(err, services.ErrInvalidTradingAccountID)
}

func (s *AccountActionServiceTestSuite) TestGetActivity() {
	logs := []*models.AuditLog{{Action: models.AuditActionTradingAccountToggled}}
	s.auditService.EXPECT().GetTradingAccountActivity("T1", 0, 20).Return(logs, int64(1), nil)

	result, total, err := s.service.GetActivity(" T1", 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(result, 1)

	_, _, err = s.service.GetActivity("", 0, 20)
	s.ErrorIs(err, services.ErrInvalidTradingAccountID)
}

// The real circuit breaker opens after consecutive collaborator failures and then stops
// forwarding, while not-found answers never count against it.
func TestAccountActionService_CircuitBreakerIntegration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := service_mocks.NewMockAccountManager(ctrl)
	hierarchy := service_mocks.NewMockAccountHierarchyServiceInterface(ctrl)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	logger := service_mocks.NewMockActionLoggerInterface(ctrl)

	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().LogActionFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cb := services.NewCircuitBreaker(services.CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: 1 << 40, HalfOpenMaxSucc: 1})
	service := services.NewAccountActionService(manager, hierarchy, audit, cb, metrics, logger)
	ctx := context.Background()

	manager.EXPECT().DeleteTradingAccount(ctx, "T9").Return(repositories.ErrTradingAccountNotFound).Times(3)
	for i := 0; i < 3; i++ {
		if err := service.DeleteTradingAccount(ctx, "T9", uuid.Nil, "", ""); !errors.Is(err, services.ErrTradingAccountNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	}
	if cb.GetState() != models.CircuitBreakerClosed {
		t.Fatalf("not-found answers opened the breaker")
	}

	manager.EXPECT().DeleteTradingAccount(ctx, "T1").Return(errors.New("timeout")).Times(2)
	_ = service.DeleteTradingAccount(ctx, "T1", uuid.Nil, "", "")
	_ = service.DeleteTradingAccount(ctx, "T1", uuid.Nil, "", "")

	if err := service.DeleteTradingAccount(ctx, "T1", uuid.Nil, "", ""); !errors.Is(err, services.ErrAccountManagerDown) {
		t.Fatalf("expected account manager down, got %v", err)
	}
}
