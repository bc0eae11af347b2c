package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/services"
	"tradebot365-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountActionHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	actionService *service_mocks.MockAccountActionServiceInterface
	handler       *AccountActionHandler
	echo          *echo.Echo
	adminID       uuid.UUID
}

func (s *AccountActionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.actionService = service_mocks.NewMockAccountActionServiceInterface(s.ctrl)
	s.handler = NewAccountActionHandler(s.actionService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.adminID = uuid.New()
}

func (s *AccountActionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountActionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountActionHandlerSuite))
}

func (s *AccountActionHandlerSuite) createContextWithAuth(method, target string, body interface{}, accountID string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
	req.Header.Set("User-Agent", "dashboard-test")

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID)
	if userID != nil {
		c.Set("user_id", *userID)
	}

	return c, rec
}

func (s *AccountActionHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_Success() {
	body := map[string]interface{}{"balance": 1500.5, "status": "Disconnected"}
	updated := &models.TradingAccount{ID: "T1", Number: "1001", Balance: decimal.RequireFromString("1500.5"), Status: "Disconnected"}

	s.actionService.EXPECT().
		EditTradingAccount(gomock.Any(), "T1", gomock.Any(), s.adminID, "10.0.0.7", "dashboard-test").
		DoAndReturn(func(_ interface{}, _ string, edit models.TradingAccountEdit, _ uuid.UUID, _, _ string) (*models.TradingAccount, error) {
			s.Require().NotNil(edit.Balance)
			s.True(decimal.RequireFromString("1500.5").Equal(*edit.Balance))
			s.Require().NotNil(edit.Status)
			s.Equal("Disconnected", *edit.Status)
			s.Nil(edit.Number)
			return updated, nil
		})

	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/T1", body, "T1", &s.adminID)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"variant":"secondary"`)
	s.Contains(rec.Body.String(), `"mode":"demo"`)
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_InvalidStatus() {
	body := map[string]interface{}{"status": "Sleeping"}

	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/T1", body, "T1", &s.adminID)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_NegativeBalance() {
	body := map[string]interface{}{"balance": -10}

	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/T1", body, "T1", &s.adminID)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_NoChanges() {
	s.actionService.EXPECT().
		EditTradingAccount(gomock.Any(), "T1", models.TradingAccountEdit{}, s.adminID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNoChanges)

	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/T1", map[string]interface{}{}, "T1", &s.adminID)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("ACCOUNT_004", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_MissingParam() {
	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/", map[string]interface{}{}, " ", &s.adminID)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("ACCOUNT_003", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestEditTradingAccount_Unauthenticated() {
	c, rec := s.createContextWithAuth(http.MethodPut, "/admin/accounts/trading/T1", map[string]interface{}{}, "T1", nil)

	s.NoError(s.handler.EditTradingAccount(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestDeleteTradingAccount_Success() {
	s.actionService.EXPECT().
		DeleteTradingAccount(gomock.Any(), "T2", s.adminID, "10.0.0.7", "dashboard-test").
		Return(nil)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/admin/accounts/trading/T2", nil, "T2", &s.adminID)

	s.NoError(s.handler.DeleteTradingAccount(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Trading account deleted")
}

func (s *AccountActionHandlerSuite) TestDeleteTradingAccount_IgnoresUntrustedForwardedFor() {
	s.echo.IPExtractor = echo.ExtractIPFromXFFHeader()
	s.actionService.EXPECT().
		DeleteTradingAccount(gomock.Any(), "T2", s.adminID, "192.0.2.1", "dashboard-test").
		Return(nil)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/admin/accounts/trading/T2", nil, "T2", &s.adminID)

	s.NoError(s.handler.DeleteTradingAccount(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountActionHandlerSuite) TestDeleteTradingAccount_NotFound() {
	s.actionService.EXPECT().
		DeleteTradingAccount(gomock.Any(), "T404", s.adminID, gomock.Any(), gomock.Any()).
		Return(services.ErrTradingAccountNotFound)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/admin/accounts/trading/T404", nil, "T404", &s.adminID)

	s.NoError(s.handler.DeleteTradingAccount(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestDeleteTradingAccount_ManagerDown() {
	s.actionService.EXPECT().
		DeleteTradingAccount(gomock.Any(), "T1", s.adminID, gomock.Any(), gomock.Any()).
		Return(services.ErrAccountManagerDown)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/admin/accounts/trading/T1", nil, "T1", &s.adminID)

	s.NoError(s.handler.DeleteTradingAccount(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("ACCOUNT_007", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestToggleConnection_Success() {
	s.actionService.EXPECT().
		ToggleConnection(gomock.Any(), "T1", s.adminID, gomock.Any(), gomock.Any()).
		Return(&models.TradingAccount{ID: "T1", IsLive: true, Status: "Connected"}, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/admin/accounts/trading/T1/toggle-connection", nil, "T1", &s.adminID)

	s.NoError(s.handler.ToggleConnection(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Connection status changed to Connected")
	s.Contains(rec.Body.String(), `"variant":"success"`)
}

func (s *AccountActionHandlerSuite) TestToggleConnection_UnexpectedError() {
	s.actionService.EXPECT().
		ToggleConnection(gomock.Any(), "T1", s.adminID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	c, rec := s.createContextWithAuth(http.MethodPost, "/admin/accounts/trading/T1/toggle-connection", nil, "T1", &s.adminID)

	s.NoError(s.handler.ToggleConnection(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
}

func (s *AccountActionHandlerSuite) TestGetActivity() {
	actor := uuid.New()
	logs := []*models.AuditLog{
		{ID: uuid.New(), ActorID: &actor, Action: models.AuditActionTradingAccountToggled, Resource: "trading_account", ResourceID: "T1"},
	}
	s.actionService.EXPECT().GetActivity("T1", 5, 10).Return(logs, int64(6), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/admin/accounts/trading/T1/activity?offset=5&limit=10", nil, "T1", &s.adminID)

	s.NoError(s.handler.GetActivity(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), actor.String())
	s.Contains(rec.Body.String(), `"total":6`)
}

func (s *AccountActionHandlerSuite) TestGetActivity_LimitOutOfRange() {
	s.actionService.EXPECT().GetActivity("T1", 0, defaultActivityLimit).Return([]*models.AuditLog{}, int64(0), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/admin/accounts/trading/T1/activity?offset=-3&limit=1000", nil, "T1", &s.adminID)

	s.NoError(s.handler.GetActivity(c))
	s.Equal(http.StatusOK, rec.Code)
}
