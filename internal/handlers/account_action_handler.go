package handlers

import (
	"net/http"
	"strings"

	"tradebot365-admin/internal/dto"
	"tradebot365-admin/internal/errors"
	"tradebot365-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// AccountActionHandler handles the per-row actions of the hierarchy table
type AccountActionHandler struct {
	actionService services.AccountActionServiceInterface
}

// NewAccountActionHandler creates a new account action handler
func NewAccountActionHandler(actionService services.AccountActionServiceInterface) *AccountActionHandler {
	return &AccountActionHandler{
		actionService: actionService,
	}
}

func tradingAccountIDParam(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("accountId"))
	return id, id != ""
}

// EditTradingAccount forwards an edit of a trading account
// @Summary Edit a trading account
// @Description Only the fields present in the body are changed
// @Tags Trading Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Trading account ID"
// @Param request body dto.EditTradingAccountRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.TradingAccountView}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid body"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Trading account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - No changes to apply"
// @Failure 503 {object} errors.ErrorResponse "ACCOUNT_007 - Account management unavailable"
// @Router /admin/accounts/trading/{accountId} [put]
func (h *AccountActionHandler) EditTradingAccount(c echo.Context) error {
	accountID, ok := tradingAccountIDParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidID)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.EditTradingAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.actionService.EditTradingAccount(
		requestContext(c).Request().Context(),
		accountID,
		req.ToModel(),
		userID,
		getClientIP(c),
		c.Request().UserAgent(),
	)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTradingAccountView(*account),
		Message: "Trading account updated",
	})
}

// DeleteTradingAccount forwards the removal of a trading account
// @Summary Delete a trading account
// @Tags Trading Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Trading account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Trading account not found"
// @Failure 503 {object} errors.ErrorResponse "ACCOUNT_007 - Account management unavailable"
// @Router /admin/accounts/trading/{accountId} [delete]
func (h *AccountActionHandler) DeleteTradingAccount(c echo.Context) error {
	accountID, ok := tradingAccountIDParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidID)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	err = h.actionService.DeleteTradingAccount(
		requestContext(c).Request().Context(),
		accountID,
		userID,
		getClientIP(c),
		c.Request().UserAgent(),
	)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Trading account deleted"})
}

// ToggleConnection forwards a connection toggle of a trading account
// @Summary Toggle a trading account connection
// @Description Connected becomes Disconnected; any other status becomes Connected
// @Tags Trading Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Trading account ID"
// @Success 200 {object} SuccessResponse{data=dto.TradingAccountView}
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Trading account not found"
// @Failure 503 {object} errors.ErrorResponse "ACCOUNT_007 - Account management unavailable"
// @Router /admin/accounts/trading/{accountId}/toggle-connection [post]
func (h *AccountActionHandler) ToggleConnection(c echo.Context) error {
	accountID, ok := tradingAccountIDParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidID)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	account, err := h.actionService.ToggleConnection(
		requestContext(c).Request().Context(),
		accountID,
		userID,
		getClientIP(c),
		c.Request().UserAgent(),
	)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTradingAccountView(*account),
		Message: "Connection status changed to " + account.Status,
	})
}

// GetActivity returns the audit trail of a trading account
// @Summary Trading account activity
// @Tags Trading Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Trading account ID"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {object} SuccessResponse{data=dto.ActivityResponse}
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Invalid trading account ID"
// @Router /admin/accounts/trading/{accountId}/activity [get]
func (h *AccountActionHandler) GetActivity(c echo.Context) error {
	accountID, ok := tradingAccountIDParam(c)
	if !ok {
		return SendError(c, errors.AccountInvalidID)
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", defaultActivityLimit)
	if limit < 1 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	logs, total, err := h.actionService.GetActivity(accountID, offset, limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewActivityResponse(accountID, logs, total, offset, limit),
	})
}
