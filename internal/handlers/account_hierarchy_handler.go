package handlers

import (
	"net/http"
	"strings"

	"tradebot365-admin/internal/dto"
	"tradebot365-admin/internal/errors"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHierarchyHandler serves the User -> CSP Account -> Trading Account view of the dashboard
type AccountHierarchyHandler struct {
	hierarchyService services.AccountHierarchyServiceInterface
	generator        services.AccountDataGeneratorInterface
	auditService     services.AuditServiceInterface
	metrics          services.MetricsRecorderInterface
}

// NewAccountHierarchyHandler creates a new account hierarchy handler
func NewAccountHierarchyHandler(
	hierarchyService services.AccountHierarchyServiceInterface,
	generator services.AccountDataGeneratorInterface,
	auditService services.AuditServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AccountHierarchyHandler {
	return &AccountHierarchyHandler{
		hierarchyService: hierarchyService,
		generator:        generator,
		auditService:     auditService,
		metrics:          metrics,
	}
}

// bindHierarchyQuery binds and validates the listing query string
func bindHierarchyQuery(c echo.Context) (*dto.HierarchyQuery, error) {
	var query dto.HierarchyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return &query, nil
}

// ListAccounts returns one page of the filtered account hierarchy
// @Summary List the account hierarchy
// @Description Users with their CSP accounts and trading accounts, filtered and paginated by user
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param search query string false "Case-insensitive substring over names, emails, IDs, API names and account numbers"
// @Param status query string false "all, active, inactive or error"
// @Param liveDemo query string false "all, live or demo"
// @Param page query int false "1-indexed page, clamped to the page count"
// @Param pageSize query int false "Users per page"
// @Param filterKey query string false "filterKey of the previous response; the page resets to 1 when filters changed"
// @Success 200 {object} SuccessResponse{data=dto.HierarchyPageResponse,meta=dto.PageMeta}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/accounts [get]
func (h *AccountHierarchyHandler) ListAccounts(c echo.Context) error {
	req, err := bindHierarchyQuery(c)
	if req == nil {
		return err
	}

	query, err := req.ToModel()
	if err != nil {
		return sendServiceError(c, err)
	}

	page, err := h.hierarchyService.GetHierarchyPage(requestContext(c).Request().Context(), query)
	if err != nil {
		return sendServiceError(c, err)
	}

	response, meta := dto.NewHierarchyPageResponse(page)
	message := ""
	if response.Empty {
		message = "No accounts match the current filters"
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    response,
		Message: message,
		Meta:    meta,
	})
}

// GetStats returns the stats card totals
// @Summary Account hierarchy totals
// @Description Users, CSP accounts and trading accounts in the whole dataset and in the filtered view
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search filter"
// @Param status query string false "all, active, inactive or error"
// @Param liveDemo query string false "all, live or demo"
// @Success 200 {object} SuccessResponse{data=dto.AccountsStatsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/accounts/stats [get]
func (h *AccountHierarchyHandler) GetStats(c echo.Context) error {
	req, err := bindHierarchyQuery(c)
	if req == nil {
		return err
	}

	params, err := req.FilterParams()
	if err != nil {
		return sendServiceError(c, err)
	}

	overview, err := h.hierarchyService.GetCounts(requestContext(c).Request().Context(), params)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewAccountsStatsResponse(overview)})
}

// GetUser returns the subtree of one user
// @Summary Get one user's accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} SuccessResponse{data=dto.UserAccountView}
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_002 - User account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/accounts/users/{userId} [get]
func (h *AccountHierarchyHandler) GetUser(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("userId is required"))
	}

	user, err := h.hierarchyService.GetUser(requestContext(c).Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewUserAccountView(user)})
}

// ImportRecords stores a batch of rows from the account feed
// @Summary Import flat account rows
// @Description Rows without a user ID or email are stored but never shown in the hierarchy
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ImportRecordsRequest true "Rows"
// @Success 201 {object} SuccessResponse{data=dto.ImportRecordsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid rows"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_002 - Too many rows"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/accounts/import [post]
func (h *AccountHierarchyHandler) ImportRecords(c echo.Context) error {
	var req dto.ImportRecordsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.hierarchyService.ImportRecords(requestContext(c).Request().Context(), req.ToModels())
	if err != nil {
		return sendServiceError(c, err)
	}

	createAuditLog(h.auditService, models.AuditActionAccountRecordsImported, result.Stored, c)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewImportRecordsResponse(result),
		Message: "Account records imported",
	})
}

// GenerateMockRecords fills the store with a generated dataset
// @Summary Generate mock account rows
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GenerateMockRecordsRequest false "Dataset shape"
// @Success 201 {object} SuccessResponse{data=dto.ImportRecordsResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid options"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/accounts/mock [post]
func (h *AccountHierarchyHandler) GenerateMockRecords(c echo.Context) error {
	var req dto.GenerateMockRecordsRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	records := h.generator.GenerateRecords(req.ToModel())

	result, err := h.hierarchyService.ImportRecords(requestContext(c).Request().Context(), records)
	if err != nil {
		return sendServiceError(c, err)
	}

	h.metrics.RecordGauge("records_mocked", float64(result.Stored), nil)
	createAuditLog(h.auditService, models.AuditActionMockRecordsGenerated, result.Stored, c)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewImportRecordsResponse(result),
		Message: "Mock account records generated",
	})
}
