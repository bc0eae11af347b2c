package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"tradebot365-admin/internal/config"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/repositories"
)

// AuthTransport adds the API key of the account-management API to every request
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if traceID := TraceIDFromContext(req.Context()); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	return t.base.RoundTrip(req)
}

type managerEnvelope struct {
	Data *models.FlatAccountRecord `json:"data"`
}

type managerErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AccountManagerClient forwards trading account actions to the remote account-management API
type AccountManagerClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewAccountManagerClient creates a client for the account-management API
func NewAccountManagerClient(cfg *config.AccountManagerConfig, logger *slog.Logger) AccountManager {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountManagerClient{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Transport: &AuthTransport{apiKey: cfg.APIKey, base: http.DefaultTransport},
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *AccountManagerClient) tradingAccountPath(tradingAccountID string, suffix string) string {
	return c.baseURL + "/trading-accounts/" + url.PathEscape(tradingAccountID) + suffix
}

func (c *AccountManagerClient) do(ctx context.Context, method, target string, body any) (*http.Response, []byte, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "account manager request failed",
			"method", method,
			"url", target,
			"error", err,
		)
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, respBody, nil
}

// checkStatus maps the answer of the API onto the errors of the record store so callers see
// the same outcomes from either AccountManager
func (c *AccountManagerClient) checkStatus(ctx context.Context, resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return repositories.ErrTradingAccountNotFound
	case resp.StatusCode == http.StatusConflict:
		return repositories.ErrNoChanges
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		var errResp managerErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
			return fmt.Errorf("%w: status %d", ErrActionRejected, resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "account manager rejected action",
			"status", resp.StatusCode,
			"code", errResp.Error.Code,
			"message", errResp.Error.Message,
		)
		return fmt.Errorf("%w: %s", ErrActionRejected, errResp.Error.Message)
	default:
		return fmt.Errorf("unexpected account manager response (%d): %s", resp.StatusCode, string(body))
	}
}

func (c *AccountManagerClient) decodeRecord(body []byte) (*models.FlatAccountRecord, error) {
	var envelope managerEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode account manager response: %w", err)
	}
	if envelope.Data == nil {
		return nil, errors.New("account manager response has no data")
	}
	return envelope.Data, nil
}

// UpdateTradingAccount sends the edit and returns the updated row
func (c *AccountManagerClient) UpdateTradingAccount(ctx context.Context, tradingAccountID string, edit models.TradingAccountEdit) (*models.FlatAccountRecord, error) {
	resp, body, err := c.do(ctx, http.MethodPatch, c.tradingAccountPath(tradingAccountID, ""), edit)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(ctx, resp, body); err != nil {
		return nil, err
	}
	return c.decodeRecord(body)
}

// DeleteTradingAccount removes the trading account
func (c *AccountManagerClient) DeleteTradingAccount(ctx context.Context, tradingAccountID string) error {
	resp, body, err := c.do(ctx, http.MethodDelete, c.tradingAccountPath(tradingAccountID, ""), nil)
	if err != nil {
		return err
	}
	return c.checkStatus(ctx, resp, body)
}

// ToggleConnection flips the connection and returns the updated row
func (c *AccountManagerClient) ToggleConnection(ctx context.Context, tradingAccountID string) (*models.FlatAccountRecord, error) {
	resp, body, err := c.do(ctx, http.MethodPost, c.tradingAccountPath(tradingAccountID, "/toggle-connection"), nil)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(ctx, resp, body); err != nil {
		return nil, err
	}
	return c.decodeRecord(body)
}
