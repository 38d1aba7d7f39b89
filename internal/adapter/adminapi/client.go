package adminapi

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
	"path"
	"strconv"
	"time"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// ErrUnauthorized indicates the backend rejected the stored credential. The
// client evicts the credential before returning it, so the next render of any
// screen reflects an unauthenticated state.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries the backend's detail text for a rejected call.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("admin api: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("admin api: request failed with status %d", e.StatusCode)
}

// TokenSource supplies the bearer credential. The token is read freshly
// before every request, so readers never need explicit synchronization with
// login/logout. Evict discards the credential after a 401.
type TokenSource interface {
	Token() string
	Evict()
}

// Client is the token-bearing HTTP client for the order admin backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// New creates an admin API client with the default fixed timeout.
func New(baseURL string, tokens TokenSource, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse admin api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("admin api url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// LoginResult mirrors the login response payload.
type LoginResult struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// CancelResult mirrors the cancel response payload.
type CancelResult struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	OrderID     string       `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	Order       *model.Order `json:"order,omitempty"`
}

// ListQuery narrows an order listing. The status code is passed verbatim;
// the backend expands combined filters such as pending/payment_pending.
type ListQuery struct {
	Status model.OrderStatus
	Page   int
	Limit  int
	Search string
}

// Login exchanges operator credentials for a bearer token. The identifier
// may be an email address or a mobile number.
func (c *Client) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	body := map[string]string{"email": identifier, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the authenticated operator's profile.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListOrders fetches the filtered order collection. Two response shapes are
// accepted: a bare array and an object with an orders field. Anything else
// decodes to an empty list, logged once rather than surfaced.
func (c *Client) ListOrders(ctx context.Context, q ListQuery) ([]model.Order, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/admin/orders", params, nil, &raw, true); err != nil {
		return nil, err
	}
	return c.decodeOrderList(raw), nil
}

// GetOrder fetches a single order by identifier.
func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, path.Join("/orders", id), nil, nil, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets a new status and returns the backend's view of the
// updated order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	body := map[string]string{"status": string(status)}
	var order model.Order
	if err := c.do(ctx, http.MethodPut, path.Join("/admin/orders", id, "status"), nil, body, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder requests cancellation with an optional reason.
func (c *Client) CancelOrder(ctx context.Context, id, reason string) (*CancelResult, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	var result CancelResult
	if err := c.do(ctx, http.MethodPost, path.Join("/admin/orders", id, "cancel"), nil, body, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches the aggregate counters. Independent of any order listing.
func (c *Client) Stats(ctx context.Context) (*model.OrderStats, error) {
	var stats model.OrderStats
	if err := c.do(ctx, http.MethodGet, "/admin/orders/stats", nil, nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RegisterPushToken registers a device token for notification delivery.
func (c *Client) RegisterPushToken(ctx context.Context, token string, deviceInfo map[string]string) error {
	body := map[string]any{"push_token": token}
	if deviceInfo != nil {
		body["device_info"] = deviceInfo
	}
	return c.do(ctx, http.MethodPost, "/admin/push-tokens", nil, body, nil, true)
}

// UnregisterPushToken removes a previously registered device token.
func (c *Client) UnregisterPushToken(ctx context.Context, token string) error {
	body := map[string]string{"push_token": token}
	return c.do(ctx, http.MethodDelete, "/admin/push-tokens", nil, body, nil, true)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body, out any, authed bool) error {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if params != nil {
		target.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && authed {
		c.tokens.Evict()
		return ErrUnauthorized
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (c *Client) errorFrom(resp *http.Response) error {
	payload, _ := io.ReadAll(resp.Body)

	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(payload, &body)

	c.logger.Error("admin api request failed",
		slog.Int("status", resp.StatusCode),
		slog.String("detail", body.Detail),
	)
	return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
}

func (c *Client) decodeOrderList(raw json.RawMessage) []model.Order {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var orders []model.Order
		if err := json.Unmarshal(trimmed, &orders); err == nil {
			return orders
		}
		c.logger.Warn("order list payload is a malformed array")
		return nil
	}

	var wrapped struct {
		Orders []model.Order `json:"orders"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Orders != nil {
		return wrapped.Orders
	}

	c.logger.Warn("unrecognized order list payload shape")
	return nil
}
