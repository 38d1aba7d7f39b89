package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Notification is a single push message addressed to one device token.
type Notification struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Provider delivers push notifications to registered devices.
type Provider interface {
	Send(ctx context.Context, notification Notification) error
}

// HTTPProvider implements Provider via an HTTP push gateway.
type HTTPProvider struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProvider creates HTTP push provider with default timeout.
func NewHTTPProvider(baseURL string, logger *slog.Logger) (*HTTPProvider, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse push gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("push gateway url must be absolute")
	}
	return &HTTPProvider{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the notification to the gateway's send endpoint.
func (p *HTTPProvider) Send(ctx context.Context, notification Notification) error {
	endpoint := *p.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/send")

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		p.logger.Error("push delivery failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("push gateway error: %s", resp.Status)
	}

	return nil
}

// NopProvider drops notifications. Used when no gateway is configured so the
// rest of the pipeline keeps working.
type NopProvider struct {
	logger *slog.Logger
}

// NewNopProvider creates a provider that only logs deliveries.
func NewNopProvider(logger *slog.Logger) *NopProvider {
	return &NopProvider{logger: logger}
}

// Send logs the would-be delivery and succeeds.
func (p *NopProvider) Send(_ context.Context, notification Notification) error {
	p.logger.Debug("push delivery skipped, no gateway configured",
		slog.String("title", notification.Title),
	)
	return nil
}
