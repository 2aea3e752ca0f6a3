package gateway

import (
	"context"

	"github.com/rescuerush/rescuerush/internal/pkg/circuitbreaker"
	httpclient "github.com/rescuerush/rescuerush/internal/pkg/http"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
	"github.com/rescuerush/rescuerush/internal/pkg/retry"
)

// HTTPSMSSender posts messages to a JSON SMS provider API. Transient
// provider errors are retried with exponential backoff inside the
// dispatcher's per-channel timeout; a sustained outage opens the breaker
// so an active alert does not burn its dispatch window on a dead provider.
type HTTPSMSSender struct {
	client  *httpclient.APIKeyClient
	breaker *circuitbreaker.Breaker
	cfg     models.SMSConfig
}

// NewHTTPSMSSender creates a sender for the configured provider, or nil
// when no endpoint is configured.
func NewHTTPSMSSender(cfg models.SMSConfig) *HTTPSMSSender {
	if cfg.Endpoint == "" || cfg.APIKey == "" {
		return nil
	}
	return &HTTPSMSSender{
		client:  httpclient.NewAPIKeyClient(cfg.APIKey, cfg.Endpoint),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("sms-provider")),
		cfg:     cfg,
	}
}

type smsPayload struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// SendSMS delivers one message through the provider API.
func (s *HTTPSMSSender) SendSMS(ctx context.Context, to, message string) error {
	payload := smsPayload{To: to, From: s.cfg.Sender, Message: message}
	return s.breaker.Do(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, retry.DefaultConfig(), func() error {
			return s.client.PostJSON(ctx, "/messages", payload, nil)
		})
	})
}
