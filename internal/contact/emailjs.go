package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/adielbeauty/storefront/internal/contact/domain"
	"github.com/adielbeauty/storefront/pkg/config"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Relay sends template emails through the EmailJS REST API
type Relay struct {
	client     *http.Client
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
}

// NewRelay creates a relay. client may be nil.
func NewRelay(cfg config.EmailJSConfig, client *http.Client) *Relay {
	if client == nil {
		client = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}

	return &Relay{
		client:     client,
		endpoint:   endpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the template parameters. Anything but 200 is a failure.
func (r *Relay) Send(ctx context.Context, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      r.serviceID,
		TemplateID:     r.templateID,
		UserID:         r.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRelayFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", domain.ErrRelayFailed, resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
