// Package contact delivers contact-form messages through the EmailJS relay and tracks the
// form's idle/sending/sent/error status.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrBusy          = errors.New("contact: submission already in progress")
	ErrNotConfigured = errors.New("contact: relay not configured")
	ErrInvalid       = errors.New("contact: invalid message")
	ErrRelay         = errors.New("contact: relay failed")
)

// validator caches struct metadata and is safe for concurrent use
var validate = validator.New(validator.WithRequiredStructEnabled())

// Message is one contact-form submission
type Message struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// Validate checks the required fields and the sender address
func (m Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Sender delivers a message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

// Client posts messages to the relay
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient returns a relay client; a nil httpClient uses http.DefaultClient
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// Send validates msg and posts it once; there is no retry
func (c *Client) Send(ctx context.Context, msg Message) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: templateParams{
			FromName:  msg.Name,
			FromEmail: msg.Email,
			Message:   msg.Message,
			ToEmail:   c.cfg.ToEmail,
		},
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("relay request failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRelay, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("relay rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(detail))))
		return fmt.Errorf("%w: status %d", ErrRelay, resp.StatusCode)
	}

	c.logger.Debug("message relayed", zap.Int("status", resp.StatusCode))
	return nil
}

// Field names one form input
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	fieldCount
)

// Key is the field's translation key suffix
func (f Field) Key() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	default:
		return "message"
	}
}

// Next cycles to the following field
func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

// Get returns the value of field f
func (m Message) Get(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	default:
		return m.Message
	}
}

// Set replaces the value of field f
func (m *Message) Set(f Field, v string) {
	switch f {
	case FieldName:
		m.Name = v
	case FieldEmail:
		m.Email = v
	default:
		m.Message = v
	}
}
