package contact

import (
	"fmt"
	"os"
)

// DefaultEndpoint is the EmailJS send API
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Config identifies the relay account; every field but ToEmail is required to send
type Config struct {
	ServiceID  string `validate:"required"`
	TemplateID string `validate:"required"`
	PublicKey  string `validate:"required"`
	ToEmail    string `validate:"omitempty,email"`
	Endpoint   string `validate:"required,url"`
}

// LoadConfig reads relay settings from the environment
// A .env file, if any, must already be loaded
func LoadConfig() Config {
	cfg := Config{
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		ToEmail:    os.Getenv("CONTACT_TO_EMAIL"),
		Endpoint:   os.Getenv("EMAILJS_ENDPOINT"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return cfg
}

// Validate reports ErrNotConfigured when the relay cannot be reached with these settings
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}
	return nil
}
