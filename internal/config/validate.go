package config

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/inshape-booking/internal/timezone"
)

// ConfigurationError lists every setting that blocks startup.
type ConfigurationError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.Invalid, ", "))
	}
	return "configuration error (" + strings.Join(parts, "; ") + ")"
}

// Validate checks the settings the service cannot run without. It reports
// all problems at once instead of stopping at the first one.
func (c *Config) Validate() error {
	cerr := &ConfigurationError{}

	require := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			cerr.Missing = append(cerr.Missing, key)
		}
	}

	require("GOOGLE_CREDENTIALS", c.GoogleCredentials)
	require("CALENDAR_ID", c.CalendarID)
	require("TIMEZONE", c.Timezone)
	require("SPREADSHEET_ID", c.SpreadsheetID)

	switch c.EmailProvider {
	case EmailProviderResend:
		require("RESEND_API_KEY", c.ResendAPIKey)
		require("TEAM_EMAIL", c.TeamEmail)
		require("FROM_EMAIL", c.FromEmail)
	case EmailProviderSMTP:
		require("SMTP_HOST", c.SMTPHost)
		require("SMTP_PORT", c.SMTPPort)
		require("TEAM_EMAIL", c.TeamEmail)
		require("FROM_EMAIL", c.FromEmail)
	case EmailProviderNone:
	default:
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("EMAIL_PROVIDER=%q", c.EmailProvider))
	}

	if c.Timezone != "" && !timezone.IsValid(c.Timezone) {
		cerr.Invalid = append(cerr.Invalid, fmt.Sprintf("TIMEZONE=%q", c.Timezone))
	}

	if c.GoogleCredentials != "" {
		if _, err := c.ServiceAccount(); err != nil {
			cerr.Invalid = append(cerr.Invalid, "GOOGLE_CREDENTIALS")
		}
	}

	if len(cerr.Missing) > 0 || len(cerr.Invalid) > 0 {
		return cerr
	}
	return nil
}
