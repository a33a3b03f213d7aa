package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/internal/config"
)

func TestConsoleProviderNeverFails(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Provider: "console"})
	err := svc.SendHTMLEmail("staff@example.com", "subject", "<p>hi</p>", "hi")
	assert.NoError(t, err)
}

func TestSMTPRequiresConfiguration(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Provider: "smtp"})
	err := svc.SendHTMLEmail("staff@example.com", "subject", "<p>hi</p>", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not properly configured")
}

func TestResendProviderBuildsClient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Provider: "resend", ResendAPIKey: "re_test_key"})
	assert.NotNil(t, svc.resend)
}
