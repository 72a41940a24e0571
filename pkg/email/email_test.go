package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"go-jobboard-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNewsletterConfirmationEscapes(t *testing.T) {
	body, err := RenderNewsletterConfirmation(NewsletterEmailData{Email: "<script>@example.com"})
	require.NoError(t, err)
	assert.Contains(t, body, "&lt;script&gt;@example.com")
	assert.NotContains(t, body, "<script>")
}

func TestSend(t *testing.T) {
	svc := NewEmailService(&config.Config{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      "587",
		SMTPUsername:  "user",
		SMTPPassword:  "secret",
		SMTPFromEmail: "news@example.com",
	})

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	require.NoError(t, svc.Send("reader@example.com", "Welcome", "<p>hi</p>"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"reader@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(string(gotMsg), "From: news@example.com\r\n"))
	assert.Contains(t, string(gotMsg), "Subject: Welcome\r\n")

	svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("421 try later") }
	assert.ErrorContains(t, svc.Send("reader@example.com", "Welcome", "x"), "421")
}

func TestSendRequiresConfiguration(t *testing.T) {
	svc := NewEmailService(&config.Config{SMTPPort: "587"})
	assert.False(t, svc.IsConfigured())
	assert.Error(t, svc.Send("reader@example.com", "Welcome", "x"))
}
