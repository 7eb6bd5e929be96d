package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer() *SMTPMailer {
	return NewSMTPMailer(SMTPConfig{
		Host: "smtp.example.edu",
		Port: 587,
		From: "no-reply@example.edu",
	})
}

func TestBuildMessage_TextAndHTML(t *testing.T) {
	m := testMailer()

	msg, err := m.buildMessage("ada@example.com", "Hello", "<p>hi</p>", "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, msg.GetHeader("Subject"))
}

func TestBuildMessage_BodyRequired(t *testing.T) {
	m := testMailer()

	_, err := m.buildMessage("ada@example.com", "Hello", "", "  ")
	var invalid ErrInvalidMessage
	require.ErrorAs(t, err, &invalid)
}

func TestBuildMessage_RecipientRequired(t *testing.T) {
	m := testMailer()

	_, err := m.buildMessage("  ", "Hello", "", "hi")
	var invalid ErrInvalidMessage
	require.ErrorAs(t, err, &invalid)
}

func TestBuildMessage_FromRequired(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.edu", Port: 587})

	_, err := m.buildMessage("ada@example.com", "Hello", "", "hi")
	var invalid ErrInvalidMessage
	require.ErrorAs(t, err, &invalid)
}

func TestNewSMTPMailer_DefaultTimeout(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.edu", Port: 587, From: "x@example.edu"})
	assert.Positive(t, m.cfg.Timeout)
}
