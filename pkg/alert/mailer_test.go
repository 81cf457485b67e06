package alert

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseRecipients(t *testing.T) {
	got := ParseRecipients(" a@example.com , b@example.com ,, ")

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got)
}

func TestParseRecipients_Empty(t *testing.T) {
	assert.Equal(t, 0, len(ParseRecipients("")))
}

func TestMailer_Configured(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "alerts@example.com", "secret", []string{"ops@example.com"})
	assert.Equal(t, true, m.Configured())

	missingHost := NewMailer("", 587, "alerts@example.com", "secret", []string{"ops@example.com"})
	assert.Equal(t, false, missingHost.Configured())

	missingRecipients := NewMailer("smtp.example.com", 587, "alerts@example.com", "secret", nil)
	assert.Equal(t, false, missingRecipients.Configured())
}

func TestMailer_SendFailsWhenUnconfigured(t *testing.T) {
	m := NewMailer("", 0, "", "", nil)

	assert.NotEqual(t, nil, m.SendAlert(80, false))
	assert.NotEqual(t, nil, m.SendTest())
}
