package email

import (
	"Courier/Models"
	"bytes"
	"strings"
	"testing"

	"github.com/jhillyerd/enmime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Models.EmailConfig {
	return Models.GmailConfig("sender@gmail.com", "app-password")
}

func TestBuildEnvelopeHTMLMessage(t *testing.T) {
	raw, messageID, err := BuildEnvelope(testConfig(), Models.EmailMessage{
		To:      []string{"a@b.com", "c@d.org"},
		CC:      []string{"cc@example.com"},
		Subject: "Quarterly report",
		Body:    "<p>Hello <b>world</b></p>",
		IsHTML:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, messageID)
	assert.True(t, strings.HasPrefix(messageID, "<"))
	assert.Contains(t, messageID, "@smtp.gmail.com>")

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Quarterly report", env.GetHeader("Subject"))
	assert.Contains(t, env.GetHeader("To"), "a@b.com")
	assert.Contains(t, env.GetHeader("To"), "c@d.org")
	assert.Contains(t, env.GetHeader("Cc"), "cc@example.com")
	assert.Contains(t, env.GetHeader("From"), "sender@gmail.com")
	assert.Equal(t, messageID, env.GetHeader("Message-Id"))
	assert.Contains(t, env.HTML, "<b>world</b>")
}

func TestBuildEnvelopeAttachments(t *testing.T) {
	raw, _, err := BuildEnvelope(testConfig(), Models.EmailMessage{
		To:      []string{"a@b.com"},
		Subject: "files",
		Body:    "see attached",
		IsHTML:  true,
		Attachments: []Models.Attachment{
			{Filename: "report.pdf", Data: []byte("%PDF-fake"), MimeType: "application/pdf"},
			{Filename: "notes.txt", Data: []byte("plain text"), MimeType: "text/plain"},
		},
	})
	require.NoError(t, err)

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, env.Attachments, 2)
	assert.Equal(t, "report.pdf", env.Attachments[0].FileName)
	assert.Equal(t, []byte("%PDF-fake"), env.Attachments[0].Content)
	assert.Equal(t, "notes.txt", env.Attachments[1].FileName)
	assert.Equal(t, "text/plain", env.Attachments[1].ContentType)
}

func TestBuildEnvelopeOmitsBccHeader(t *testing.T) {
	raw, _, err := BuildEnvelope(testConfig(), Models.EmailMessage{
		To:      []string{"a@b.com"},
		BCC:     []string{"hidden@example.com"},
		Subject: "s",
		Body:    "m",
		IsHTML:  true,
	})
	require.NoError(t, err)

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, env.GetHeader("Bcc"))
	assert.NotContains(t, string(raw), "hidden@example.com")
}

func TestBuildEnvelopePlainText(t *testing.T) {
	raw, _, err := BuildEnvelope(testConfig(), Models.EmailMessage{
		To:      []string{"a@b.com"},
		Subject: "s",
		Body:    "just text",
	})
	require.NoError(t, err)

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Contains(t, env.Text, "just text")
	assert.Empty(t, env.HTML)
}

func TestSendEmailRefusesUnbuildableMessage(t *testing.T) {
	// No recipients at all: the envelope build fails before any dial.
	_, err := SendEmail(testConfig(), Models.EmailMessage{Subject: "s", Body: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build message")
}
