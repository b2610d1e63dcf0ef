package email

import (
	"Courier/Models"
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/google/uuid"
	"github.com/jhillyerd/enmime"
)

// BuildEnvelope renders the message into wire format and returns the raw
// bytes together with the generated message identifier. Bcc recipients
// are deliberately absent from the headers; they only appear in the
// SMTP envelope.
func BuildEnvelope(config Models.EmailConfig, message Models.EmailMessage) ([]byte, string, error) {
	builder := enmime.Builder().
		From(config.FromName, config.FromEmail).
		Subject(message.Subject)

	for _, to := range message.To {
		builder = builder.To("", to)
	}
	for _, cc := range message.CC {
		builder = builder.CC("", cc)
	}

	if message.IsHTML {
		builder = builder.HTML([]byte(message.Body))
	} else {
		builder = builder.Text([]byte(message.Body))
	}

	for _, attachment := range message.Attachments {
		builder = builder.AddAttachment(attachment.Data, attachment.MimeType, attachment.Filename)
	}

	part, err := builder.Build()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build message: %v", err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), config.SMTPServer)
	part.Header.Set("Message-Id", messageID)

	var envelope bytes.Buffer
	if err := part.Encode(&envelope); err != nil {
		return nil, "", fmt.Errorf("failed to encode message: %v", err)
	}

	return envelope.Bytes(), messageID, nil
}

// SendEmail dispatches an email using the provided configuration and message
// details and returns the generated message identifier.
func SendEmail(config Models.EmailConfig, message Models.EmailMessage) (string, error) {
	envelope, messageID, err := BuildEnvelope(config, message)
	if err != nil {
		return "", err
	}

	// Set up authentication
	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPServer)

	// Create recipient list (to, cc, bcc)
	var recipients []string
	recipients = append(recipients, message.To...)
	recipients = append(recipients, message.CC...)
	recipients = append(recipients, message.BCC...)

	serverAddr := fmt.Sprintf("%s:%d", config.SMTPServer, config.SMTPPort)

	if !config.TLSEnabled {
		// Standard SMTP (non-TLS)
		if err := smtp.SendMail(serverAddr, auth, config.FromEmail, recipients, envelope); err != nil {
			return "", err
		}
		return messageID, nil
	}

	tlsConfig := &tls.Config{
		ServerName:         config.SMTPServer,
		InsecureSkipVerify: config.SkipTLSCheck,
	}

	// Connect to the SMTP server with TLS
	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return "", fmt.Errorf("failed to connect to SMTP server: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, config.SMTPServer)
	if err != nil {
		return "", fmt.Errorf("failed to create SMTP client: %v", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return "", fmt.Errorf("SMTP authentication failed: %v", err)
	}

	if err = client.Mail(config.FromEmail); err != nil {
		return "", fmt.Errorf("failed to set sender: %v", err)
	}

	for _, recipient := range recipients {
		if err = client.Rcpt(recipient); err != nil {
			return "", fmt.Errorf("failed to add recipient %s: %v", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("failed to open data connection: %v", err)
	}

	if _, err = w.Write(envelope); err != nil {
		return "", fmt.Errorf("failed to write email body: %v", err)
	}

	if err = w.Close(); err != nil {
		return "", fmt.Errorf("failed to close data connection: %v", err)
	}

	if err = client.Quit(); err != nil {
		return "", fmt.Errorf("failed to close SMTP session: %v", err)
	}

	return messageID, nil
}
