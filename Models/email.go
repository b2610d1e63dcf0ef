package Models

import "time"

// AttachmentInfo describes one attachment on a stored email. Only
// metadata is kept; raw bytes never enter the store.
type AttachmentInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

// Email is one completed send, kept for the lifetime of the process.
type Email struct {
	Id          int              `json:"id"`
	To          string           `json:"to"`
	CC          string           `json:"cc"`
	BCC         string           `json:"bcc"`
	Subject     string           `json:"subject"`
	Message     string           `json:"message"`
	Attachments []AttachmentInfo `json:"attachmentInfo"`
	SentAt      time.Time        `json:"sentAt"`
	SenderEmail string           `json:"senderEmail"`
}

// InsertEmail is the shape accepted by EmailStore.CreateEmail. The store
// assigns Id and SentAt.
type InsertEmail struct {
	To          string
	CC          string
	BCC         string
	Subject     string
	Message     string
	Attachments []AttachmentInfo
	SenderEmail string
}

// EmailConfig describes the SMTP endpoint and credentials used for one send.
type EmailConfig struct {
	SMTPServer   string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TLSEnabled   bool
	SkipTLSCheck bool
}

// GmailConfig returns a config bound to Gmail's SMTP endpoint for the
// given address and app password.
func GmailConfig(address, appPassword string) EmailConfig {
	return EmailConfig{
		SMTPServer: "smtp.gmail.com",
		SMTPPort:   465,
		Username:   address,
		Password:   appPassword,
		FromEmail:  address,
		TLSEnabled: true,
	}
}

// EmailMessage represents an email to be sent
type EmailMessage struct {
	To          []string
	CC          []string
	BCC         []string
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []Attachment
}

// Attachment represents a file attachment
type Attachment struct {
	Filename string
	Data     []byte
	MimeType string
}
