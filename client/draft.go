// Package client drives the send pipeline against a running service:
// draft validation, attachment collection, multipart encoding and the
// HTTP calls themselves.
package client

import (
	"strings"

	"Courier/validation"
)

// Draft is an in-progress, unsent email. It lives only in memory and is
// cleared after a successful send.
type Draft struct {
	To             string
	CC             string
	BCC            string
	Subject        string
	Message        string
	SenderEmail    string
	SenderPassword string
}

// Validate returns a message per invalid field, keyed by form field
// name. An empty map means the draft is submittable.
func (d Draft) Validate() map[string]string {
	errs := make(map[string]string)

	if !validation.ValidateEmailList(d.To) {
		errs["to"] = "Please enter at least one valid email address"
	}
	if strings.TrimSpace(d.Subject) == "" {
		errs["subject"] = "Please enter a subject"
	}
	if strings.TrimSpace(d.Message) == "" {
		errs["message"] = "Please enter a message"
	}
	if !validation.ValidateEmail(d.SenderEmail) {
		errs["senderEmail"] = "Please enter a valid sender email"
	}
	if d.SenderPassword == "" {
		errs["senderPassword"] = "Please enter the app password"
	}

	return errs
}

// Reset clears every field.
func (d *Draft) Reset() {
	*d = Draft{}
}
