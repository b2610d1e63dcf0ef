package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// attachmentField is the shared multipart field name every file is
// appended under.
const attachmentField = "attachments"

// EncodeDraft serializes the draft fields and attachments into a single
// multipart body. The returned content type carries the writer's
// boundary and must be sent exactly as returned.
func EncodeDraft(draft Draft, attachments []Attachment) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"to", draft.To},
		{"cc", draft.CC},
		{"bcc", draft.BCC},
		{"subject", draft.Subject},
		{"message", draft.Message},
		{"senderEmail", draft.SenderEmail},
		{"senderPassword", draft.SenderPassword},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %v", field.name, err)
		}
	}

	for _, attachment := range attachments {
		part, err := createFilePart(writer, attachment)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part for %s: %v", attachment.Filename, err)
		}
		if _, err := io.Copy(part, bytes.NewReader(attachment.Data)); err != nil {
			return nil, "", fmt.Errorf("failed to write attachment %s: %v", attachment.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

func createFilePart(writer *multipart.Writer, attachment Attachment) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, attachmentField, escapeQuotes(attachment.Filename)))

	mimeType := attachment.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header.Set("Content-Type", mimeType)

	return writer.CreatePart(header)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
