package client

import "fmt"

// DefaultMaxFileSize is the per-attachment ceiling: 10 MiB.
const DefaultMaxFileSize = 10 << 20

// Attachment is one file selected for upload.
type Attachment struct {
	Filename string
	Data     []byte
	MimeType string
}

// Size returns the attachment size in bytes.
func (a Attachment) Size() int64 {
	return int64(len(a.Data))
}

// AttachmentList accumulates selected files under a per-file size
// ceiling. It keeps a single shared error string, not one per file.
type AttachmentList struct {
	maxFileSize int64
	files       []Attachment
	err         string
}

// NewAttachmentList creates a collector with the given ceiling;
// a non-positive ceiling falls back to DefaultMaxFileSize.
func NewAttachmentList(maxFileSize int64) *AttachmentList {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &AttachmentList{maxFileSize: maxFileSize}
}

// AddFiles appends each file that fits under the ceiling, preserving
// selection order. Oversized files are skipped and the shared error is
// raised. The error reflects only this call's outcome.
func (l *AttachmentList) AddFiles(files ...Attachment) {
	tooLarge := false
	for _, f := range files {
		if f.Size() > l.maxFileSize {
			tooLarge = true
			continue
		}
		l.files = append(l.files, f)
	}

	if tooLarge {
		l.err = fmt.Sprintf("One or more files exceed the maximum allowed size (%s)", FormatFileSize(l.maxFileSize))
	} else {
		l.err = ""
	}
}

// RemoveFile drops the file at index, keeping the rest in order. The
// shared error is cleared once the list becomes empty.
func (l *AttachmentList) RemoveFile(index int) {
	if index < 0 || index >= len(l.files) {
		return
	}
	l.files = append(l.files[:index], l.files[index+1:]...)
	if len(l.files) == 0 {
		l.err = ""
	}
}

// Files returns the collected attachments in selection order.
func (l *AttachmentList) Files() []Attachment {
	return l.files
}

// Error returns the shared error string, empty when the last add
// succeeded fully.
func (l *AttachmentList) Error() string {
	return l.err
}

// FormatFileSize renders a byte count the way the form displays it.
func FormatFileSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
