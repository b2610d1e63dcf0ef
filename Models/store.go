package Models

import (
	"sync"
	"time"
)

// EmailStore is an append-only, process-lifetime log of completed sends.
// Identifier allocation and the record map sit behind one mutex so each
// create is a single critical section; identifiers start at 1 and are
// never reused.
type EmailStore struct {
	mu        sync.Mutex
	emails    map[int]*Email
	order     []int
	currentID int
}

// NewEmailStore creates an empty store.
func NewEmailStore() *EmailStore {
	return &EmailStore{
		emails:    make(map[int]*Email),
		currentID: 1,
	}
}

// CreateEmail assigns the next identifier, stamps the send time and
// stores the record. A missing sender email is a broken contract at this
// layer and is rejected rather than defaulted.
func (s *EmailStore) CreateEmail(insert InsertEmail) (*Email, error) {
	if insert.SenderEmail == "" {
		return nil, NewRequestError(KindPersistence, "Sender email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := &Email{
		Id:          s.currentID,
		To:          insert.To,
		CC:          insert.CC,
		BCC:         insert.BCC,
		Subject:     insert.Subject,
		Message:     insert.Message,
		Attachments: insert.Attachments,
		SentAt:      time.Now(),
		SenderEmail: insert.SenderEmail,
	}
	s.currentID++
	s.emails[email.Id] = email
	s.order = append(s.order, email.Id)

	return email, nil
}

// GetEmails returns every stored record in creation order.
func (s *EmailStore) GetEmails() []*Email {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := make([]*Email, 0, len(s.order))
	for _, id := range s.order {
		emails = append(emails, s.emails[id])
	}
	return emails
}

// GetEmailByID looks up a single record.
func (s *EmailStore) GetEmailByID(id int) (*Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.emails[id]
	return email, ok
}
