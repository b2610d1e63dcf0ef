package Models

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmailAssignsSequentialIds(t *testing.T) {
	store := NewEmailStore()

	first, err := store.CreateEmail(InsertEmail{
		To:          "a@b.com",
		Subject:     "s",
		Message:     "m",
		SenderEmail: "sender@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Id)
	assert.False(t, first.SentAt.IsZero())

	second, err := store.CreateEmail(InsertEmail{
		To:          "c@d.com",
		Subject:     "s2",
		Message:     "m2",
		SenderEmail: "sender@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Id)
}

func TestCreateEmailRequiresSenderEmail(t *testing.T) {
	store := NewEmailStore()

	_, err := store.CreateEmail(InsertEmail{To: "a@b.com", Subject: "s", Message: "m"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindPersistence, reqErr.Kind)
	assert.Empty(t, store.GetEmails())
}

func TestGetEmailsReturnsCreationOrder(t *testing.T) {
	store := NewEmailStore()
	for i := 0; i < 5; i++ {
		_, err := store.CreateEmail(InsertEmail{
			To:          fmt.Sprintf("user%d@example.com", i),
			Subject:     "s",
			Message:     "m",
			SenderEmail: "sender@gmail.com",
		})
		require.NoError(t, err)
	}

	emails := store.GetEmails()
	require.Len(t, emails, 5)
	for i, email := range emails {
		assert.Equal(t, i+1, email.Id)
		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), email.To)
	}
}

func TestGetEmailByID(t *testing.T) {
	store := NewEmailStore()
	created, err := store.CreateEmail(InsertEmail{
		To:          "a@b.com",
		Subject:     "s",
		Message:     "m",
		SenderEmail: "sender@gmail.com",
	})
	require.NoError(t, err)

	found, ok := store.GetEmailByID(created.Id)
	require.True(t, ok)
	assert.Equal(t, created.To, found.To)

	_, ok = store.GetEmailByID(42)
	assert.False(t, ok)
}

func TestConcurrentCreatesDoNotReuseIds(t *testing.T) {
	store := NewEmailStore()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := store.CreateEmail(InsertEmail{
				To:          "a@b.com",
				Subject:     "s",
				Message:     "m",
				SenderEmail: "sender@gmail.com",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	emails := store.GetEmails()
	require.Len(t, emails, n)
	seen := make(map[int]bool, n)
	for _, email := range emails {
		assert.False(t, seen[email.Id], "id %d assigned twice", email.Id)
		assert.GreaterOrEqual(t, email.Id, 1)
		assert.LessOrEqual(t, email.Id, n)
		seen[email.Id] = true
	}
}
