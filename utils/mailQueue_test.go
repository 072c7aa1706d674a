package utils

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailQueueDrainsBatch(t *testing.T) {
	var mu sync.Mutex
	var sent []string
	q := newMailQueueForTest(func(to, subject string, data EmailData, templatePath string) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, to)
		return nil
	})

	for i := 0; i < mailBatchSize+2; i++ {
		q.Enqueue("user@example.com", "subject", EmailData{}, "templates/test_email.html")
	}

	q.drainBatch()
	assert.Len(t, sent, mailBatchSize)
	assert.Equal(t, 2, q.Len())

	q.drainBatch()
	assert.Len(t, sent, mailBatchSize+2)
	assert.Equal(t, 0, q.Len())
}

func TestMailQueueRequeuesFailures(t *testing.T) {
	attempts := 0
	q := newMailQueueForTest(func(to, subject string, data EmailData, templatePath string) error {
		attempts++
		if attempts < 2 {
			return errors.New("smtp unavailable")
		}
		return nil
	})

	q.Enqueue("user@example.com", "subject", EmailData{}, "templates/test_email.html")

	q.drainBatch()
	assert.Equal(t, 1, q.Len(), "failed send should be requeued")

	q.drainBatch()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 2, attempts)
}

func TestMailQueueDropsAfterMaxAttempts(t *testing.T) {
	attempts := 0
	q := newMailQueueForTest(func(to, subject string, data EmailData, templatePath string) error {
		attempts++
		return errors.New("smtp unavailable")
	})

	q.Enqueue("user@example.com", "subject", EmailData{}, "templates/test_email.html")

	for i := 0; i < mailMaxAttempts+2; i++ {
		q.drainBatch()
	}

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, mailMaxAttempts, attempts)
}
