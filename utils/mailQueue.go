package utils

import (
	"log"
	"sync"
	"time"
)

const (
	mailBatchSize   = 5
	mailMaxAttempts = 3
)

type queuedEmail struct {
	To           string
	Subject      string
	Data         EmailData
	TemplatePath string
	Attempts     int
}

// MailQueue retries failed sends from an in-memory list on a fixed timer.
// Pending mail is lost on process restart.
type MailQueue struct {
	mu      sync.Mutex
	pending []queuedEmail
	send    func(to, subject string, data EmailData, templatePath string) error
	ticker  *time.Ticker
	done    chan struct{}
}

func NewMailQueue(interval time.Duration) *MailQueue {
	q := &MailQueue{
		send: SendEmail,
		done: make(chan struct{}),
	}
	q.ticker = time.NewTicker(interval)
	go q.run()
	return q
}

// newMailQueueForTest builds a stopped queue with an injected sender.
func newMailQueueForTest(send func(to, subject string, data EmailData, templatePath string) error) *MailQueue {
	return &MailQueue{send: send, done: make(chan struct{})}
}

func (q *MailQueue) Enqueue(to, subject string, data EmailData, templatePath string) {
	q.mu.Lock()
	q.pending = append(q.pending, queuedEmail{
		To:           to,
		Subject:      subject,
		Data:         data,
		TemplatePath: templatePath,
	})
	q.mu.Unlock()
}

func (q *MailQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *MailQueue) Stop() {
	if q.ticker != nil {
		q.ticker.Stop()
	}
	close(q.done)
}

func (q *MailQueue) run() {
	for {
		select {
		case <-q.done:
			return
		case <-q.ticker.C:
			q.drainBatch()
		}
	}
}

// drainBatch sends up to mailBatchSize queued emails, requeueing failures
// until they exhaust their attempts.
func (q *MailQueue) drainBatch() {
	q.mu.Lock()
	n := len(q.pending)
	if n > mailBatchSize {
		n = mailBatchSize
	}
	batch := make([]queuedEmail, n)
	copy(batch, q.pending[:n])
	q.pending = q.pending[n:]
	q.mu.Unlock()

	for _, email := range batch {
		if err := q.send(email.To, email.Subject, email.Data, email.TemplatePath); err != nil {
			email.Attempts++
			if email.Attempts >= mailMaxAttempts {
				log.Printf("Dropping email to %s after %d attempts: %v", email.To, email.Attempts, err)
				continue
			}
			log.Printf("Email to %s failed (attempt %d), requeueing: %v", email.To, email.Attempts, err)
			q.mu.Lock()
			q.pending = append(q.pending, email)
			q.mu.Unlock()
		}
	}
}
