package notification

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mu   sync.Mutex
	sent []Message
	err  error
	done chan struct{}
}

func (m *mockSender) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	if m.done != nil {
		m.done <- struct{}{}
	}
	return m.err
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, 1, &mockSender{}, quietLogger())

	ok := wp.Dispatch(context.Background(), Message{Recipient: "a", Template: TemplateWaitlistPromoted})
	require.True(t, ok)

	select {
	case msg := <-wp.jobs:
		assert.Equal(t, "a", msg.Recipient)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DropsWhenFull(t *testing.T) {
	wp := NewWorkerPool(1, 1, &mockSender{}, quietLogger())

	require.True(t, wp.Dispatch(context.Background(), Message{Recipient: "first"}))
	// воркеры не запущены: вторая отправка не должна блокироваться
	assert.False(t, wp.Dispatch(context.Background(), Message{Recipient: "second"}))
}

func TestWorkerPool_WorkerSends(t *testing.T) {
	sender := &mockSender{done: make(chan struct{}, 2), err: errors.New("smtp down")}
	wp := NewWorkerPool(2, 4, sender, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	wp.Start(ctx)

	wp.Dispatch(ctx, Message{Recipient: "c1", Template: TemplateEnrollmentCancelled})
	wp.Dispatch(ctx, Message{Recipient: "c2", Template: TemplateEnrollmentCancelled})

	for i := 0; i < 2; i++ {
		select {
		case <-sender.done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for send")
		}
	}

	cancel()
	wp.Wait()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.ElementsMatch(t, []string{"c1", "c2"}, []string{sender.sent[0].Recipient, sender.sent[1].Recipient})
}

func TestLogSender_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	sender := &LogSender{Logger: log.NewWithOptions(&buf, log.Options{})}

	err := sender.Send(context.Background(), Message{
		Recipient: "guest@example.com",
		Template:  TemplateGuestRescheduleProposed,
		Payload:   map[string]string{"token": "s3cr3t-token", "signup_id": "42"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "s3cr3t-token")
	assert.Contains(t, out, redacted)
	assert.Contains(t, out, "signup_id")
}
