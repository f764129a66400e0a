package testutil

import (
	"context"
	"sync"

	"github.com/Leganyst/session-scheduler/internal/notification"
)

// Notifier запоминает всё, что движок отправил после коммита.
type Notifier struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (n *Notifier) Dispatch(_ context.Context, msg notification.Message) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	return true
}

func (n *Notifier) Messages() []notification.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification.Message, len(n.msgs))
	copy(out, n.msgs)
	return out
}

// ByTemplate: сообщения одного шаблона в порядке отправки.
func (n *Notifier) ByTemplate(template string) []notification.Message {
	var out []notification.Message
	for _, m := range n.Messages() {
		if m.Template == template {
			out = append(out, m)
		}
	}
	return out
}
