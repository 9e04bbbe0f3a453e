package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/valeconecta/conecta/internal/models"
)

const defaultQueueSize = 256

// Notifier queues events and delivers them to per-user inboxes from a
// single worker goroutine. Enqueue never blocks; when the queue is full the
// event is dropped and logged.
type Notifier struct {
	log   *zap.Logger
	inbox *Inbox
	now   func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

func NewNotifier(inbox *Inbox, log *zap.Logger) *Notifier {
	return &Notifier{
		log:   log,
		inbox: inbox,
		now:   time.Now,
		queue: make(chan Event, defaultQueueSize),
		done:  make(chan struct{}),
	}
}

// Start runs the delivery worker until Close.
func (n *Notifier) Start() {
	go func() {
		defer close(n.done)
		for ev := range n.queue {
			n.deliver(ev)
		}
	}()
}

// Close stops accepting events and waits for the queued ones to be delivered.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()
	<-n.done
}

func (n *Notifier) Enqueue(ev Event) {
	if n == nil || ev.UserID == "" {
		return
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}
	select {
	case n.queue <- ev:
	default:
		n.log.Warn("notification dropped, queue full", zap.String("kind", ev.Kind), zap.String("user_id", ev.UserID))
	}
}

func (n *Notifier) deliver(ev Event) {
	n.inbox.add(models.Notification{
		ID:        uuid.NewString(),
		UserID:    ev.UserID,
		Type:      ev.Kind,
		Title:     ev.Title,
		Body:      ev.Body,
		Reference: ev.Reference,
		CreatedAt: n.now(),
	})
	n.log.Debug("notification delivered", zap.String("kind", ev.Kind), zap.String("user_id", ev.UserID), zap.String("reference", ev.Reference))
}
