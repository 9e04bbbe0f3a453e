package alerts

import (
	"errors"
	"sync"
	"time"

	"github.com/valeconecta/conecta/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Inbox keeps each user's notifications, newest first.
type Inbox struct {
	mu     sync.Mutex
	byUser map[string][]*models.Notification
}

func NewInbox() *Inbox {
	return &Inbox{byUser: make(map[string][]*models.Notification)}
}

func (in *Inbox) add(n models.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.byUser[n.UserID] = append([]*models.Notification{&n}, in.byUser[n.UserID]...)
}

// List returns a user's notifications and how many are unread.
func (in *Inbox) List(userID string) ([]models.Notification, int) {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]models.Notification, 0, len(in.byUser[userID]))
	unread := 0
	for _, n := range in.byUser[userID] {
		if n.ReadAt == nil {
			unread++
		}
		cp := *n
		out = append(out, cp)
	}
	return out, unread
}

// MarkRead marks one of the user's notifications as read. Marking twice
// keeps the first read time.
func (in *Inbox) MarkRead(userID, id string, at time.Time) (models.Notification, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, n := range in.byUser[userID] {
		if n.ID == id {
			if n.ReadAt == nil {
				n.ReadAt = &at
			}
			return *n, nil
		}
	}
	return models.Notification{}, ErrNotificationNotFound
}
