package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTray is an in-process Tray. It is safe for concurrent use.
type MemoryTray struct {
	mu    sync.Mutex
	items map[string]Notification
	now   func() time.Time
}

// NewMemoryTray returns an empty MemoryTray.
func NewMemoryTray() *MemoryTray {
	return &MemoryTray{
		items: make(map[string]Notification),
		now:   time.Now,
	}
}

// Post adds n to the tray and returns the stored entry. An empty Key gets a
// random one and a zero PostedAt gets the current time. Posting an existing
// Key replaces that entry.
func (t *MemoryTray) Post(_ context.Context, n Notification) (Notification, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = stamp(n, t.now)
	t.items[n.Key] = n
	return n, nil
}

// Cancel removes every entry with the given ID.
func (t *MemoryTray) Cancel(_ context.Context, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, n := range t.items {
		if n.ID == id {
			delete(t.items, key)
		}
	}
	return nil
}

// Active implements Tray.
func (t *MemoryTray) Active(_ context.Context) ([]Notification, error) {
	t.mu.Lock()
	list := make([]Notification, 0, len(t.items))
	for _, n := range t.items {
		list = append(list, n)
	}
	t.mu.Unlock()

	sortNotifications(list)
	return list, nil
}

// CancelAll implements Tray.
func (t *MemoryTray) CancelAll(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.items)
	return nil
}

// stamp fills in the Key and PostedAt defaults.
func stamp(n Notification, now func() time.Time) Notification {
	if n.Key == "" {
		n.Key = uuid.NewString()
	}
	if n.PostedAt.IsZero() {
		n.PostedAt = now()
	}
	return n
}
