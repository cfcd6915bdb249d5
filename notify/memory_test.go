package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTray_PostAssignsDefaults(t *testing.T) {
	tray := NewMemoryTray()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tray.now = func() time.Time { return fixed }

	n, err := tray.Post(context.Background(), Notification{ID: 3, Title: "Alice"})
	require.NoError(t, err)

	_, err = uuid.Parse(n.Key)
	assert.NoError(t, err, "generated key should be a uuid")
	assert.Equal(t, fixed, n.PostedAt)

	kept, err := tray.Post(context.Background(), Notification{ID: 4, Key: "chat-4", PostedAt: fixed.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "chat-4", kept.Key)
	assert.Equal(t, fixed.Add(time.Hour), kept.PostedAt)
}

func TestMemoryTray_ActiveIsSorted(t *testing.T) {
	tray := NewMemoryTray()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, _ = tray.Post(ctx, Notification{ID: 2, Key: "b", PostedAt: base.Add(2 * time.Minute)})
	_, _ = tray.Post(ctx, Notification{ID: SummaryID, Key: "summary", PostedAt: base})
	_, _ = tray.Post(ctx, Notification{ID: 1, Key: "a", PostedAt: base.Add(time.Minute)})
	_, _ = tray.Post(ctx, Notification{ID: 1, Key: "a2", PostedAt: base.Add(time.Minute)})

	active, err := tray.Active(ctx)
	require.NoError(t, err)

	keys := make([]string, 0, len(active))
	for _, n := range active {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []string{"summary", "a", "a2", "b"}, keys)
}

func TestMemoryTray_PostReplacesKey(t *testing.T) {
	tray := NewMemoryTray()
	ctx := context.Background()

	_, _ = tray.Post(ctx, Notification{ID: 9, Key: "chat", Title: "first"})
	_, _ = tray.Post(ctx, Notification{ID: 9, Key: "chat", Title: "second"})

	active, err := tray.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Title)
}

func TestMemoryTray_CancelAndSummary(t *testing.T) {
	tray := NewMemoryTray()
	ctx := context.Background()

	_, _ = tray.Post(ctx, Notification{ID: SummaryID, Key: "summary", GroupKey: "messages"})
	_, _ = tray.Post(ctx, Notification{ID: 11, Key: "chat-11", GroupKey: "messages"})

	TryCancelSummary(ctx, tray)
	active, _ := tray.Active(ctx)
	assert.Len(t, active, 2, "a real notification is still shown")

	require.NoError(t, tray.Cancel(ctx, 11))
	active, _ = tray.Active(ctx)
	require.Len(t, active, 1)
	assert.True(t, active[0].IsSummary())

	TryCancelSummary(ctx, tray)
	active, _ = tray.Active(ctx)
	assert.Empty(t, active)

	require.NoError(t, tray.Cancel(ctx, 404))
}

func TestMemoryTray_Concurrent(t *testing.T) {
	tray := NewMemoryTray()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, _ = tray.Post(ctx, Notification{ID: id})
			_, _ = tray.Active(ctx)
		}(i)
	}
	wg.Wait()

	active, err := tray.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 50)

	require.NoError(t, tray.CancelAll(ctx))
	active, _ = tray.Active(ctx)
	assert.Empty(t, active)
}
