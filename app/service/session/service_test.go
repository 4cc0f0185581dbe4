package session

import (
	"testing"
	"time"

	"legalmind/app/config"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Service {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, &config.Config{
		Session: config.Session{
			TTL:          2 * time.Hour,
			ReapInterval: 10 * time.Minute,
		},
	})

	store, err := New(di)
	require.NoError(t, err)

	return store
}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get(1)
	assert.False(t, ok)

	sess := store.GetOrCreate(1)
	require.NotNil(t, sess)
	assert.False(t, sess.Active)

	again := store.GetOrCreate(1)
	assert.Same(t, sess, again)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestCreateOrReplace(t *testing.T) {
	store := newTestStore(t)

	first := store.GetOrCreate(1)
	first.Lock()
	first.Active = true
	first.Slots["incident_date"] = "אתמול"
	first.Unlock()

	replaced := store.CreateOrReplace(1)
	assert.NotSame(t, first, replaced)
	assert.False(t, replaced.Active)
	assert.Empty(t, replaced.Slots)
	assert.Equal(t, 1, store.Len())
}

func TestReapOnce(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	stale := store.GetOrCreate(1)
	stale.Lock()
	stale.Active = true // active sessions are reaped too
	stale.LastActivity = now.Add(-3 * time.Hour)
	stale.Unlock()

	fresh := store.GetOrCreate(2)
	fresh.Lock()
	fresh.LastActivity = now.Add(-time.Hour)
	fresh.Unlock()

	reaped := store.reapOnce(now)

	assert.Equal(t, 1, reaped)
	_, ok := store.Get(1)
	assert.False(t, ok, "stale session must be evicted regardless of active flag")
	_, ok = store.Get(2)
	assert.True(t, ok, "fresh session must be retained")
}

func TestReapOnce_ExactlyAtThresholdRetained(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	sess := store.GetOrCreate(1)
	sess.Lock()
	sess.LastActivity = now.Add(-2 * time.Hour)
	sess.Unlock()

	assert.Zero(t, store.reapOnce(now))
	_, ok := store.Get(1)
	assert.True(t, ok)
}
