package fsm

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStore(client, ttl)
}

func TestRedisStore_SaveAndGet(t *testing.T) {
	_, store := newMiniRedisStore(t, 24*time.Hour)
	ctx := context.Background()

	session := Start(FlowWorkerProfile)
	session.Draft.Name = "Ivan"
	session.ToggleOccupation("painter")
	require.NoError(t, store.Save(ctx, 100, session))

	loaded, err := store.Get(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, FlowWorkerProfile, loaded.Flow)
	assert.Equal(t, StepName, loaded.Step)
	assert.Equal(t, "Ivan", loaded.Draft.Name)
	assert.Equal(t, []string{"painter"}, loaded.Draft.Occupations)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestRedisStore_MissingSessionIsNil(t *testing.T) {
	_, store := newMiniRedisStore(t, time.Hour)

	session, err := store.Get(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisStore_Clear(t *testing.T) {
	_, store := newMiniRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 1, Start(FlowJob)))
	require.NoError(t, store.Clear(ctx, 1))

	session, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisStore_SessionExpires(t *testing.T) {
	mr, store := newMiniRedisStore(t, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 5, Start(FlowReview)))

	mr.FastForward(23 * time.Hour)
	session, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, session)

	mr.FastForward(2 * time.Hour)
	session, err = store.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, session)
}
