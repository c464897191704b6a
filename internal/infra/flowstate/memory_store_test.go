package flowstate

import (
	"context"
	"testing"
	"time"

	"cliphub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTakeConsumesOnce(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	flow := service.FlowState{
		UserID:   uuid.New(),
		State:    "state-1",
		ReturnTo: "/dashboard",
	}

	require.NoError(t, store.Put(ctx, "key-1", flow, time.Minute))

	got, ok := store.Take(ctx, "key-1")
	require.True(t, ok)
	assert.Equal(t, flow.UserID, got.UserID)
	assert.Equal(t, "state-1", got.State)

	// A replayed callback misses.
	_, ok = store.Take(ctx, "key-1")
	assert.False(t, ok)
}

func TestMemoryStoreTakeUnknownKey(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, ok := store.Take(context.Background(), "never-stored")
	assert.False(t, ok)
}

func TestMemoryStoreCloseStopsSweeper(t *testing.T) {
	store := NewMemoryStore()

	closed := make(chan struct{})
	go func() {
		store.Close()
		close(closed)
	}()

	// Close blocks until the sweeper goroutine has exited.
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not stop the sweeper")
	}
}

func TestMemoryStoreExpiredEntry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "key-1", service.FlowState{State: "s"}, -time.Second))

	_, ok := store.Take(ctx, "key-1")
	assert.False(t, ok)

	// Expired entries are gone for good, not just hidden.
	_, ok = store.Take(ctx, "key-1")
	assert.False(t, ok)
}
