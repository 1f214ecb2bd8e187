package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	// Unknown sessions come back empty, not as errors.
	sess, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, sess.PaymentAuthorized)
	assert.Empty(t, sess.Messages)

	sess.PaymentAuthorized = true
	sess.CardLast4 = "3456"
	sess.Messages = append(sess.Messages, models.ChatMessage{Role: "user", Content: "hi"})
	require.NoError(t, store.Set(ctx, "s1", sess))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, loaded.PaymentAuthorized)
	assert.Equal(t, "3456", loaded.CardLast4)
	require.Len(t, loaded.Messages, 1)

	// Mutating a loaded copy must not leak into the store.
	loaded.PaymentAuthorized = false
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, again.PaymentAuthorized)

	require.NoError(t, store.Delete(ctx, "s1"))
	gone, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, gone.PaymentAuthorized)
}
