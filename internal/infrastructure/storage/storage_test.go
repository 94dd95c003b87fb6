package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`[1,2,3]`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(got), "stored values are copied")

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"), "deleting an absent key is fine")
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	alice := Namespace(base, SessionPrefix("alice"))
	bob := Namespace(base, SessionPrefix("bob"))

	require.NoError(t, alice.Set(ctx, KeyCart, []byte(`"a"`)))
	require.NoError(t, bob.Set(ctx, KeyCart, []byte(`"b"`)))

	raw, err := base.Get(ctx, "session:alice:cart")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(raw))

	require.NoError(t, alice.Delete(ctx, KeyCart))
	_, err = alice.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := bob.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `"b"`, string(got))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type order struct {
		ID    string `json:"id"`
		Total int    `json:"total"`
	}

	require.NoError(t, SetJSON(ctx, s, KeyCurrentOrder, order{ID: "ORDER-1", Total: 30}))

	var got order
	require.NoError(t, GetJSON(ctx, s, KeyCurrentOrder, &got))
	assert.Equal(t, order{ID: "ORDER-1", Total: 30}, got)

	require.NoError(t, s.Set(ctx, KeyLastOrder, []byte("{not json")))
	assert.Error(t, GetJSON(ctx, s, KeyLastOrder, &got))

	assert.ErrorIs(t, GetJSON(ctx, s, "absent", &got), ErrNotFound)
}
