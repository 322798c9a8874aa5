package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreGetMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get("nothing-here")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreSetOverwrites(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(OrdersKey, []byte(`[1]`)))
	require.NoError(t, s.Set(OrdersKey, []byte(`[1,2]`)))

	got, ok, err := s.Get(OrdersKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(OrdersKey, []byte(`[]`)))
	require.NoError(t, s.Set(SessionKey, []byte(`{"email":"a@b.fr"}`)))

	orders, ok, err := s.Get(OrdersKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(orders))

	session, ok, err := s.Get(SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"email":"a@b.fr"}`, string(session))
}
