package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_EmptyReturnsNil(t *testing.T) {
	s := openTestStore(t)

	sess, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	want := Session{Token: "jwt", Email: "bob@example.com", Name: "Bob", Role: "employee"}

	require.NoError(t, s.Save(ctx, want))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	want.Token = "jwt2"
	require.NoError(t, s.Save(ctx, want))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt2", got.Token)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, Session{Token: "jwt", Email: "ann@example.com", Role: "manager"}))
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ann@example.com", got.Email)
	assert.Equal(t, "manager", got.Role)
}

func TestKV_GetMissingIsNilNil(t *testing.T) {
	s := openTestStore(t)

	v, err := kv{db: s.db}.get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}
