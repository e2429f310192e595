package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	sqlStore, err := OpenSQL("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlStore.Close() })
	return map[string]Store{
		DriverMemory: NewMemory(),
		DriverSQLite: sqlStore,
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s Store)) {
	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) { fn(t, s) })
	}
}

func TestListEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		got, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		var last int64
		for i := 0; i < 5; i++ {
			r, err := s.Create(ctx, "n", "d")
			require.NoError(t, err)
			assert.Greater(t, r.ID, last)
			last = r.ID
		}
		assert.Equal(t, int64(5), last)
	})
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		a, err := s.Create(ctx, "a", "a")
		require.NoError(t, err)
		b, err := s.Create(ctx, "b", "b")
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, b.ID))
		require.NoError(t, s.Delete(ctx, a.ID))

		c, err := s.Create(ctx, "c", "c")
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
	})
}

func TestListKeepsCreationOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		names := []string{"first", "second", "third"}
		for _, n := range names {
			_, err := s.Create(ctx, n, n+" desc")
			require.NoError(t, err)
		}
		// updating must not move an entry
		_, err := s.Update(ctx, 1, "first*", "changed")
		require.NoError(t, err)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, Resource{ID: 1, Name: "first*", Description: "changed"}, got[0])
		assert.Equal(t, "second", got[1].Name)
		assert.Equal(t, "third", got[2].Name)
	})
}

func TestGet(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		created, err := s.Create(ctx, "Widget", "A widget")
		require.NoError(t, err)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		_, err = s.Get(ctx, created.ID+1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateMissingLeavesSequence(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		_, err := s.Create(ctx, "Widget", "A widget")
		require.NoError(t, err)
		before, err := s.List(ctx)
		require.NoError(t, err)

		_, err = s.Update(ctx, 42, "x", "y")
		assert.ErrorIs(t, err, ErrNotFound)

		after, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		for _, n := range []string{"a", "b", "c"} {
			_, err := s.Create(ctx, n, n)
			require.NoError(t, err)
		}

		require.NoError(t, s.Delete(ctx, 2))
		assert.ErrorIs(t, s.Delete(ctx, 2), ErrNotFound)

		_, err := s.Get(ctx, 2)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})
}

func TestMemoryListIsACopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.Create(ctx, "a", "a")
	require.NoError(t, err)

	got, err := m.List(ctx)
	require.NoError(t, err)
	got[0].Name = "mutated"

	r, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", r.Name)
}

func TestOpen(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(DriverSQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, s)
	assert.NoError(t, s.Close())

	_, err = Open("mysql")
	assert.Error(t, err)
}

func TestLoadSeedAndSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`resources:
  - name: Widget
    description: A widget
  - name: Gadget
    description: A gadget
`), 0o600))

	entries, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	forEachBackend(t, func(t *testing.T, s Store) {
		n, err := Seed(context.Background(), s, entries)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Resource{
			{ID: 1, Name: "Widget", Description: "A widget"},
			{ID: 2, Name: "Gadget", Description: "A gadget"},
		}, got)
	})
}

func TestLoadSeedRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resources:\n  - name: Widget\n"), 0o600))

	_, err := LoadSeed(path)
	assert.ErrorContains(t, err, "entry 0")
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeedBareList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Widget\n  description: A widget\n"), 0o600))

	entries, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []SeedEntry{{Name: "Widget", Description: "A widget"}}, entries)
}

func TestLoadSeedEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	entries, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
