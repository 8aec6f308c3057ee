package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/cardi/internal/models"
)

func TestStore_PutGetRoundTrip(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := sampleProject("Sweater")

			require.NoError(t, store.Put(ctx, want.Name, want))

			got, err := store.Get(ctx, "Sweater")
			require.NoError(t, err)
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Craft, got.Craft)
			assert.Equal(t, want.CurrentRow, got.CurrentRow)
			assert.Equal(t, want.Notes, got.Notes)
			assert.Equal(t, want.Progress, got.Progress)
			assert.Equal(t, want.Status, got.Status)
			assert.True(t, want.Started.Equal(got.Started), "started %v != %v", want.Started, got.Started)
		})
	}
}

func TestStore_NegativeRowRoundTrip(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := models.NewProject("Scarf", models.CraftCrochet)
			p.CurrentRow = -3

			require.NoError(t, store.Put(ctx, p.Name, p))
			got, err := store.Get(ctx, p.Name)
			require.NoError(t, err)
			assert.Equal(t, int32(-3), got.CurrentRow)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := sampleProject("Sweater")
			require.NoError(t, store.Put(ctx, p.Name, p))

			p.Progress = 90
			p.Notes = "blocking"
			require.NoError(t, store.Put(ctx, p.Name, p))

			got, err := store.Get(ctx, p.Name)
			require.NoError(t, err)
			assert.Equal(t, int32(90), got.Progress)
			assert.Equal(t, "blocking", got.Notes)

			all, err := store.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := sampleProject("Sweater")
			require.NoError(t, store.Put(ctx, p.Name, p))

			require.NoError(t, store.Delete(ctx, p.Name))

			_, err := store.Get(ctx, p.Name)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, store.Delete(ctx, p.Name), ErrNotFound)
		})
	}
}

func TestStore_ListOrderedByName(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for _, n := range []string{"Socks", "Blanket", "Mittens"} {
				require.NoError(t, store.Put(ctx, n, models.NewProject(n, models.CraftKnitting)))
			}

			all, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "Blanket", all[0].Name)
			assert.Equal(t, "Mittens", all[1].Name)
			assert.Equal(t, "Socks", all[2].Name)
		})
	}
}

func TestStore_RejectsUnsafeKeys(t *testing.T) {
	for name, store := range allStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "..", "a/b", `a\b`, ".hidden"} {
				err := store.Put(context.Background(), key, models.NewProject("x", models.CraftBoth))
				assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
			}
		})
	}
}

func TestExists(t *testing.T) {
	store := setupTestFileStore(t, FormatJSON)
	ctx := context.Background()

	ok, err := Exists(ctx, store, "Hat")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "Hat", models.NewProject("Hat", models.CraftCrochet)))

	ok, err = Exists(ctx, store, "Hat")
	require.NoError(t, err)
	assert.True(t, ok)
}
