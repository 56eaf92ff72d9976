package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

func TestDocumentStore_MissingFile(t *testing.T) {
	store := NewDocumentStore(filepath.Join(t.TempDir(), "pantry.json"))

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestDocumentStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pantry.json")
	store := NewDocumentStore(path)
	ctx := context.Background()

	want := &pantry.Snapshot{
		Items: map[string][]pantry.Item{
			"Fruits":                   {{ID: 1, Name: "Pommes", Category: "Fruits", Checked: true, Price: 2.5, Quantity: 3, Unit: "kg", Icon: pantry.IconApple}},
			pantry.DefaultCategoryName: {{ID: 2, Name: "Piles", Category: pantry.DefaultCategoryName, Quantity: 1, IsEssential: true, Icon: pantry.IconPackage}},
		},
		Budget:     42.5,
		Categories: []pantry.Category{{ID: "c1", Name: "Fruits"}, {ID: pantry.DefaultCategoryID, Name: pantry.DefaultCategoryName}},
		UpdatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestDocumentStore_Overwrite(t *testing.T) {
	store := NewDocumentStore(filepath.Join(t.TempDir(), "pantry.json"))
	ctx := context.Background()

	first := &pantry.Snapshot{Items: map[string][]pantry.Item{}, Budget: 10, Categories: []pantry.Category{}}
	second := &pantry.Snapshot{Items: map[string][]pantry.Item{}, Budget: 20, Categories: []pantry.Category{}}
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Budget)
}

func TestDocumentStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewDocumentStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestDocumentStore_CanceledContext(t *testing.T) {
	store := NewDocumentStore(filepath.Join(t.TempDir(), "pantry.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, &pantry.Snapshot{}), context.Canceled)
}
