package pantry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

func categoryByName(t *testing.T, store *pantry.Store, name string) pantry.Category {
	t.Helper()

	for _, cat := range store.Categories() {
		if cat.Name == name {
			return cat
		}
	}
	t.Fatalf("category %q not registered", name)
	return pantry.Category{}
}

func TestNewStore_DefaultCategoryLast(t *testing.T) {
	store := pantry.NewStore(pantry.SeedCategories...)

	cats := store.Categories()
	require.Len(t, cats, len(pantry.SeedCategories)+1)
	assert.Equal(t, pantry.Category{ID: pantry.DefaultCategoryID, Name: pantry.DefaultCategoryName}, cats[len(cats)-1])
}

func TestStore_AddCategory(t *testing.T) {
	store := pantry.NewStore("Fruits")

	_, err := store.AddCategory("  ")
	assert.ErrorIs(t, err, pantry.ErrInvalidName)

	first, err := store.AddCategory(" Épices ")
	require.NoError(t, err)
	assert.Equal(t, "Épices", first.Name)

	second, err := store.AddCategory("Épices")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	cats := store.Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, pantry.DefaultCategoryID, cats[3].ID)
}

func TestStore_RenameCategory(t *testing.T) {
	store := pantry.NewStore("Fruits")
	item, err := store.AddItem(pantry.NewItem{Category: "Fruits", Name: "Pommes"})
	require.NoError(t, err)
	fruits := categoryByName(t, store, "Fruits")

	_, err = store.RenameCategory(fruits.ID, " ")
	assert.ErrorIs(t, err, pantry.ErrInvalidName)

	_, err = store.RenameCategory(pantry.DefaultCategoryID, "Divers")
	assert.ErrorIs(t, err, pantry.ErrDefaultCategory)

	_, err = store.RenameCategory("missing", "Divers")
	assert.ErrorIs(t, err, pantry.ErrCategoryNotFound)

	renamed, err := store.RenameCategory(fruits.ID, "Fruits frais")
	require.NoError(t, err)
	assert.Equal(t, fruits.ID, renamed.ID)

	assert.Empty(t, store.ItemsIn("Fruits"))
	moved := store.ItemsIn("Fruits frais")
	require.Len(t, moved, 1)
	assert.Equal(t, item.ID, moved[0].ID)
	assert.Equal(t, "Fruits frais", moved[0].Category)
}

func TestStore_DeleteCategory_ReassignsItems(t *testing.T) {
	store := pantry.NewStore("Fruits", "Boissons")
	for _, name := range []string{"Eau", "Jus"} {
		_, err := store.AddItem(pantry.NewItem{Category: "Boissons", Name: name})
		require.NoError(t, err)
	}
	_, err := store.AddItem(pantry.NewItem{Category: "Fruits", Name: "Pommes"})
	require.NoError(t, err)

	before := store.Len()
	boissons := categoryByName(t, store, "Boissons")

	moved, err := store.DeleteCategory(boissons.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, moved)
	assert.Equal(t, before, store.Len())
	assert.False(t, store.HasCategory("Boissons"))

	others := store.ItemsIn(pantry.DefaultCategoryName)
	require.Len(t, others, 2)
	for _, it := range others {
		assert.Equal(t, pantry.DefaultCategoryName, it.Category)
	}
}

func TestStore_DeleteCategory_Errors(t *testing.T) {
	store := pantry.NewStore("Fruits")

	_, err := store.DeleteCategory(pantry.DefaultCategoryID)
	assert.ErrorIs(t, err, pantry.ErrDefaultCategory)

	_, err = store.DeleteCategory("missing")
	assert.ErrorIs(t, err, pantry.ErrCategoryNotFound)

	assert.Len(t, store.Categories(), 2)
}

func TestStore_DeleteCategory_DuplicateNameKeepsItems(t *testing.T) {
	store := pantry.NewStore("Fruits")
	dup, err := store.AddCategory("Fruits")
	require.NoError(t, err)
	_, err = store.AddItem(pantry.NewItem{Category: "Fruits", Name: "Pommes"})
	require.NoError(t, err)

	moved, err := store.DeleteCategory(dup.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, moved)
	assert.Len(t, store.ItemsIn("Fruits"), 1)
}

func TestParseIcon(t *testing.T) {
	assert.Equal(t, pantry.IconApple, pantry.ParseIcon("Apple"))
	assert.Equal(t, pantry.IconFrozen, pantry.ParseIcon("snow-flake"))
	assert.Equal(t, pantry.IconPackage, pantry.ParseIcon(""))
	assert.Equal(t, pantry.IconPackage, pantry.ParseIcon("spaceship"))
	assert.Contains(t, pantry.Icons(), pantry.IconPackage)
}
