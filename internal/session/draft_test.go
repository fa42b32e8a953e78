package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokma/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleOrder() models.Order {
	return models.Order{
		Type: models.OrderTypeDelivery,
		Items: []models.OrderItem{
			{ID: "1", Name: "Classic Burger", Price: 25, Quantity: 2, Notes: "no onions"},
		},
		Total:    50,
		Address:  "12 Main St",
		Phone:    "+971501234567",
		Language: models.LanguageAR,
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("order", sampleOrder()))

	loaded, ok, err := store.Load("order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.OrderTypeDelivery, loaded.Type)
	assert.Len(t, loaded.Items, 1)
	assert.Equal(t, "no onions", loaded.Items[0].Notes)
	assert.Equal(t, models.LanguageAR, loaded.Language)
}

func TestSaveReplacesExistingDraft(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("order", sampleOrder()))

	updated := sampleOrder()
	updated.Items[0].Quantity = 5
	updated.Total = 125
	require.NoError(t, store.Save("order", updated))

	loaded, ok, err := store.Load("order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, loaded.Items[0].Quantity)
	assert.InDelta(t, 125, loaded.Total, 1e-9)
}

func TestLoadMissingDraft(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Load("order")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteDraft(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("order", sampleOrder()))
	require.NoError(t, store.Delete("order"))

	_, ok, err := store.Load("order")
	require.NoError(t, err)
	assert.False(t, ok)

	// A second save after deletion must work; the unique index row is gone
	// for good, not soft-deleted.
	require.NoError(t, store.Save("order", sampleOrder()))
	_, ok, err = store.Load("order")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteMissingDraftIsNoError(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Delete("order"))
}

func TestKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)

	first := sampleOrder()
	second := sampleOrder()
	second.Items[0].ID = "2"

	require.NoError(t, store.Save("a", first))
	require.NoError(t, store.Save("b", second))
	require.NoError(t, store.Delete("a"))

	_, ok, err := store.Load("a")
	require.NoError(t, err)
	assert.False(t, ok)

	loaded, ok, err := store.Load("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", loaded.Items[0].ID)
}
