package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"processing": StatusProcessing,
		"Processing": StatusProcessing,
		"PREPARING":  StatusPreparing,
		" ready ":    StatusReady,
		"completed":  StatusCompleted,
		"cancelled":  StatusCancelled,
		"canceled":   StatusCancelled,
		"":           StatusUnknown,
		"delivered":  StatusUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseStatus(raw), "ParseStatus(%q)", raw)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.False(t, StatusReady.Terminal())
	assert.False(t, StatusUnknown.Terminal())
}

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{ID: "1", Price: 25, Quantity: 2},
		{ID: "2", Price: 8.5, Quantity: 3},
	}
	assert.InDelta(t, 75.5, ComputeTotal(items), 1e-9)
	assert.Zero(t, ComputeTotal(nil))
}

func TestMenuItemDisplayStrings(t *testing.T) {
	item := MenuItem{
		Name:          "Classic Burger",
		NameAr:        "برجر كلاسيكي",
		Description:   "Juicy beef patty",
		DescriptionAr: "قطعة لحم طرية",
	}
	assert.Equal(t, "Classic Burger", item.DisplayName(LanguageEN))
	assert.Equal(t, "برجر كلاسيكي", item.DisplayName(LanguageAR))
	assert.Equal(t, "قطعة لحم طرية", item.DisplayDescription(LanguageAR))

	// Missing Arabic strings fall back to English.
	plain := MenuItem{Name: "Soup"}
	assert.Equal(t, "Soup", plain.DisplayName(LanguageAR))
}

func TestFilterByCategory(t *testing.T) {
	items := []MenuItem{
		{ID: "1", Category: "Burgers"},
		{ID: "2", Category: "Pizza"},
		{ID: "3", Category: "Burgers"},
	}
	assert.Len(t, FilterByCategory(items, MenuCategoryAll), 3)
	assert.Len(t, FilterByCategory(items, MenuCategoryBurgers), 2)
	assert.Empty(t, FilterByCategory(items, MenuCategoryDesserts))
}
