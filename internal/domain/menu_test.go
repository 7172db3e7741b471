package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(name string, category *string) FoodItem {
	return FoodItem{Name: name, CategoryName: category}
}

func strPtr(s string) *string { return &s }

func TestGroupMenuByCategory_KeepsFirstOccurrenceOrder(t *testing.T) {
	items := []FoodItem{
		menuItem("Margherita", strPtr("Pizza")),
		menuItem("Tiramisu", strPtr("Desserts")),
		menuItem("Diavola", strPtr("Pizza")),
		menuItem("Burrata", strPtr("Appetizers")),
	}

	m := GroupMenuByCategory(items)

	assert.Equal(t, []string{"Pizza", "Desserts", "Appetizers"}, m.Categories())
	assert.Equal(t, 3, m.Len())

	pizza := m.Items("Pizza")
	require.Len(t, pizza, 2)
	assert.Equal(t, "Margherita", pizza[0].Name)
	assert.Equal(t, "Diavola", pizza[1].Name)
}

func TestGroupMenuByCategory_MissingCategoryFallsBackToOther(t *testing.T) {
	items := []FoodItem{
		menuItem("Mystery Plate", nil),
		menuItem("Empty Label", strPtr("")),
		menuItem("Pho Bo", strPtr("Mains")),
	}

	m := GroupMenuByCategory(items)

	assert.Equal(t, []string{"Other", "Mains"}, m.Categories())
	assert.Len(t, m.Items("Other"), 2)
}

func TestGroupMenuByCategory_Empty(t *testing.T) {
	m := GroupMenuByCategory([]FoodItem{})

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Items("anything"))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestMenuByCategory_MarshalJSONKeyOrder(t *testing.T) {
	items := []FoodItem{
		menuItem("Goi Cuon", strPtr("Appetizers")),
		menuItem("Pho Bo", strPtr("Mains")),
		menuItem("Banh Mi", strPtr("Mains")),
	}

	data, err := json.Marshal(GroupMenuByCategory(items))
	require.NoError(t, err)

	// key order must survive the round trip
	assert.Less(t,
		indexOf(t, data, `"Appetizers"`),
		indexOf(t, data, `"Mains"`),
	)

	var decoded map[string][]FoodItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded["Mains"], 2)
	assert.Equal(t, "Pho Bo", decoded["Mains"][0].Name)
}

func TestChildCollections_MarshalAsEmptyArraysNotMissingKeys(t *testing.T) {
	item, err := json.Marshal(FoodItem{ID: "fi-1", Variants: []FoodItemVariant{}})
	require.NoError(t, err)
	assert.Contains(t, string(item), `"variants":[]`)

	restaurant, err := json.Marshal(Restaurant{ID: "r-1", MenuItems: []MenuItemSummary{}})
	require.NoError(t, err)
	assert.Contains(t, string(restaurant), `"menu_items":[]`)

	order, err := json.Marshal(Order{ID: "o-1", Items: []OrderItem{}})
	require.NoError(t, err)
	assert.Contains(t, string(order), `"order_items":[]`)

	grouped, err := json.Marshal(GroupMenuByCategory([]FoodItem{
		{Name: "Margherita", Variants: []FoodItemVariant{}},
	}))
	require.NoError(t, err)
	assert.Contains(t, string(grouped), `"variants":[]`)
}

func indexOf(t *testing.T, data []byte, sub string) int {
	t.Helper()
	idx := strings.Index(string(data), sub)
	require.GreaterOrEqual(t, idx, 0, "missing %s in %s", sub, data)
	return idx
}
