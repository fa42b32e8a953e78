package models

// MenuItem represents a dish on the menu as served by the catalog endpoint.
// Name and description carry both languages; the cart keeps whichever the
// guest's language resolved to at add time.
type MenuItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameAr        string  `json:"nameAr"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"descriptionAr"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
}

// DisplayName returns the name for the given language.
func (mi MenuItem) DisplayName(lang Language) string {
	if lang == LanguageAR && mi.NameAr != "" {
		return mi.NameAr
	}
	return mi.Name
}

// DisplayDescription returns the description for the given language.
func (mi MenuItem) DisplayDescription(lang Language) string {
	if lang == LanguageAR && mi.DescriptionAr != "" {
		return mi.DescriptionAr
	}
	return mi.Description
}

// MenuCategory represents the category of a menu item.
type MenuCategory string

const (
	MenuCategoryAll       MenuCategory = "All"
	MenuCategoryBurgers   MenuCategory = "Burgers"
	MenuCategoryPizza     MenuCategory = "Pizza"
	MenuCategorySalads    MenuCategory = "Salads"
	MenuCategorySeafood   MenuCategory = "Seafood"
	MenuCategoryDesserts  MenuCategory = "Desserts"
	MenuCategoryBeverages MenuCategory = "Beverages"
)

// MenuCategories lists the selectable category filters in display order.
var MenuCategories = []MenuCategory{
	MenuCategoryAll,
	MenuCategoryBurgers,
	MenuCategoryPizza,
	MenuCategorySalads,
	MenuCategorySeafood,
	MenuCategoryDesserts,
	MenuCategoryBeverages,
}

// FilterByCategory returns the items in the given category; MenuCategoryAll
// returns the input unchanged.
func FilterByCategory(items []MenuItem, category MenuCategory) []MenuItem {
	if category == MenuCategoryAll {
		return items
	}
	var filtered []MenuItem
	for _, item := range items {
		if item.Category == string(category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
