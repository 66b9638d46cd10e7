package aggregation

import "strings"

// Canonical category labels. Every persisted or returned record carries one
// of these (or a passed-through upstream label when no mapping exists).
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryShoes       = "shoes"
	CategoryJewelry     = "jewelry"
	CategoryBeauty      = "beauty"
	CategoryHome        = "home"
	CategoryAccessories = "accessories"
	CategoryAutomotive  = "automotive"
	CategoryGroceries   = "groceries"
	CategoryMisc        = "misc"
)

// categoryMappings maps each upstream's raw category label (lowercase, as
// the source spells it) to a canonical label. Treated as configuration
// data: the map is built once and never mutated.
var categoryMappings = map[string]string{
	// FakeStore
	"men's clothing":   CategoryClothing,
	"women's clothing": CategoryClothing,
	"jewelery":         CategoryJewelry,
	"electronics":      CategoryElectronics,

	// DummyJSON
	"beauty":             CategoryBeauty,
	"fragrances":         CategoryBeauty,
	"skin-care":          CategoryBeauty,
	"furniture":          CategoryHome,
	"home-decoration":    CategoryHome,
	"kitchen-accessories": CategoryHome,
	"groceries":          CategoryGroceries,
	"laptops":            CategoryElectronics,
	"smartphones":        CategoryElectronics,
	"tablets":            CategoryElectronics,
	"mobile-accessories": CategoryElectronics,
	"mens-shirts":        CategoryClothing,
	"tops":               CategoryClothing,
	"womens-dresses":     CategoryClothing,
	"mens-shoes":         CategoryShoes,
	"womens-shoes":       CategoryShoes,
	"mens-watches":       CategoryAccessories,
	"womens-watches":     CategoryAccessories,
	"womens-bags":        CategoryAccessories,
	"sunglasses":         CategoryAccessories,
	"sports-accessories": CategoryAccessories,
	"womens-jewellery":   CategoryJewelry,
	"motorcycle":         CategoryAutomotive,
	"vehicle":            CategoryAutomotive,

	// Platzi
	"clothes":       CategoryClothing,
	"shoes":         CategoryShoes,
	"miscellaneous": CategoryMisc,
	"others":        CategoryMisc,
}

// NormalizeCategory maps a raw upstream category label to a canonical one.
// Lookup is case-insensitive. Unknown labels pass through unchanged so that
// unmapped upstream categories are never silently dropped. The function is
// pure and total.
func NormalizeCategory(raw string) string {
	if canonical, ok := categoryMappings[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
