package models

// Category is the fixed set of box categories. Anything outside the set
// degrades to CategoryOthers when read back for display.
type Category string

const (
	CategoryFurniture   Category = "Furniture"
	CategoryDevices     Category = "Devices"
	CategoryAppliances  Category = "Appliances"
	CategoryPapers      Category = "Papers"
	CategoryPerishables Category = "Perishables"
	CategoryOthers      Category = "Others"
)

var Categories = []Category{
	CategoryFurniture,
	CategoryDevices,
	CategoryAppliances,
	CategoryPapers,
	CategoryPerishables,
	CategoryOthers,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unrecognized or empty category strings to Others.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if !c.Valid() {
		return CategoryOthers
	}
	return c
}
