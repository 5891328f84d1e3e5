package models

// Closed product/service sets offered by the business. Validated at the
// boundary; items never carry free-form categories.
const (
	CategorySaree   = "Saree"
	CategoryGarment = "Garment"
)

var ProductTypes = map[string][]string{
	CategorySaree:   {"Silk", "Cotton", "Banarasi", "South Silk", "Rajkot Patola", "Other"},
	CategoryGarment: {"Shirt", "Pant", "Blazer", "Blouse", "Lehenga", "Woolen", "Top", "Kurta", "Salwar", "Dupatta", "Gown", "Jacket", "Other"},
}

var Services = []string{"Wash/Press", "Polish", "Tassel", "Fall-Beading", "Net", "Dry-Cleaning", "Other"}

func ValidProductType(category, productType string) bool {
	for _, t := range ProductTypes[category] {
		if t == productType {
			return true
		}
	}
	return false
}

func ValidService(service string) bool {
	for _, s := range Services {
		if s == service {
			return true
		}
	}
	return false
}
