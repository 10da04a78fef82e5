package catalog

// Product is a catalog entry. The catalog is defined in code and immutable
// for the process lifetime; there is no product table behind it.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Features []string `json:"features,omitempty"`
	Price    float64  `json:"price,omitempty"`
}

var productIndex map[string]Product

func init() {
	productIndex = make(map[string]Product, len(products))
	for _, p := range products {
		productIndex[p.ID] = p
	}
}

// All returns the catalog in its declared order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindByID resolves a product by its catalog id.
func FindByID(id string) (Product, bool) {
	p, ok := productIndex[id]
	return p, ok
}

// FindByNameOrID resolves a product by exact display name or catalog id.
// Booking rows historically store either one, so both are accepted.
func FindByNameOrID(s string) (Product, bool) {
	if p, ok := productIndex[s]; ok {
		return p, true
	}
	for _, p := range products {
		if p.Name == s {
			return p, true
		}
	}
	return Product{}, false
}

// ComplementaryCategories returns categories considered good companions
// of the given category, in declared order.
func ComplementaryCategories(category string) []string {
	return categoryComplements[category]
}

// ComplementaryProducts returns product ids considered natural companions
// of the given product id.
func ComplementaryProducts(productID string) []string {
	return productComplements[productID]
}
