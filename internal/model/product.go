package model

// Product is a catalog item. Category is embedded in full so its name is
// available wherever the product is displayed.
type Product struct {
	Category Category
	ID       string
	Name     string
}

// ProductPage is one page of products as returned by the catalog.
type ProductPage struct {
	Products   []Product
	TotalPages int
}

// Normalize returns the page with TotalPages clamped to at least 1.
func (p ProductPage) Normalize() ProductPage {
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	return p
}
