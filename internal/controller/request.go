package controller

import (
	"github.com/Veraticus/catalog-tui/internal/model"
)

// RequestKind identifies the remote catalog operation a Request asks for.
type RequestKind int

const (
	// RequestListCategories fetches every category.
	RequestListCategories RequestKind = iota
	// RequestListProducts fetches one page of products.
	RequestListProducts
	// RequestCreateCategory creates a category.
	RequestCreateCategory
	// RequestCreateProduct creates a product.
	RequestCreateProduct
	// RequestUpdateProduct updates an existing product.
	RequestUpdateProduct
	// RequestDeleteProduct deletes a product.
	RequestDeleteProduct
)

func (k RequestKind) String() string {
	switch k {
	case RequestListCategories:
		return "list_categories"
	case RequestListProducts:
		return "list_products"
	case RequestCreateCategory:
		return "create_category"
	case RequestCreateProduct:
		return "create_product"
	case RequestUpdateProduct:
		return "update_product"
	case RequestDeleteProduct:
		return "delete_product"
	default:
		return "unknown"
	}
}

// IsMutation reports whether the request changes the remote catalog.
func (k RequestKind) IsMutation() bool {
	return k != RequestListCategories && k != RequestListProducts
}

// Request describes one remote call the controller wants issued.
// Seq is unique and increasing per State.
type Request struct {
	ProductID  string
	Name       string
	CategoryID string
	Seq        uint64
	Kind       RequestKind
	Page       int
	PageSize   int
}

// Response carries the outcome of executing a Request.
type Response struct {
	Err        error
	Message    string
	Categories []model.Category
	Page       model.ProductPage
	Request    Request
}
