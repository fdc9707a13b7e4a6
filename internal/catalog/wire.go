package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/Veraticus/catalog-tui/internal/model"
)

// Catalog API payload types.
type categoryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"categoryName"`
}

// productCategoryDTO is the categoryID field of a product. The API normally
// populates it with the full category but may send the bare identifier.
type productCategoryDTO struct {
	categoryDTO
}

func (p *productCategoryDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.ID)
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &p.categoryDTO)
}

type productDTO struct {
	ID       string             `json:"_id"`
	Name     string             `json:"productName"`
	Category productCategoryDTO `json:"categoryID"`
}

type listCategoriesResponse struct {
	Categories []categoryDTO `json:"categories"`
}

type listProductsResponse struct {
	Products   []productDTO `json:"products"`
	TotalPages int          `json:"totalPages"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createCategoryRequest struct {
	CategoryName string `json:"categoryName"`
}

type productRequest struct {
	ProductName string `json:"productName"`
	CategoryID  string `json:"categoryID"`
}

func (c categoryDTO) toModel() model.Category {
	return model.Category{ID: c.ID, Name: c.Name}
}

func (p productDTO) toModel() model.Product {
	return model.Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category.toModel(),
	}
}
