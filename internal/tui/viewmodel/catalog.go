// Package viewmodel defines the data structures for TUI rendering.
package viewmodel

import (
	"github.com/Veraticus/catalog-tui/internal/controller"
)

// Labels shown by the catalog screen.
const (
	TitleAddCategory  = "Add New Category"
	TitleAddProduct   = "Add Product"
	TitleEditProduct  = "Edit Product"
	LabelAddCategory  = "Add Category"
	LabelAddProduct   = "Add Product"
	LabelUpdate       = "Update Product"
	LabelViewTable    = "View Table"
	LabelHideTable    = "Hide Table"
	LabelNoCategory   = "Select Category"
	LabelEmptyCatalog = "No products on this page"
)

// CatalogView is everything the catalog screen renders.
type CatalogView struct {
	Notification NotificationView
	Form         FormView
	ToggleLabel  string
	Categories   []CategoryOption
	Rows         []ProductRow
	Pager        PagerView
	ShowTable    bool
	Loading      bool
}

// FormView describes the product form.
type FormView struct {
	Title         string
	SubmitLabel   string
	Name          string
	CategoryID    string
	CategoryLabel string
	Editing       bool
}

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	ID       string
	Name     string
	Selected bool
}

// ProductRow is one line of the product table.
type ProductRow struct {
	ID           string
	Name         string
	CategoryName string
	CategoryID   string
	IsEditing    bool
}

// PagerView is the page window shown under the table.
type PagerView struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// NotificationView is the visible toast, if any.
type NotificationView struct {
	Message  string
	Severity controller.Severity
	ID       uint64
	Visible  bool
}

// Build derives the screen contents from the controller state.
func Build(s controller.State) CatalogView {
	view := CatalogView{
		Form:      buildForm(s),
		Pager:     buildPager(s),
		ShowTable: s.ShowTable,
		Loading:   s.Loading(),
		Notification: NotificationView{
			ID:       s.Notification.ID,
			Message:  s.Notification.Message,
			Severity: s.Notification.Severity,
			Visible:  s.Notification.Visible,
		},
		ToggleLabel: LabelViewTable,
	}
	if s.ShowTable {
		view.ToggleLabel = LabelHideTable
	}

	for _, category := range s.Categories {
		view.Categories = append(view.Categories, CategoryOption{
			ID:       category.ID,
			Name:     category.Name,
			Selected: category.ID == s.FormCategoryID,
		})
	}

	for _, product := range s.Products {
		view.Rows = append(view.Rows, ProductRow{
			ID:           product.ID,
			Name:         SanitizeForDisplay(product.Name),
			CategoryName: SanitizeForDisplay(product.Category.Name),
			CategoryID:   product.Category.ID,
			IsEditing:    s.Editing != nil && s.Editing.ID == product.ID,
		})
	}

	return view
}

func buildForm(s controller.State) FormView {
	form := FormView{
		Title:         TitleAddProduct,
		SubmitLabel:   LabelAddProduct,
		Name:          s.FormName,
		CategoryID:    s.FormCategoryID,
		CategoryLabel: LabelNoCategory,
		Editing:       s.IsEditing(),
	}
	if form.Editing {
		form.Title = TitleEditProduct
		form.SubmitLabel = LabelUpdate
	}

	if s.FormCategoryID != "" {
		if category, ok := s.CategoryByID(s.FormCategoryID); ok {
			form.CategoryLabel = category.Name
		} else if s.Editing != nil && s.Editing.Category.ID == s.FormCategoryID && s.Editing.Category.Name != "" {
			form.CategoryLabel = s.Editing.Category.Name
		} else {
			form.CategoryLabel = s.FormCategoryID
		}
	}

	return form
}

func buildPager(s controller.State) PagerView {
	return PagerView{
		Page:       s.Page,
		TotalPages: s.TotalPages,
		HasPrev:    s.HasPrevPage(),
		HasNext:    s.HasNextPage(),
	}
}

// SelectedIndex returns the index of the selected category option, or -1.
func (v CatalogView) SelectedIndex() int {
	for i, option := range v.Categories {
		if option.Selected {
			return i
		}
	}
	return -1
}

// CycleCategory returns the category id delta steps away from the current
// selection, wrapping at both ends. With nothing selected, a forward step
// picks the first category and a backward step the last.
func (v CatalogView) CycleCategory(delta int) string {
	n := len(v.Categories)
	if n == 0 {
		return ""
	}

	idx := v.SelectedIndex()
	switch {
	case idx < 0 && delta >= 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	return v.Categories[idx].ID
}
