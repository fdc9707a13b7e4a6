// Package controller holds the catalog view state and its transition rules.
//
// Every operation is a pure function of the current State: it returns the next
// State plus the Requests that must be issued. Network completions come back
// through Resolve. Nothing here performs I/O, so the rules can be exercised
// without a terminal or a server.
package controller

import (
	"fmt"
	"time"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/model"
)

// NotificationTimeout is how long a notification stays visible.
const NotificationTimeout = 3000 * time.Millisecond

// User-facing notification text.
const (
	MsgAddCategoryFailed = "Error adding category."
	MsgSubmitFailed      = "Error processing request."
	MsgDeleteFailed      = "Error deleting product."

	msgCategoryAdded  = "Category added."
	msgProductCreated = "Product added."
	msgProductUpdated = "Product updated."
	msgProductDeleted = "Product deleted."
)

// Severity classifies a notification.
type Severity string

const (
	// SeveritySuccess marks a completed operation.
	SeveritySuccess Severity = "success"
	// SeverityError marks a failed operation.
	SeverityError Severity = "error"
)

// Notification is the single transient status message.
type Notification struct {
	Message  string
	Severity Severity
	ID       uint64
	Visible  bool
}

// State is the complete catalog view state.
type State struct {
	// Editing is the product the form is bound to, nil when creating.
	Editing         *model.Product
	Notification    Notification
	FormName        string
	FormCategoryID  string
	NewCategoryName string
	Categories      []model.Category
	Products        []model.Product
	Page            int
	PageSize        int
	TotalPages      int
	ShowTable       bool

	seq              uint64
	latestCategories uint64
	latestProducts   uint64
	notificationSeq  uint64
	inFlight         int
}

// New returns the initial state for the given page size.
func New(pageSize int) State {
	if pageSize < 1 {
		pageSize = 10
	}
	return State{
		Page:       1,
		PageSize:   pageSize,
		TotalPages: 1,
	}
}

// Initialize issues the first category and product-page fetches. The two
// requests are independent and may complete in any order.
func (s State) Initialize() (State, []Request) {
	s, categories := s.listCategories()
	s, products := s.listProducts()
	return s, []Request{categories, products}
}

// Refresh re-fetches both slices without touching the form or page.
func (s State) Refresh() (State, []Request) {
	return s.Initialize()
}

// SetPage moves to page n and fetches it. Form fields and the edit session
// are left alone.
func (s State) SetPage(n int) (State, []Request, error) {
	if n < 1 {
		return s, nil, fmt.Errorf("%w: %d", common.ErrInvalidPage, n)
	}

	s.Page = n
	s, req := s.listProducts()
	return s, []Request{req}, nil
}

// NextPage advances one page, or does nothing on the last page.
func (s State) NextPage() (State, []Request) {
	if !s.HasNextPage() {
		return s, nil
	}
	s, reqs, _ := s.SetPage(s.Page + 1)
	return s, reqs
}

// PrevPage goes back one page, or does nothing on the first page.
func (s State) PrevPage() (State, []Request) {
	if !s.HasPrevPage() {
		return s, nil
	}
	s, reqs, _ := s.SetPage(s.Page - 1)
	return s, reqs
}

// HasNextPage reports whether the pager can move forward.
func (s State) HasNextPage() bool {
	return s.Page < s.TotalPages
}

// HasPrevPage reports whether the pager can move back.
func (s State) HasPrevPage() bool {
	return s.Page > 1
}

// AddCategory creates a category named name. An empty name is rejected
// locally and no request is issued.
func (s State) AddCategory(name string) (State, []Request, error) {
	if name == "" {
		return s, nil, fmt.Errorf("%w: category name", common.ErrRequiredField)
	}

	s, req := s.issue(Request{Kind: RequestCreateCategory, Name: name})
	return s, []Request{req}, nil
}

// SubmitProduct creates a product, or updates the one being edited.
func (s State) SubmitProduct(name, categoryID string) (State, []Request, error) {
	if name == "" {
		return s, nil, fmt.Errorf("%w: product name", common.ErrRequiredField)
	}
	if categoryID == "" {
		return s, nil, fmt.Errorf("%w: category", common.ErrRequiredField)
	}

	req := Request{Kind: RequestCreateProduct, Name: name, CategoryID: categoryID}
	if s.Editing != nil {
		req.Kind = RequestUpdateProduct
		req.ProductID = s.Editing.ID
	}

	s, req = s.issue(req)
	return s, []Request{req}, nil
}

// BeginEdit binds the form to product.
func (s State) BeginEdit(product model.Product) State {
	s.FormName = product.Name
	s.FormCategoryID = product.Category.ID
	s.Editing = &product
	return s
}

// CancelEdit leaves edit mode and clears the form.
func (s State) CancelEdit() State {
	s.Editing = nil
	s.FormName = ""
	s.FormCategoryID = ""
	return s
}

// DeleteProduct deletes the product with id.
func (s State) DeleteProduct(id string) (State, []Request, error) {
	if id == "" {
		return s, nil, fmt.Errorf("%w: product id", common.ErrRequiredField)
	}

	s, req := s.issue(Request{Kind: RequestDeleteProduct, ProductID: id})
	return s, []Request{req}, nil
}

// ToggleTableVisibility shows or hides the product table.
func (s State) ToggleTableVisibility() State {
	s.ShowTable = !s.ShowTable
	return s
}

// SetNewCategoryName records the category input text.
func (s State) SetNewCategoryName(name string) State {
	s.NewCategoryName = name
	return s
}

// SetFormName records the product name input text.
func (s State) SetFormName(name string) State {
	s.FormName = name
	return s
}

// SetFormCategoryID records the selected category.
func (s State) SetFormCategoryID(id string) State {
	s.FormCategoryID = id
	return s
}

// DismissNotification hides notification id. A stale id, from a notification
// that has since been replaced, is ignored.
func (s State) DismissNotification(id uint64) State {
	if s.Notification.ID == id {
		s.Notification.Visible = false
	}
	return s
}

// IsEditing reports whether a submit will update an existing product.
func (s State) IsEditing() bool {
	return s.Editing != nil
}

// Loading reports whether any request is outstanding.
func (s State) Loading() bool {
	return s.inFlight > 0
}

// CategoryByID looks up a loaded category.
func (s State) CategoryByID(id string) (model.Category, bool) {
	for _, category := range s.Categories {
		if category.ID == id {
			return category, true
		}
	}
	return model.Category{}, false
}

func (s State) listCategories() (State, Request) {
	return s.issue(Request{Kind: RequestListCategories})
}

func (s State) listProducts() (State, Request) {
	return s.issue(Request{Kind: RequestListProducts, Page: s.Page, PageSize: s.PageSize})
}

// issue stamps req with the next sequence number and records it as the latest
// request for its slice.
func (s State) issue(req Request) (State, Request) {
	s.seq++
	s.inFlight++
	req.Seq = s.seq

	switch req.Kind {
	case RequestListCategories:
		s.latestCategories = req.Seq
	case RequestListProducts:
		s.latestProducts = req.Seq
	}

	return s, req
}

func (s State) notify(message string, severity Severity) State {
	s.notificationSeq++
	s.Notification = Notification{
		ID:       s.notificationSeq,
		Message:  message,
		Severity: severity,
		Visible:  true,
	}
	return s
}
