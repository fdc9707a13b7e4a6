package viewmodel

import (
	"testing"

	"github.com/Veraticus/catalog-tui/internal/controller"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tools  = model.Category{ID: "c1", Name: "Tools"}
	garden = model.Category{ID: "c2", Name: "Garden"}
	hammer = model.Product{ID: "p1", Name: "Hammer", Category: tools}
)

func stateWith(products ...model.Product) controller.State {
	s := controller.New(10)
	s.Categories = []model.Category{tools, garden}
	s.Products = products
	return s
}

func TestBuild_Form(t *testing.T) {
	tests := []struct {
		state         controller.State
		name          string
		wantTitle     string
		wantSubmit    string
		wantCategory  string
		wantSelection int
	}{
		{
			name:          "empty create form",
			state:         stateWith(),
			wantTitle:     "Add Product",
			wantSubmit:    "Add Product",
			wantCategory:  "Select Category",
			wantSelection: -1,
		},
		{
			name:          "create with category",
			state:         stateWith().SetFormCategoryID("c2"),
			wantTitle:     "Add Product",
			wantSubmit:    "Add Product",
			wantCategory:  "Garden",
			wantSelection: 1,
		},
		{
			name:          "editing",
			state:         stateWith(hammer).BeginEdit(hammer),
			wantTitle:     "Edit Product",
			wantSubmit:    "Update Product",
			wantCategory:  "Tools",
			wantSelection: 0,
		},
		{
			name: "editing product whose category is not loaded",
			state: controller.New(10).BeginEdit(model.Product{
				ID: "p9", Name: "Orphan", Category: model.Category{ID: "c9", Name: "Archive"},
			}),
			wantTitle:     "Edit Product",
			wantSubmit:    "Update Product",
			wantCategory:  "Archive",
			wantSelection: -1,
		},
		{
			name:          "unknown category id",
			state:         controller.New(10).SetFormCategoryID("c404"),
			wantTitle:     "Add Product",
			wantSubmit:    "Add Product",
			wantCategory:  "c404",
			wantSelection: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Build(tt.state)
			assert.Equal(t, tt.wantTitle, view.Form.Title)
			assert.Equal(t, tt.wantSubmit, view.Form.SubmitLabel)
			assert.Equal(t, tt.wantCategory, view.Form.CategoryLabel)
			assert.Equal(t, tt.wantSelection, view.SelectedIndex())
		})
	}
}

func TestBuild_Rows(t *testing.T) {
	saw := model.Product{ID: "p2", Name: "Saw\n\tblade", Category: tools}
	s := stateWith(hammer, saw).BeginEdit(hammer)

	view := Build(s)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, ProductRow{ID: "p1", Name: "Hammer", CategoryName: "Tools", CategoryID: "c1", IsEditing: true}, view.Rows[0])
	assert.Equal(t, "Saw blade", view.Rows[1].Name)
	assert.False(t, view.Rows[1].IsEditing)
	assert.True(t, view.HasRows())
}

func TestBuild_ToggleLabel(t *testing.T) {
	s := stateWith()
	assert.Equal(t, "View Table", Build(s).ToggleLabel)
	assert.False(t, Build(s).ShowTable)

	s = s.ToggleTableVisibility()
	assert.Equal(t, "Hide Table", Build(s).ToggleLabel)
	assert.True(t, Build(s).ShowTable)
}

// Page 2 of 3: the pager can move both ways; the bounds are 1 and 3.
func TestBuild_Pager(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		wantPrev bool
		wantNext bool
	}{
		{name: "middle", page: 2, total: 3, wantPrev: true, wantNext: true},
		{name: "first", page: 1, total: 3, wantNext: true},
		{name: "last", page: 3, total: 3, wantPrev: true},
		{name: "single", page: 1, total: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWith()
			s.Page = tt.page
			s.TotalPages = tt.total

			pager := Build(s).Pager
			assert.Equal(t, tt.wantPrev, pager.HasPrev)
			assert.Equal(t, tt.wantNext, pager.HasNext)
			assert.Equal(t, tt.page, pager.Page)
			assert.Equal(t, tt.total, pager.TotalPages)
		})
	}
}

func TestCycleCategory(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		want     string
		delta    int
	}{
		{name: "none forward", delta: 1, want: "c1"},
		{name: "none backward", delta: -1, want: "c2"},
		{name: "forward", selected: "c1", delta: 1, want: "c2"},
		{name: "forward wraps", selected: "c2", delta: 1, want: "c1"},
		{name: "backward wraps", selected: "c1", delta: -1, want: "c2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Build(stateWith().SetFormCategoryID(tt.selected))
			assert.Equal(t, tt.want, view.CycleCategory(tt.delta))
		})
	}

	assert.Empty(t, Build(controller.New(10)).CycleCategory(1))
}

func TestNotificationView(t *testing.T) {
	assert.True(t, NotificationView{Severity: controller.SeverityError}.IsError())
	assert.False(t, NotificationView{Severity: controller.SeveritySuccess}.IsError())
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		maxLen int
	}{
		{input: "Hammer", maxLen: 10, want: "Hammer"},
		{input: "Sledgehammer", maxLen: 6, want: "Sledg…"},
		{input: "Hammer", maxLen: 1, want: "H"},
		{input: "Hammer", maxLen: 0, want: ""},
		{input: "Überhammer", maxLen: 3, want: "Üb…"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxLen))
		})
	}
}
