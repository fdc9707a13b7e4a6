package tui

import "github.com/Veraticus/catalog-tui/internal/controller"

// responseMsg carries the outcome of a catalog request back into Update.
type responseMsg struct {
	resp controller.Response
}

// dismissNotificationMsg hides the notification with id once its timer fires.
type dismissNotificationMsg struct {
	id uint64
}

// Focus identifies the active input region.
type Focus int

const (
	FocusCategoryName Focus = iota
	FocusProductName
	FocusCategory
	FocusSubmit
	FocusTable
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusCategoryName:
		return "category name"
	case FocusProductName:
		return "product name"
	case FocusCategory:
		return "category"
	case FocusSubmit:
		return "submit"
	case FocusTable:
		return "table"
	default:
		return "unknown"
	}
}
