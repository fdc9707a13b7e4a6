package viewmodel

import (
	"strings"

	"github.com/Veraticus/catalog-tui/internal/controller"
)

// IsError reports whether the notification reports a failure.
func (n NotificationView) IsError() bool {
	return n.Severity == controller.SeverityError
}

// HasRows reports whether the table has anything to show.
func (v CatalogView) HasRows() bool {
	return len(v.Rows) > 0
}

// TruncateString shortens s to maxLen runes, ending with an ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-1]) + "…"
}

// SanitizeForDisplay removes control characters that would break the table layout.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
