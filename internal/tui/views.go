package tui

import (
	"github.com/Veraticus/catalog-tui/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := viewmodel.Build(m.state)

	sections := []string{
		m.renderHeader(view),
		m.renderCategoryForm(),
		m.renderProductForm(view),
	}
	if m.hint != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.hint))
	}
	sections = append(sections, zone.Mark(zoneToggleTable, m.theme.Button.Render(view.ToggleLabel)))
	if view.ShowTable {
		sections = append(sections, m.renderTable(view))
	}
	sections = append(sections, m.renderPager(view.Pager))
	if view.Notification.Visible {
		sections = append(sections, m.renderNotification(view.Notification))
	}
	sections = append(sections, m.help.View(m.keymap))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(view viewmodel.CatalogView) string {
	title := m.theme.Title.Render("Catalog")
	if !view.Loading {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		"  ",
		m.theme.StatusPending.Render("Loading..."),
	)
}

func (m Model) renderCategoryForm() string {
	button := m.theme.Button.Render(viewmodel.LabelAddCategory)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(viewmodel.TitleAddCategory),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Label.Render("Name"),
			m.categoryInput.View(),
			"  ",
			zone.Mark(zoneAddCategory, button),
		),
	)

	return m.panel(m.focus == FocusCategoryName).Render(body)
}

func (m Model) renderProductForm(view viewmodel.CatalogView) string {
	form := view.Form

	category := m.theme.Normal.Render("‹ " + form.CategoryLabel + " ›")
	if form.CategoryID == "" {
		category = m.theme.Subtitle.Render("‹ " + form.CategoryLabel + " ›")
	}
	if m.focus == FocusCategory {
		category = m.theme.Highlighted.Render("‹ " + form.CategoryLabel + " ›")
	}

	submit := m.theme.Button.Render(form.SubmitLabel)
	if m.focus == FocusSubmit {
		submit = m.theme.ButtonActive.Render(form.SubmitLabel)
	}
	actions := []string{zone.Mark(zoneSubmit, submit)}
	if form.Editing {
		actions = append(actions, m.theme.ButtonMuted.Render("Esc to cancel"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(form.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Label.Render("Name"), m.nameInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Label.Render("Category"), category),
		lipgloss.JoinHorizontal(lipgloss.Top, actions...),
	)

	focused := m.focus == FocusProductName || m.focus == FocusCategory || m.focus == FocusSubmit
	return m.panel(focused).Render(body)
}

func (m Model) renderTable(view viewmodel.CatalogView) string {
	body := m.theme.Subtitle.Render(viewmodel.LabelEmptyCatalog)
	if view.HasRows() {
		body = m.table.View()
	}

	return m.panel(m.focus == FocusTable).Render(body)
}

func (m Model) renderPager(pager viewmodel.PagerView) string {
	p := m.pager
	p.Page = pager.Page - 1
	p.TotalPages = pager.TotalPages

	prev := m.theme.ButtonMuted.Render("‹ Prev")
	if pager.HasPrev {
		prev = m.theme.Button.Render("‹ Prev")
	}
	next := m.theme.ButtonMuted.Render("Next ›")
	if pager.HasNext {
		next = m.theme.Button.Render("Next ›")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(zonePagePrev, prev),
		" ",
		m.theme.Normal.Render(p.View()),
		" ",
		zone.Mark(zonePageNext, next),
	)
}

func (m Model) renderNotification(n viewmodel.NotificationView) string {
	style := m.theme.ToastSuccess
	if n.IsError() {
		style = m.theme.ToastError
	}
	return style.Render(n.Message + "  " + zone.Mark(zoneToastClose, "✕"))
}

func (m Model) panel(focused bool) lipgloss.Style {
	if focused {
		return m.theme.PanelFocused
	}
	return m.theme.Panel
}
