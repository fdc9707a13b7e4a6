package tui

import (
	"time"

	"github.com/Veraticus/catalog-tui/internal/controller"
	tea "github.com/charmbracelet/bubbletea"
)

// dispatch turns controller requests into commands that run concurrently.
func (m Model) dispatch(reqs []controller.Request) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		cmds = append(cmds, m.execute(req))
	}
	return tea.Batch(cmds...)
}

// execute performs one request against the catalog off the update loop.
func (m Model) execute(req controller.Request) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return responseMsg{resp: controller.Execute(ctx, catalog, req)}
	}
}

// dismissAfter hides notification id once d has passed.
func dismissAfter(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dismissNotificationMsg{id: id}
	})
}
