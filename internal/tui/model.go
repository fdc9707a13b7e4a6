package tui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Veraticus/catalog-tui/internal/controller"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/Veraticus/catalog-tui/internal/service"
	"github.com/Veraticus/catalog-tui/internal/tui/themes"
	"github.com/Veraticus/catalog-tui/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ErrNoCatalog is returned when the model is built without a catalog service.
var ErrNoCatalog = errors.New("catalog service is required")

// Inline validation hints shown instead of issuing a request.
const (
	hintCategoryRequired = "Category name is required."
	hintProductRequired  = "Product name and category are required."
)

// Clickable regions.
const (
	zoneAddCategory = "add-category"
	zoneSubmit      = "submit"
	zoneToggleTable = "toggle-table"
	zonePagePrev    = "page-prev"
	zonePageNext    = "page-next"
	zoneToastClose  = "toast-close"
)

const editMarker = "✎ "

// Product table layout.
const (
	idColumnWidth = 12
	actionsHint   = "e edit · d delete"
)

var columnTitles = [...]string{"Product ID", "Name", "Category", "Category ID", "Actions"}

var zoneOnce sync.Once

func initZones() {
	zoneOnce.Do(zone.NewGlobal)
}

// Model holds the main TUI state.
type Model struct {
	ctx           context.Context
	catalog       service.Catalog
	theme         themes.Theme
	help          help.Model
	hint          string
	initial       []controller.Request
	categoryInput textinput.Model
	nameInput     textinput.Model
	pager         paginator.Model
	table         table.Model
	keymap        KeyMap
	state         controller.State
	config        Config
	// shownNotification is the last notification an auto-dismiss timer was started for.
	shownNotification uint64
	width             int
	height            int
	focus             Focus
	quitting          bool
}

// NewModel builds the catalog screen and queues the initial fetches, which are
// issued by Init.
func NewModel(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		return Model{}, ErrNoCatalog
	}

	initZones()

	m := Model{
		ctx:           cfg.Context,
		catalog:       cfg.Catalog,
		config:        cfg,
		keymap:        DefaultKeyMap(),
		theme:         cfg.Theme,
		help:          help.New(),
		categoryInput: newInput("Category name", 64),
		nameInput:     newInput("Product name", 128),
		table:         newTable(cfg.Theme, cfg.PageSize),
		pager:         newPager(),
		width:         cfg.Width,
		height:        cfg.Height,
	}

	m.state, m.initial = controller.New(cfg.PageSize).Initialize()
	m.resize()
	m, _ = m.setFocus(FocusCategoryName)
	return m, nil
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newTable(theme themes.Theme, pageSize int) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected

	return table.New(
		table.WithColumns(productColumns(80)),
		table.WithHeight(pageSize+2),
		table.WithStyles(styles),
	)
}

func newPager() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "Page %d of %d"
	return p
}

// productColumns lays out the table for width cells. The id and actions
// columns are fixed; name and category share the rest.
func productColumns(width int) []table.Column {
	rest := max(28, width-2*idColumnWidth-len([]rune(actionsHint))-2*len(columnTitles))
	nameWidth := rest * 3 / 5
	return []table.Column{
		{Title: columnTitles[0], Width: idColumnWidth},
		{Title: columnTitles[1], Width: nameWidth},
		{Title: columnTitles[2], Width: rest - nameWidth},
		{Title: columnTitles[3], Width: idColumnWidth},
		{Title: columnTitles[4], Width: len([]rune(actionsHint))},
	}
}

// Init issues the initial category and product fetches.
func (m Model) Init() tea.Cmd {
	return m.dispatch(m.initial)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case responseMsg:
		return m.apply(m.state.Resolve(msg.resp))

	case dismissNotificationMsg:
		m.state = m.state.DismissNotification(msg.id)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// State returns the controller state behind the screen.
func (m Model) State() controller.State {
	return m.state
}

// Focused returns the active input region.
func (m Model) Focused() Focus {
	return m.focus
}

// apply installs the next controller state, issues its requests and starts
// the auto-dismiss timer for a newly shown notification.
func (m Model) apply(s controller.State, reqs []controller.Request) (Model, tea.Cmd) {
	m.state = s
	m.syncInputs()
	m.syncTable()

	cmds := []tea.Cmd{m.dispatch(reqs)}
	if n := m.state.Notification; n.Visible && n.ID != m.shownNotification {
		m.shownNotification = n.ID
		if m.config.NotificationTimeout > 0 {
			cmds = append(cmds, dismissAfter(n.ID, m.config.NotificationTimeout))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.hint = ""

	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NextField):
		return m.setFocus(m.nextFocus(1))
	case key.Matches(msg, m.keymap.PrevField):
		return m.setFocus(m.nextFocus(-1))
	case key.Matches(msg, m.keymap.Cancel):
		return m.cancel(), nil
	case key.Matches(msg, m.keymap.ToggleTable):
		return m.toggleTable()
	case key.Matches(msg, m.keymap.Refresh):
		return m.apply(m.state.Refresh())
	case key.Matches(msg, m.keymap.PrevPage):
		return m.apply(m.state.PrevPage())
	case key.Matches(msg, m.keymap.NextPage):
		return m.apply(m.state.NextPage())
	}

	switch m.focus {
	case FocusCategoryName:
		return m.updateCategoryInput(msg)
	case FocusProductName:
		return m.updateNameInput(msg)
	case FocusCategory, FocusSubmit:
		return m.updateSelector(msg)
	case FocusTable:
		return m.updateTable(msg)
	}

	return m, nil
}

func (m Model) updateCategoryInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Submit) {
		return m.addCategory()
	}

	var cmd tea.Cmd
	m.categoryInput, cmd = m.categoryInput.Update(msg)
	m.state = m.state.SetNewCategoryName(m.categoryInput.Value())
	return m, cmd
}

func (m Model) updateNameInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Submit) {
		return m.submitProduct()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.state = m.state.SetFormName(m.nameInput.Value())
	return m, cmd
}

func (m Model) updateSelector(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		return m.submitProduct()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case m.focus != FocusCategory:
	case key.Matches(msg, m.keymap.PrevCategory):
		m.state = m.state.SetFormCategoryID(m.cycleCategory(-1))
	case key.Matches(msg, m.keymap.NextCategory):
		m.state = m.state.SetFormCategoryID(m.cycleCategory(1))
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Edit):
		product, ok := m.selectedProduct()
		if !ok {
			return m, nil
		}
		m.state = m.state.BeginEdit(product)
		m.syncInputs()
		m.syncTable()
		return m.setFocus(FocusProductName)

	case key.Matches(msg, m.keymap.Delete):
		product, ok := m.selectedProduct()
		if !ok {
			return m, nil
		}
		s, reqs, err := m.state.DeleteProduct(product.ID)
		if err != nil {
			return m, nil
		}
		return m.apply(s, reqs)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case m.state.Notification.Visible && zone.Get(zoneToastClose).InBounds(msg):
		m.state = m.state.DismissNotification(m.state.Notification.ID)
		return m, nil
	case zone.Get(zoneAddCategory).InBounds(msg):
		return m.addCategory()
	case zone.Get(zoneSubmit).InBounds(msg):
		return m.submitProduct()
	case zone.Get(zoneToggleTable).InBounds(msg):
		return m.toggleTable()
	case zone.Get(zonePagePrev).InBounds(msg):
		return m.apply(m.state.PrevPage())
	case zone.Get(zonePageNext).InBounds(msg):
		return m.apply(m.state.NextPage())
	}

	return m, nil
}

func (m Model) addCategory() (Model, tea.Cmd) {
	s, reqs, err := m.state.AddCategory(strings.TrimSpace(m.state.NewCategoryName))
	if err != nil {
		m.hint = hintCategoryRequired
		return m, nil
	}
	return m.apply(s, reqs)
}

func (m Model) submitProduct() (Model, tea.Cmd) {
	s, reqs, err := m.state.SubmitProduct(strings.TrimSpace(m.state.FormName), m.state.FormCategoryID)
	if err != nil {
		m.hint = hintProductRequired
		return m, nil
	}
	return m.apply(s, reqs)
}

// cancel dismisses the visible notification, or else leaves edit mode.
func (m Model) cancel() Model {
	if m.state.Notification.Visible {
		m.state = m.state.DismissNotification(m.state.Notification.ID)
		return m
	}
	if m.state.IsEditing() {
		m.state = m.state.CancelEdit()
		m.syncInputs()
		m.syncTable()
	}
	return m
}

func (m Model) toggleTable() (Model, tea.Cmd) {
	m.state = m.state.ToggleTableVisibility()
	if !m.state.ShowTable && m.focus == FocusTable {
		return m.setFocus(FocusProductName)
	}
	return m, nil
}

func (m Model) cycleCategory(delta int) string {
	id := viewmodel.Build(m.state).CycleCategory(delta)
	if id == "" {
		return m.state.FormCategoryID
	}
	return id
}

func (m Model) selectedProduct() (model.Product, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.state.Products) {
		return model.Product{}, false
	}
	return m.state.Products[idx], true
}

// nextFocus returns the region delta steps from the current one. The table
// is skipped while hidden.
func (m Model) nextFocus(delta int) Focus {
	f := m.focus
	for range focusCount {
		f = Focus((int(f) + delta + int(focusCount)) % int(focusCount))
		if f != FocusTable || m.state.ShowTable {
			return f
		}
	}
	return m.focus
}

func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.focus = f
	m.categoryInput.Blur()
	m.nameInput.Blur()
	m.table.Blur()

	var cmd tea.Cmd
	switch f {
	case FocusCategoryName:
		cmd = m.categoryInput.Focus()
	case FocusProductName:
		cmd = m.nameInput.Focus()
	case FocusTable:
		m.table.Focus()
	}
	return m, cmd
}

// syncInputs copies form values the controller changed back into the inputs.
func (m *Model) syncInputs() {
	if m.categoryInput.Value() != m.state.NewCategoryName {
		m.categoryInput.SetValue(m.state.NewCategoryName)
	}
	if m.nameInput.Value() != m.state.FormName {
		m.nameInput.SetValue(m.state.FormName)
	}
}

func (m *Model) syncTable() {
	view := viewmodel.Build(m.state)

	rows := make([]table.Row, 0, len(view.Rows))
	for _, row := range view.Rows {
		name := row.Name
		if row.IsEditing {
			name = editMarker + name
		}
		rows = append(rows, table.Row{
			viewmodel.TruncateString(row.ID, idColumnWidth),
			name,
			row.CategoryName,
			viewmodel.TruncateString(row.CategoryID, idColumnWidth),
			actionsHint,
		})
	}

	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize() {
	inner := max(m.width-6, 32)
	m.table.SetColumns(productColumns(inner))
	m.table.SetWidth(inner)
	m.help.Width = m.width
	m.categoryInput.Width = min(40, inner/2)
	m.nameInput.Width = min(48, inner/2)
}
