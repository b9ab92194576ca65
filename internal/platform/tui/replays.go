package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxReplays is how many journal entries the browser loads.
const maxReplays = 100

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Watch, k.Delete, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for browsing the replay journal.
type ReplaysModel struct {
	store    *storage.Store
	replays  []storage.Replay
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	width    int
	height   int
	selected int64 // replay chosen for watching, 0 if none
	status   string
	quitting bool
}

// NewReplaysModel creates a new replay browser.
func NewReplaysModel(store *storage.Store, width, height int) ReplaysModel {
	h := help.New()
	h.ShowAll = false

	m := ReplaysModel{
		store:  store,
		keys:   DefaultReplaysKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Date", Width: 13},
	}

	height := m.height - 8 // title, help and borders
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the newest replays from the store.
func (m *ReplaysModel) load() {
	m.replays = nil
	if m.store != nil {
		replays, err := m.store.RecentReplays(maxReplays)
		if err != nil {
			m.status = "could not load replays"
		} else {
			m.replays = replays
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded replays.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = ReplayRow(r)
	}
	m.table.SetRows(rows)
}

// ReplayRow formats one journal entry as table cells. The CLI listing
// uses the same columns.
func ReplayRow(r storage.Replay) table.Row {
	date := ""
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format("Jan 02 15:04")
	}
	return table.Row{
		strconv.FormatInt(r.ID, 10),
		strconv.Itoa(r.Score),
		strconv.Itoa(r.Lines),
		strconv.Itoa(r.Pieces),
		strconv.FormatUint(r.Ticks, 10),
		strings.ReplaceAll(r.EndReason, "_", " "),
		date,
	}
}

// current returns the replay under the cursor.
func (m ReplaysModel) current() (storage.Replay, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Replay{}, false
	}
	return m.replays[i], true
}

// Init initializes the browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if r, ok := m.current(); ok {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteCurrent removes the replay under the cursor from the journal.
func (m *ReplaysModel) deleteCurrent() {
	r, ok := m.current()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteReplay(r.ID); err != nil {
		m.status = fmt.Sprintf("could not delete #%d", r.ID)
		return
	}

	cursor := m.table.Cursor()
	m.load()
	if cursor >= len(m.replays) {
		cursor = len(m.replays) - 1
	}
	if cursor >= 0 {
		m.table.SetCursor(cursor)
	}
	m.status = fmt.Sprintf("deleted #%d", r.ID)
}

// View renders the browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "  ")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nFinish a game to record one!")
	}
	return m.table.View()
}

// Selected returns the ID picked for watching, or 0.
func (m ReplaysModel) Selected() int64 {
	return m.selected
}

// Len returns the number of replays shown.
func (m ReplaysModel) Len() int {
	return len(m.replays)
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunReplayBrowser runs the browser and returns the replay the user chose
// to watch, or 0 if they quit.
func RunReplayBrowser(store *storage.Store, width, height int) (int64, error) {
	model := NewReplaysModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
