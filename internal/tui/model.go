// Package tui implements the interactive review console. It is a thin
// projection of the session state machine: every transition is delegated to
// the session, and the view is re-read from it after each action.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/session"
)

type focusArea int

const (
	focusQueue focusArea = iota
	focusName
	focusCategory
	focusSubcategory
	focusSuggestions
	focusStaging
	focusAreaCount
)

// Model holds the review console state.
type Model struct {
	ctx     context.Context
	session *session.Session

	nameInput textinput.Model
	spin      spinner.Model

	focus         focusArea
	queueCursor   int
	catCursor     int
	subCursor     int
	sugCursor     int
	stagingCursor int

	width   int
	height  int
	loading bool
	toast   string
	isError bool
	quit    bool
}

// New creates the review console over an unloaded session.
func New(ctx context.Context, s *session.Session) Model {
	input := textinput.New()
	input.Placeholder = "Product name"
	input.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		session:   s,
		nameInput: input,
		spin:      spin,
		loading:   true,
	}
}

// Run starts the review console and blocks until the operator quits.
func Run(ctx context.Context, s *session.Session) error {
	program := tea.NewProgram(New(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Init starts the initial session load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setToast(common.UserMessage(msg.err), true)
			return m, nil
		}
		m.syncFromSession()
		return m, nil

	case selectionChangedMsg:
		if msg.err != nil {
			m.setToast(common.UserMessage(msg.err), true)
			return m, nil
		}
		m.syncFromSession()
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.setToast(common.UserMessage(msg.err), true)
			return m, nil
		}
		m.setToast(msg.toast, false)
		m.syncFromSession()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing into the name field captures everything except navigation keys.
	if m.focus == focusName && m.nameInput.Focused() {
		switch msg.String() {
		case "esc":
			m.nameInput.Blur()
			return m, nil
		case "tab", "enter":
			m.nameInput.Blur()
			m.focus = focusCategory
			return m, nil
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			m.session.SetName(m.nameInput.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quit = true
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.loadCmd())

	case "s":
		return m, m.skipCmd()

	case "S":
		return m, m.stageCmd()

	case "B":
		return m, m.batchSaveCmd()

	case "C":
		return m, m.commitCmd()

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case " ":
		if m.focus == focusQueue {
			return m, m.toggleBatchCmd()
		}
		return m, nil

	case "a":
		if m.focus == focusQueue {
			m.session.SelectAllBatch()
			m.syncFromSession()
		}
		return m, nil

	case "x":
		if m.focus == focusQueue {
			m.session.ClearBatch()
			m.syncFromSession()
		}
		return m, nil

	case "enter":
		return m.handleEnter()
	}

	return m, nil
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusQueue:
		queue := m.session.Queue()
		if m.queueCursor < len(queue) {
			return *m, m.selectCmd(queue[m.queueCursor].ID)
		}

	case focusName:
		m.nameInput.Focus()

	case focusCategory:
		categories := m.session.Categories()
		if m.catCursor < len(categories) {
			m.session.SetCategory(categories[m.catCursor].ID)
			m.subCursor = 0
			m.syncFromSession()
		}

	case focusSubcategory:
		subcats := m.session.SubcategoriesFor(m.session.Form().CategoryID)
		if m.subCursor < len(subcats) {
			if err := m.session.SetSubcategory(subcats[m.subCursor].ID); err != nil {
				m.setToast(common.UserMessage(err), true)
			}
			m.syncFromSession()
		}

	case focusSuggestions:
		suggestions := m.session.Suggestions()
		if m.sugCursor < len(suggestions) {
			if err := m.session.ApplySuggestion(suggestions[m.sugCursor].ID); err != nil {
				m.setToast(common.UserMessage(err), true)
			}
			m.syncFromSession()
		}

	case focusStaging:
		staging := m.session.Staging()
		if m.stagingCursor < len(staging) {
			return *m, m.revertCmd(staging[m.stagingCursor].ID)
		}
	}
	return *m, nil
}

func (m *Model) cycleFocus(direction int) {
	m.focus = focusArea((int(m.focus) + direction + int(focusAreaCount)) % int(focusAreaCount))
	// Batch mode has no single-item name editing.
	if m.focus == focusName && m.session.BatchMode() {
		m.focus = focusArea((int(m.focus) + direction + int(focusAreaCount)) % int(focusAreaCount))
	}
	if m.focus != focusName {
		m.nameInput.Blur()
	}
}

func (m *Model) moveCursor(delta int) {
	clamp := func(cursor, length int) int {
		if length == 0 {
			return 0
		}
		cursor += delta
		if cursor < 0 {
			return 0
		}
		if cursor >= length {
			return length - 1
		}
		return cursor
	}

	switch m.focus {
	case focusQueue:
		m.queueCursor = clamp(m.queueCursor, len(m.session.Queue()))
	case focusCategory:
		m.catCursor = clamp(m.catCursor, len(m.session.Categories()))
	case focusSubcategory:
		m.subCursor = clamp(m.subCursor, len(m.session.SubcategoriesFor(m.session.Form().CategoryID)))
	case focusSuggestions:
		m.sugCursor = clamp(m.sugCursor, len(m.session.Suggestions()))
	case focusStaging:
		m.stagingCursor = clamp(m.stagingCursor, len(m.session.Staging()))
	}
}

// syncFromSession re-reads derived view state after a session transition.
func (m *Model) syncFromSession() {
	m.nameInput.SetValue(m.session.Form().Name)

	queue := m.session.Queue()
	if m.queueCursor >= len(queue) {
		m.queueCursor = max(0, len(queue)-1)
	}
	if selected, ok := m.session.Selected(); ok {
		for i, item := range queue {
			if item.ID == selected.ID {
				m.queueCursor = i
				break
			}
		}
	}
	if staging := m.session.Staging(); m.stagingCursor >= len(staging) {
		m.stagingCursor = max(0, len(staging)-1)
	}
	if suggestions := m.session.Suggestions(); m.sugCursor >= len(suggestions) {
		m.sugCursor = max(0, len(suggestions)-1)
	}
}

func (m *Model) setToast(text string, isError bool) {
	m.toast = text
	m.isError = isError
}

// Commands

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.session.Load(m.ctx)}
	}
}

func (m Model) selectCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return selectionChangedMsg{err: m.session.Select(m.ctx, id)}
	}
}

func (m Model) skipCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.Skip(m.ctx)
		return selectionChangedMsg{}
	}
}

func (m Model) toggleBatchCmd() tea.Cmd {
	queue := m.session.Queue()
	if m.queueCursor >= len(queue) {
		return nil
	}
	id := queue[m.queueCursor].ID
	return func() tea.Msg {
		return selectionChangedMsg{err: m.session.ToggleBatch(id)}
	}
}

func (m Model) stageCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.session.Stage(m.ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{toast: "Item added to the cart."}
	}
}

func (m Model) batchSaveCmd() tea.Cmd {
	count := len(m.session.BatchIDs())
	return func() tea.Msg {
		if err := m.session.SaveBatch(m.ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{toast: fmt.Sprintf("%d items classified.", count)}
	}
}

func (m Model) commitCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.session.CommitAll(m.ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{toast: fmt.Sprintf("%d items saved to the Baseline.", count)}
	}
}

func (m Model) revertCmd(id string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.session.Revert(m.ctx, id)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{toast: fmt.Sprintf("%q returned to the queue.", item.NormalizedName)}
	}
}
