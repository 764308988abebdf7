// Package ui provides the Bubble Tea task view.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/todo/internal/prefs"
	"github.com/five82/todo/internal/state"
	"github.com/five82/todo/internal/todoapi"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	API          todoapi.TaskAPI
	Store        *state.Store
	Endpoint     string
	PollTick     time.Duration
	ThemeName    string
	HideFinished bool
	PrefsPath    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       todoapi.TaskAPI
	store     *state.Store
	endpoint  string
	prefsPath string
	pollTick  time.Duration
	keys      keyMap
	help      help.Model

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Table state
	selectedRow  int
	hideFinished bool

	// Overlays
	showHelp      bool
	prompting     bool
	input         textinput.Model
	confirmDelete bool
	pendingDelete string // task id captured when the delete was requested

	// Last action outcome shown in the footer
	flash      string
	flashIsErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200
	input.Prompt = "› "

	return Model{
		ctx:          ctx,
		api:          opts.API,
		store:        opts.Store,
		endpoint:     opts.Endpoint,
		prefsPath:    prefsPath,
		pollTick:     pollTick,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        GetTheme(opts.ThemeName),
		hideFinished: opts.HideFinished,
		input:        input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-10)
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = m.snapshot.LastUpdated
		m.clampSelection()
		return m, nil

	case actionDoneMsg:
		m.flash = msg.text
		m.flashIsErr = msg.err != nil
		if msg.err != nil {
			m.flash = msg.text + ": " + describeError(msg.err)
		}
		return m, refreshCmd(m.ctx, m.api, m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if m.confirmDelete {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.HideFinished):
		m.hideFinished = !m.hideFinished
		m.clampSelection()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.flash = "refreshing…"
		m.flashIsErr = false
		return m, refreshCmd(m.ctx, m.api, m.store)

	case key.Matches(msg, m.keys.Add):
		m.prompting = true
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m, toggleCmd(m.ctx, m.api, task)

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			m.confirmDelete = true
			m.pendingDelete = task.ID
		}
		return m, nil
	}

	return m.handleTableKey(msg)
}

// handleTableKey moves the selection.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.visibleTasks())
	if count == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	}
	return m, nil
}

// handlePromptKey drives the add-task input.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		title := strings.TrimSpace(m.input.Value())
		m.prompting = false
		m.input.Blur()
		if title == "" {
			return m, nil
		}
		return m, addTaskCmd(m.ctx, m.api, title)
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKey asks before deleting; "y" or "d" confirms, anything else cancels.
// It deletes the id captured by the first "d", not the row selected now.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.confirmDelete = false
	m.pendingDelete = ""
	switch msg.String() {
	case "y", "Y", "d":
		if id == "" {
			return m, nil
		}
		return m, deleteCmd(m.ctx, m.api, id)
	}
	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, HideFinished: m.hideFinished})
}

// visibleTasks applies the finished filter.
func (m Model) visibleTasks() []todoapi.TaskDto {
	if !m.hideFinished {
		return m.snapshot.Tasks
	}
	out := make([]todoapi.TaskDto, 0, len(m.snapshot.Tasks))
	for _, t := range m.snapshot.Tasks {
		if !t.IsFinished {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) selectedTask() (todoapi.TaskDto, bool) {
	tasks := m.visibleTasks()
	if m.selectedRow < 0 || m.selectedRow >= len(tasks) {
		return todoapi.TaskDto{}, false
	}
	return tasks[m.selectedRow], true
}

func (m *Model) clampSelection() {
	count := len(m.visibleTasks())
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionDoneMsg struct {
	text string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func refreshCmd(ctx context.Context, api todoapi.TaskAPI, store *state.Store) tea.Cmd {
	if api == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		tasks, err := api.ListTasks(ctx).Unpack()
		store.Update(tasks, err)
		return snapshotMsg(store.Snapshot())
	}
}

func addTaskCmd(ctx context.Context, api todoapi.TaskAPI, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		created, err := api.AddTask(ctx, todoapi.NewTaskDto("", DefaultUserID, title, false)).Unpack()
		if err != nil {
			return actionDoneMsg{text: "add failed", err: err}
		}
		return actionDoneMsg{text: "added task " + created.ID}
	}
}

func toggleCmd(ctx context.Context, api todoapi.TaskAPI, task todoapi.TaskDto) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		task.IsFinished = !task.IsFinished
		updated, err := api.UpdateTask(ctx, task).Unpack()
		if err != nil {
			return actionDoneMsg{text: "update of task " + task.ID + " failed", err: err}
		}
		return actionDoneMsg{text: "task " + updated.ID + " " + ternary(updated.IsFinished, "finished", "reopened")}
	}
}

func deleteCmd(ctx context.Context, api todoapi.TaskAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		if err := api.DeleteTaskByID(ctx, id).Err(); err != nil {
			return actionDoneMsg{text: "delete of task " + id + " failed", err: err}
		}
		return actionDoneMsg{text: "deleted task " + id}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
