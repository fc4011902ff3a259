package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
	"github.com/taskfold/taskfold/internal/session"
	"github.com/taskfold/taskfold/internal/watcher"
)

// Minimum terminal size.
const (
	minWidth  = 60
	minHeight = 16
)

var errNameRequired = errors.New("name is required")

// Model is the root Bubbletea model for the TUI.
type Model struct {
	dir      string
	sess     *session.Session
	settings *models.Settings

	// Snapshot of the session, refreshed after every change
	tasks   []models.Task
	applied []events.Event
	undone  []events.Event

	// UI state
	leftTab       int     // 0=Tasks, 1=Settings
	rightTab      int     // 0=Details, 1=History
	focusedPanel  int     // 0=left, 1=right
	activeOverlay int     // overlayNone, overlayHelp, overlayTaskForm
	splitRatio    float64 // Default 0.55
	width         int
	height        int

	// Confirm mode
	confirmMode int
	confirmTask models.Task

	// Status display
	err  error
	note string

	// Child components
	taskList     *TaskList
	detail       *DetailView
	history      *HistoryView
	settingsForm *SettingsForm
	taskForm     *TaskForm
	help         help.Model

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model.
func NewModel(dir string, sess *session.Session, settings *models.Settings, program *programRef) Model {
	m := Model{
		dir:          dir,
		sess:         sess,
		settings:     settings,
		splitRatio:   0.55,
		taskList:     NewTaskList(),
		detail:       NewDetailView(),
		history:      NewHistoryView(),
		settingsForm: NewSettingsForm(),
		help:         help.New(),
		program:      program,
	}
	m.applySettings()
	m.refresh()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Session data ───────────────────────────────────────────────
	case SessionLoadedMsg:
		m.sess = msg.Session
		m.refresh()
		return m, nil

	case StateChangedMsg:
		m.refresh()
		if m.taskList.Select(msg.Task) {
			m.refreshDetail()
		}
		m.note = msg.Note
		return m, clearNoteAfter(3 * time.Second)

	case SettingsLoadedMsg:
		m.settings = msg.Settings
		applyTheme(m.settings.Display.Theme)
		m.applySettings()
		m.refresh()
		return m, nil

	case FileChangedMsg:
		if msg.Event.Type == watcher.EventSettingsChanged {
			return m, loadSettingsCmd()
		}
		return m, loadSessionCmd(m.dir)

	// ── Status display ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		m.refresh()
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearNoteMsg:
		m.note = ""
		return m, nil
	}

	return m, nil
}

// refresh re-reads the session into the model and its child views.
func (m *Model) refresh() {
	m.tasks = m.sess.PresentState()
	m.applied = m.sess.Applied()
	m.undone = m.sess.Undone()

	m.taskList.SetTasks(m.tasks)
	m.history.SetHistory(m.sess.Base(), m.applied, m.undone)
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	if t, ok := m.taskList.SelectedTask(); ok {
		m.detail.SetTask(&t, m.tasks, m.settings.Display.DateLayout)
		return
	}
	m.detail.SetTask(nil, m.tasks, m.settings.Display.DateLayout)
}

func (m *Model) applySettings() {
	m.settingsForm.Load(m.settings)
	m.taskList.SetDateLayout(m.settings.Display.DateLayout)
	m.taskList.SetShowDone(m.settings.Display.ShowCompleted)
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlay captures everything
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	// Inline settings edit captures everything
	if m.focusedPanel == 0 && m.leftTab == 1 && m.settingsForm.IsEditing() {
		return m.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil

	case key.Matches(msg, globalKeys.Tab):
		m.focusedPanel = 1 - m.focusedPanel
		return nil

	case key.Matches(msg, globalKeys.Tab1), key.Matches(msg, globalKeys.Tab2):
		tab := 0
		if key.Matches(msg, globalKeys.Tab2) {
			tab = 1
		}
		if m.focusedPanel == 0 {
			m.leftTab = tab
		} else {
			m.rightTab = tab
		}
		return nil

	case key.Matches(msg, globalKeys.Undo):
		return undoCmd(m.sess, m.dir)

	case key.Matches(msg, globalKeys.Redo):
		return redoCmd(m.sess, m.dir)
	}

	if m.focusedPanel == 0 {
		switch m.leftTab {
		case 0:
			return m.handleTaskListKey(msg)
		case 1:
			return m.handleSettingsKey(msg)
		}
		return nil
	}
	m.handleScrollKey(msg)
	return nil
}

func (m *Model) handleTaskListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, taskListKeys.Up):
		m.taskList.MoveUp()
		m.refreshDetail()
	case key.Matches(msg, taskListKeys.Down):
		m.taskList.MoveDown()
		m.refreshDetail()
	case key.Matches(msg, taskListKeys.Add):
		m.openAddTaskForm(false)
	case key.Matches(msg, taskListKeys.AddSub):
		m.openAddTaskForm(true)
	case key.Matches(msg, taskListKeys.Rename):
		m.openRenameTaskForm()
	case key.Matches(msg, taskListKeys.Toggle):
		return m.toggleSelectedTask()
	case key.Matches(msg, taskListKeys.Delete):
		if t, ok := m.taskList.SelectedTask(); ok {
			m.confirmMode = confirmDelete
			m.confirmTask = t
		}
	case key.Matches(msg, taskListKeys.ShowAll):
		m.taskList.SetShowDone(!m.taskList.ShowDone())
		m.refreshDetail()
	case key.Matches(msg, taskListKeys.Commit):
		if len(m.applied) > 0 {
			m.confirmMode = confirmCommit
		}
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if m.settingsForm.IsEditing() {
		switch msg.Type {
		case tea.KeyEnter:
			if changed, k, v := m.settingsForm.FinishEdit(); changed {
				return saveSettingCmd(k, v)
			}
			return nil
		case tea.KeyEscape:
			m.settingsForm.CancelEdit()
			return nil
		default:
			ti := m.settingsForm.InputModel()
			newTI, _ := ti.Update(msg)
			*ti = newTI
			return nil
		}
	}

	switch {
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Toggle), key.Matches(msg, settingsKeys.Enter):
		if m.settingsForm.StartEdit() {
			return nil
		}
		if changed, k, v := m.settingsForm.Toggle(); changed {
			return saveSettingCmd(k, v)
		}
	}
	return nil
}

func (m *Model) handleScrollKey(msg tea.KeyMsg) {
	up := key.Matches(msg, scrollKeys.Up)
	down := key.Matches(msg, scrollKeys.Down)
	switch {
	case m.rightTab == 0 && up:
		m.detail.ScrollUp()
	case m.rightTab == 0 && down:
		m.detail.ScrollDown()
	case m.rightTab == 1 && up:
		m.history.ScrollUp()
	case m.rightTab == 1 && down:
		m.history.ScrollDown()
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		mode := m.confirmMode
		m.confirmMode = confirmNone
		switch mode {
		case confirmDelete:
			return m.record(events.RemoveTask{ID: m.confirmTask.ID})
		case confirmCommit:
			return commitCmd(m.sess, m.dir)
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlayTaskForm:
		return m.handleTaskFormKey(msg)
	}
	return nil
}

func (m *Model) handleTaskFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.taskForm == nil {
		m.activeOverlay = overlayNone
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		return m.saveTaskForm()
	case key.Matches(msg, overlayKeys.Cancel):
		m.closeTaskForm()
		return nil
	}

	ti := m.taskForm.NameInput()
	newTI, _ := ti.Update(msg)
	*ti = newTI
	return nil
}

// ── Task actions ─────────────────────────────────────────────────

func (m *Model) formWidth() int {
	w := m.width - 10
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) openAddTaskForm(subtask bool) {
	form := NewTaskForm(formAdd, m.formWidth())
	if subtask {
		parent, ok := m.taskList.SelectedTask()
		if !ok {
			return
		}
		form.SetParent(parent.ID, parent.Name)
	}
	m.taskForm = form
	m.activeOverlay = overlayTaskForm
}

func (m *Model) openRenameTaskForm() {
	t, ok := m.taskList.SelectedTask()
	if !ok {
		return
	}
	m.taskForm = NewTaskForm(formRename, m.formWidth())
	m.taskForm.PreFill(t.ID, t.Name)
	m.activeOverlay = overlayTaskForm
}

func (m *Model) closeTaskForm() {
	m.activeOverlay = overlayNone
	m.taskForm = nil
}

func (m *Model) saveTaskForm() tea.Cmd {
	name := m.taskForm.Name()
	if name == "" {
		m.err = errNameRequired
		return clearErrorAfter(3 * time.Second)
	}

	form := m.taskForm
	m.closeTaskForm()

	if form.mode == formRename {
		return m.record(events.SetName{ID: form.taskID, Name: name})
	}

	t := models.NewTask(name)
	if form.parent != nil {
		t = t.SetParentTask(form.parent)
	}
	return m.record(events.AddTask{Task: t})
}

func (m *Model) toggleSelectedTask() tea.Cmd {
	t, ok := m.taskList.SelectedTask()
	if !ok {
		return nil
	}
	if t.IsComplete() {
		return m.record(events.MarkIncomplete{ID: t.ID})
	}
	return m.record(events.MarkComplete{ID: t.ID})
}

func (m *Model) record(e events.Event) tea.Cmd {
	return recordCmd(m.sess, m.dir, m.settings.History.AutoCommit, e)
}

// doQuit clears the program reference and quits.
func (m *Model) doQuit() tea.Cmd {
	m.program.Clear()
	return tea.Quit
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	innerHeight := max(layout.contentHeight-2, 1)
	leftInner := max(layout.leftWidth-2, 1)
	rightInner := max(layout.rightWidth-2, 1)

	m.taskList.SetHeight(innerHeight)
	m.settingsForm.SetSize(leftInner, innerHeight)
	m.detail.SetSize(rightInner, innerHeight)
	m.history.SetSize(rightInner, innerHeight)
	m.history.SetHistory(m.sess.Base(), m.applied, m.undone)
	m.help.Width = m.width
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	header := renderHeader(m.tasks, m.leftTab, m.rightTab, m.width)
	left := m.renderLeftPanel(layout.leftWidth - 2)
	right := m.renderRightPanel()
	panels := renderPanels(left, right, layout, m.focusedPanel)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	var overlayContent string
	switch m.activeOverlay {
	case overlayHelp:
		overlayContent = renderHelp(m.help, m.width)
	case overlayTaskForm:
		if m.taskForm != nil {
			overlayContent = m.taskForm.View()
		}
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}

	return view
}

func (m Model) renderLeftPanel(width int) string {
	if m.leftTab == 1 {
		return m.settingsForm.View()
	}
	return m.taskList.View(width)
}

func (m Model) renderRightPanel() string {
	if m.rightTab == 1 {
		return m.history.View()
	}
	return m.detail.View()
}
