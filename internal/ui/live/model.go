package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carnival/internal/journal"
	"carnival/internal/scoreboard"
	"carnival/internal/shell"
)

const (
	subjectColumns = 4
	boardColumns   = 10
)

// Options configures the carnival UI model.
type Options struct {
	Title        string
	Teams        []scoreboard.Team
	NoColor      bool
	TickInterval time.Duration
	Journal      *journal.Journal
}

// Model renders the carnival in the terminal using Bubble Tea.
type Model struct {
	shell         *shell.Shell
	journal       *journal.Journal
	keys          keyMap
	help          help.Model
	standings     table.Model
	title         string
	noColor       bool
	tickInterval  time.Duration
	subjectCursor int
	boardCursor   int
	width         int
	height        int
	epoch         int
	pending       int
	notice        string
	quitting      bool
}

// NewModel constructs a UI model over a shell.
func NewModel(sh *shell.Shell, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	title := opts.Title
	if title == "" {
		title = sh.Catalog.Title
	}
	t := table.New(
		table.WithColumns(standingsColumns()),
		table.WithRows(standingsRows(scoreboard.Standings(opts.Teams))),
		table.WithFocused(false),
		table.WithHeight(len(opts.Teams)+1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		shell:        sh,
		journal:      opts.Journal,
		keys:         defaultKeyMap(),
		help:         help.New(),
		standings:    t,
		title:        title,
		noColor:      opts.NoColor,
		tickInterval: tickInterval,
		pending:      -1,
	}
}

// Shell exposes the underlying navigation state.
func (m Model) Shell() *shell.Shell {
	return m.shell
}

// Init has nothing to schedule until a question opens.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses, window resizes, and countdown ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(typed)
		if m.quitting {
			return m, tea.Quit
		}
		tickCmd := m.ensureTicking()
		return m, tea.Batch(cmd, tickCmd)
	case tickMsg:
		m = m.handleTick(typed)
		tickCmd := m.ensureTicking()
		return m, tickCmd
	}
	return m, nil
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.keys.context = contextFor(m.shell)
	var body string
	switch m.shell.Screen {
	case shell.ScreenSubjects:
		body = renderSubjects(m)
	case shell.ScreenQuiz:
		body = renderQuiz(m)
	default:
		body = renderLanding(m)
	}
	parts := []string{body}
	if m.notice != "" {
		parts = append(parts, stylize(m.notice, m.noColor, lipgloss.Color("244")))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// tickMsg carries a countdown tick for one timer generation.
type tickMsg struct {
	epoch      int
	generation int
}

// tick schedules the next countdown tick.
func tick(interval time.Duration, epoch, generation int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch, generation: generation}
	})
}

// ensureTicking schedules a tick when the countdown runs and none is pending.
func (m *Model) ensureTicking() tea.Cmd {
	sess := m.shell.Session
	if sess == nil || !sess.Timer.Running {
		return nil
	}
	if m.pending == sess.Timer.Generation {
		return nil
	}
	m.pending = sess.Timer.Generation
	return tick(m.tickInterval, m.epoch, sess.Timer.Generation)
}
