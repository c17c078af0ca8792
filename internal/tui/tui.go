// Package tui provides a Bubble Tea terminal user interface for organizing
// a directory of downloaded episodes.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/laurence-myers/stitcher-scraper/internal/config"
	"github.com/laurence-myers/stitcher-scraper/internal/http"
	"github.com/laurence-myers/stitcher-scraper/internal/model"
	"github.com/laurence-myers/stitcher-scraper/internal/organizer"
	"github.com/laurence-myers/stitcher-scraper/internal/stitcher"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	feedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organizer.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	feeds     *config.FeedTable
	directory string
	logs      []LogEntry
	feed      *model.FeedData
	summary   *organizer.Summary
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	organizer *organizer.Organizer
	events    chan organizer.ProgressEvent

	processed int32
	total     int32

	// Options
	tag      bool
	rename   bool
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model for directory. feedID may be a numeric
// feed ID, a known show name, or empty.
func NewModel(settings *config.Settings, feeds *config.FeedTable, feedID, directory string) Model {
	ti := textinput.New()
	ti.Placeholder = "96916 or ComedyBangBang"
	ti.SetValue(feedID)
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		feeds:     feeds,
		directory: directory,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		tag:       true,
		rename:    true,
		playlist:  settings.CreatePlaylist,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for each organizer progress event.
	ProgressMsg struct {
		Event organizer.ProgressEvent
	}

	// LoadDoneMsg is sent when the archived feed has been parsed.
	LoadDoneMsg struct {
		Feed *model.FeedData
		Err  error
	}

	// OrganizeDoneMsg is sent when all passes complete.
	OrganizeDoneMsg struct {
		Summary *organizer.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading || m.state == StateOrganizing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				feedID := m.feeds.Resolve(strings.TrimSpace(m.textInput.Value()))
				m.state = StateLoading
				return m, tea.Batch(loadFeed(m.settings.FeedsDir, feedID), m.spinner.Tick)
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.tag = !m.tag
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.rename = !m.rename
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == organizer.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.feed = msg.Feed
		m.state = StateOrganizing
		m.events = make(chan organizer.ProgressEvent, 64)
		m.organizer = organizer.NewOrganizer(
			m.settings,
			http.NewClient(m.settings.UserAgent, m.settings.HTTPTimeout()),
			sendEvent(m.ctx, m.events),
		)
		opts := organizer.Options{Tag: m.tag, Rename: m.rename, Playlist: m.playlist}
		cmds = append(cmds,
			startOrganize(m.ctx, m.organizer, m.directory, m.feed, opts, m.events),
			waitForEvent(m.events),
			m.tickProgress(),
		)

	case OrganizeDoneMsg:
		m.summary = msg.Summary
		if m.organizer != nil {
			m.processed, m.total = m.organizer.GetProgress()
		}
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.organizer != nil && m.state == StateOrganizing {
			m.processed, m.total = m.organizer.GetProgress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Stitcher Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tag and rename downloaded episodes"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Feed ID or show name:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Tag files (ctrl+t)\n", checkbox(m.tag)))
	b.WriteString(fmt.Sprintf("  %s Rename files (ctrl+r)\n", checkbox(m.rename)))
	b.WriteString(fmt.Sprintf("  %s Create playlist (ctrl+p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Directory: %s", m.directory)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Feed archive: %s", m.settings.FeedsDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading archived feed..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	if m.feed != nil {
		b.WriteString(feedStyle.Render(fmt.Sprintf("%s (%d episodes)", m.feed.Feed.Name, len(m.feed.Episodes))))
		b.WriteString("\n\n")
	}

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Episodes: %d/%d", m.processed, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.summary
	if s == nil {
		s = &organizer.Summary{}
	}
	text := fmt.Sprintf(
		"Organize Complete!\n\n"+
			"Tagged: %d\n"+
			"Renamed: %d\n"+
			"Skipped: %d\n"+
			"Failed: %d",
		s.Tagged, s.Renamed, s.Skipped, s.Failed,
	)
	if s.Playlist != "" {
		text += "\nPlaylist: " + s.Playlist
	}
	b.WriteString(boxStyle.Render(text))
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch log.Level {
		case organizer.LevelError:
			style = errorStyle
			prefix = "x"
		case organizer.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organizer.LevelSuccess:
			style = successStyle
			prefix = "+"
		case organizer.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start - ctrl+t: tag - ctrl+r: rename - ctrl+p: playlist - ctrl+v: verbose - esc: quit"
	case StateLoading, StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// loadFeed parses the archived feed document.
func loadFeed(feedsDir, feedID string) tea.Cmd {
	return func() tea.Msg {
		data, err := stitcher.LoadFeed(feedsDir, feedID)
		return LoadDoneMsg{Feed: data, Err: err}
	}
}

// startOrganize runs the organizer in the background and closes events
// once it returns.
func startOrganize(ctx context.Context, org *organizer.Organizer, dir string, data *model.FeedData, opts organizer.Options, events chan organizer.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		summary, err := org.Run(ctx, dir, data, opts)
		close(events)
		return OrganizeDoneMsg{Summary: summary, Err: err}
	}
}

// sendEvent returns a progress callback that forwards events to ch until
// ctx is done.
func sendEvent(ctx context.Context, ch chan<- organizer.ProgressEvent) func(organizer.ProgressEvent) {
	return func(e organizer.ProgressEvent) {
		select {
		case ch <- e:
		case <-ctx.Done():
		}
	}
}

// waitForEvent delivers the next progress event as a ProgressMsg.
func waitForEvent(ch <-chan organizer.ProgressEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return ProgressMsg{Event: e}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, feeds *config.FeedTable, feedID, directory string) error {
	p := tea.NewProgram(NewModel(settings, feeds, feedID, directory), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
