// Package tui provides a Bubble Tea terminal user interface for letras-scraper.
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
	"github.com/handiism/letras-scraper/internal/config"
	"github.com/handiism/letras-scraper/internal/scrape"
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
)

const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateListing
	StateFetching
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scrape.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Scrape context
	ctx    context.Context
	cancel context.CancelFunc

	manager *scrape.Manager
	events  chan scrape.ProgressEvent
	run     int

	artistURL  string
	outputName string
	outputPath string
	urls       []string

	// Fetch progress
	fetched  int32
	total    int32
	received int64
	count    int

	// Options
	concurrent bool
	breaklines bool
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.letras.com/artist/"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		progress:   prog,
		settings:   config.DefaultSettings(),
		logs:       make([]LogEntry, 0),
		ctx:        ctx,
		cancel:     cancel,
		concurrent: true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries a progress event from the manager.
	ProgressMsg struct {
		Run   int
		Event scrape.ProgressEvent
	}

	// ListDoneMsg is sent when the catalog has been listed.
	ListDoneMsg struct {
		Run  int
		URLs []string
		Err  error

		// events is the run's channel, still open after a successful listing.
		events chan scrape.ProgressEvent
	}

	// ExportDoneMsg is sent when all songs are fetched and saved.
	ExportDoneMsg struct {
		Run   int
		Count int
		Path  string
		Err   error
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
		m.progress.Width = min(max(msg.Width-20, 20), 80)
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
			if m.state == StateListing || m.state == StateFetching {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.start()
				return m, tea.Batch(m.listSongs(), m.waitForEvent(), m.spinner.Tick)
			}

		// Toggles use ctrl so that plain letters still reach the URL input.
		case "ctrl+t":
			if m.state == StateInput {
				m.concurrent = !m.concurrent
				return m, nil
			}

		case "ctrl+l":
			if m.state == StateInput {
				m.breaklines = !m.breaklines
				return m, nil
			}

		case "ctrl+g":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Run != m.run {
			break
		}
		cmds = append(cmds, m.waitForEvent())
		if msg.Event.Level == scrape.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case ListDoneMsg:
		if msg.Run != m.run || m.state != StateListing {
			// No fetch follows a dropped listing, so its event stream ends here.
			if msg.Err == nil && msg.events != nil {
				close(msg.events)
			}
			break
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.urls = msg.URLs
		m.total = int32(len(msg.URLs))
		m.state = StateFetching
		cmds = append(cmds, m.fetchAndSave(), m.tickProgress())

	case ExportDoneMsg:
		if msg.Run != m.run || m.state != StateFetching {
			break
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.count = msg.Count
			m.outputPath = msg.Path
			m.fetched = int32(msg.Count)
			if m.manager != nil {
				m.received = m.manager.BytesReceived()
			}
		}

	case TickMsg:
		if m.manager != nil && m.state == StateFetching {
			m.fetched, m.total = m.manager.GetProgress()
			m.received = m.manager.BytesReceived()
			cmds = append(cmds, m.progress.SetPercent(m.percent()), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// start applies the selected options and creates the manager.
func (m *Model) start() {
	m.artistURL = strings.TrimSpace(m.textInput.Value())
	m.outputName = scrape.OutputName(m.artistURL)
	m.settings.Concurrent = m.concurrent
	m.settings.PreserveLineBreaks = m.breaklines

	m.run++
	events := make(chan scrape.ProgressEvent, 64)
	m.events = events
	m.manager = scrape.NewManager(m.settings, func(event scrape.ProgressEvent) {
		// Drop events rather than block fetch workers when the UI lags.
		select {
		case events <- event:
		default:
		}
	})
	m.state = StateListing
}

// reset returns to the input screen for a new export.
func (m *Model) reset() {
	m.run++
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.urls = nil
	m.fetched = 0
	m.total = 0
	m.received = 0
	m.count = 0
	m.outputPath = ""
	m.manager = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.fetched) / float64(m.total)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent returns a command delivering the next progress event.
// It yields no message once the run's event channel is closed.
func (m Model) waitForEvent() tea.Cmd {
	events, run := m.events, m.run
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Run: run, Event: event}
	}
}

// listSongs fetches the catalog page in the background.
//
// The event channel is closed on failure since no fetch will follow. On
// success it travels with the message and is closed either by fetchAndSave
// or by Update when the message arrives after the run was abandoned.
func (m Model) listSongs() tea.Cmd {
	manager, ctx, artistURL := m.manager, m.ctx, m.artistURL
	events, run := m.events, m.run
	return func() tea.Msg {
		urls, err := manager.ListSongURLs(ctx, artistURL)
		if err != nil {
			close(events)
			return ListDoneMsg{Run: run, Err: err}
		}
		return ListDoneMsg{Run: run, URLs: urls, events: events}
	}
}

// fetchAndSave fetches every listed song and writes the JSON file, then
// closes the event channel.
func (m Model) fetchAndSave() tea.Cmd {
	manager, ctx, urls := m.manager, m.ctx, m.urls
	outputName, mode := m.outputName, m.settings.Mode()
	events, run := m.events, m.run
	return func() tea.Msg {
		defer close(events)

		songs, err := manager.FetchSongs(ctx, urls, mode)
		if err != nil {
			return ExportDoneMsg{Run: run, Err: err}
		}
		path, err := manager.Save(ctx, outputName, songs)
		if err != nil {
			return ExportDoneMsg{Run: run, Err: err}
		}
		return ExportDoneMsg{Run: run, Count: len(songs), Path: path}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ Letras Scraper"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Export an artist's lyrics from letras.com"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateListing:
		b.WriteString(m.viewListing())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter letras.com artist URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Concurrent fetching, %d workers (ctrl+t)\n", checkbox(m.concurrent), m.settings.Workers()))
	b.WriteString(fmt.Sprintf("  %s Keep line breaks (ctrl+l)\n", checkbox(m.breaklines)))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+g)\n", checkbox(m.verbose)))
	b.WriteString("\n")

	outputDir := m.settings.OutputDir
	if outputDir == "" {
		outputDir = "current directory"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s", outputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewListing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching song list..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Found %d song(s) for %s", m.total, m.outputName)))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Songs: %d/%d | Received: %.2f MB | Mode: %s",
		m.fetched,
		m.total,
		float64(m.received)/1024/1024,
		m.settings.Mode(),
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"✨ Export Complete!\n\n"+
			"Songs: %d\n"+
			"Size: %.2f MB\n"+
			"File: %s",
		m.count,
		float64(m.received)/1024/1024,
		m.outputPath,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
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
		prefix := "•"
		switch log.Level {
		case scrape.LevelError:
			style = errorStyle
			prefix = "✗"
		case scrape.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scrape.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scrape.LevelInfo:
			style = infoStyle
			prefix = "›"
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
		return "enter: start • ctrl+t: concurrent • ctrl+l: line breaks • ctrl+g: verbose • esc: quit"
	case StateListing, StateFetching:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new export • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
