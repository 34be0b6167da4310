package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/registry"
	"github.com/vovakirdan/kiro-arcade/internal/storage"
)

const (
	scoreLimit = 100

	// Rows taken by the title, tabs, summary, table frame and help.
	scoreboardChrome = 9
)

// scoreScope selects which history the scoreboard lists.
type scoreScope int

const (
	scopeAllTime scoreScope = iota
	scopeSession
)

func (s scoreScope) String() string {
	if s == scopeSession {
		return "this session"
	}
	return "all time"
}

type scoreboardKeys struct {
	Scroll key.Binding // shown in help; the table moves its own cursor
	Next   key.Binding
	Prev   key.Binding
	Scope  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Scope, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Scope:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "all time/session")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardStyles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	dim       lipgloss.Style
	frame     lipgloss.Style
	table     table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return scoreboardStyles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:       r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
		activeTab: r.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		dim:       r.NewStyle().Foreground(lipgloss.Color("241")),
		frame:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		table: table.Styles{
			Header: r.NewStyle().Bold(true).Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true),
			Cell:     r.NewStyle().Padding(0, 1),
			Selected: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		},
	}
}

// ScoreboardModel lists recorded games per title, either all time or for
// the current session only.
type ScoreboardModel struct {
	store   *storage.Store
	session Session
	games   []registry.GameInfo
	game    int
	scope   scoreScope

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	failed error

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	styles scoreboardStyles
	width  int
	height int

	standalone bool // Owns the program; leaving quits it
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
// store may be nil. opts supplies the session for the session scope and the
// renderer for styling.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		session: opts.Session,
		games:   registry.List(),
		help:    help.New(),
		keys:    newScoreboardKeys(),
		styles:  newScoreboardStyles(opts.Renderer),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	// Styles come first: the header's height depends on them.
	m.table = table.New(
		table.WithStyles(m.styles.table),
		table.WithColumns(scoreColumns(m.width)),
		table.WithHeight(max(3, m.height-scoreboardChrome)),
		table.WithFocused(true),
	)
	m.load()
	return m
}

// scoreColumns sizes the table for a terminal width. The outcome column
// takes what is left, since princess endings are the longest values.
func scoreColumns(width int) []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Outcome", Width: 12},
		{Title: "When", Width: 12},
	}
	used := 8 // frame border and padding
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := width - used; spare > 0 {
		cols[3].Width += min(spare, 12)
	}
	return cols
}

// load reads the selected game's scores for the current scope.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.failed = nil, nil, nil

	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		if m.scope == scopeSession {
			m.scores, m.failed = m.sessionScores(id)
		} else {
			m.scores, m.failed = m.store.TopScores(id, scoreLimit)
			if m.failed == nil {
				if st, err := m.store.GetGameStats(id); err == nil && st.GamesCount > 0 {
					m.stats = st
				}
			}
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			dash(s.Player),
			dash(s.Outcome),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// sessionScores returns this session's games of one title, best first.
func (m *ScoreboardModel) sessionScores(gameID string) ([]storage.ScoreEntry, error) {
	if m.session.ID == "" {
		return nil, nil
	}
	all, err := m.store.SessionScores(m.session.ID)
	if err != nil {
		return nil, err
	}
	scores := slices.DeleteFunc(all, func(e storage.ScoreEntry) bool { return e.GameID != gameID })
	slices.SortStableFunc(scores, func(a, b storage.ScoreEntry) int { return cmp.Compare(b.Score, a.Score) })
	return scores, nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.game + 1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.selectGame(m.game - 1)
			return m, nil

		case key.Matches(msg, m.keys.Scope):
			m.scope = 1 - m.scope
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(scoreColumns(msg.Width))
		m.table.SetHeight(max(3, msg.Height-scoreboardChrome))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectGame moves to game i, wrapping around the list.
func (m *ScoreboardModel) selectGame(i int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (i%len(m.games) + len(m.games)) % len(m.games)
	m.load()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.title.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n")

	var body string
	switch {
	case m.failed != nil:
		body = m.styles.dim.Render("Scores unavailable: " + m.failed.Error())
	case len(m.scores) == 0 && m.scope == scopeSession:
		body = m.styles.dim.Italic(true).Render("Nothing played this session yet.")
	case len(m.scores) == 0:
		body = m.styles.dim.Italic(true).Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.frame.Render(body)))
	b.WriteString("\n")

	b.WriteString(m.styles.dim.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per game. Narrow terminals get only the current one.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = m.styles.activeTab.Render(g.Title)
		} else {
			tabs[i] = m.styles.tab.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width {
		line = "< " + m.styles.activeTab.Render(m.games[m.game].Title) + " >"
	}
	return line
}

func (m ScoreboardModel) summary() string {
	if m.scope == scopeSession {
		return fmt.Sprintf("%s  |  %d played", m.scope, len(m.scores))
	}
	if m.stats == nil {
		return m.scope.String()
	}
	return fmt.Sprintf("%s  |  Played: %d  |  Best: %d  |  Average: %.1f  |  Last: %s",
		m.scope, m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program.
// Returns true if the player wants to go back to the menu.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (goBack bool, err error) {
	model := NewScoreboardModel(store, cfg, opts)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
