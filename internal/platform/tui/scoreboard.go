package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	scoreboardLimit = 50
	cardWidth       = 20
	cardLines       = 8 // Rendered height of a stats card, borders included
)

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cardStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(cardWidth).
			Padding(0, 1)
	cardActiveStyle = cardStyle.BorderForeground(lipgloss.Color(core.ColorTeal.Hex()))
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

type scoreboardKeys struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left/h", "easier")),
	Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/l", "harder")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
	Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// scoreVariant is one difficulty column of the scoreboard.
type scoreVariant struct {
	id    string
	label string
}

// scoreVariants lists the registered variants from easiest to hardest.
func scoreVariants() []scoreVariant {
	var out []scoreVariant
	for _, d := range config.Difficulties {
		id := breakout.VariantID(d)
		if registry.Exists(id) {
			out = append(out, scoreVariant{id: id, label: strings.ToUpper(d.String())})
		}
	}
	return out
}

// ScoreboardModel shows per-difficulty stats side by side with the top
// scores of the selected difficulty below them.
type ScoreboardModel struct {
	store     *storage.Store
	variants  []scoreVariant
	selected  int
	stats     map[string]*storage.GameStats
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard with the normal variant selected.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: scoreVariants(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.id == breakout.IDNormal {
			m.selected = i
		}
	}
	if store != nil {
		if stats, err := store.AllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = newScoreTable(height)
	m.loadScores()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Round", Width: 6},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-cardLines-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// loadScores fills the table with the selected variant's best scores.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.variants) > 0 {
		if scores, err := m.store.TopScores(m.variants[m.selected].id, scoreboardLimit); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			roundLabel(s.Round),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.variants)
		switch {
		case key.Matches(msg, defaultScoreboardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, defaultScoreboardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, defaultScoreboardKeys.Prev) && n > 0:
			m.selected = (m.selected + n - 1) % n
			m.loadScores()
			return m, nil
		case key.Matches(msg, defaultScoreboardKeys.Next) && n > 0:
			m.selected = (m.selected + 1) % n
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(3, m.height-cardLines-8))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerStyled(scoreTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderCards()))
	b.WriteString("\n\n")

	if len(m.scores) == 0 {
		b.WriteString(centerStyled(emptyStyle.Render("No scores at this difficulty yet."), m.width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	}
	b.WriteString("\n\n")
	b.WriteString(centerStyled(menuDimStyle.Render(m.help.View(defaultScoreboardKeys)), m.width))

	return b.String()
}

// renderCards draws one stats card per difficulty. When the cards do not fit
// side by side only the selected one is shown.
func (m ScoreboardModel) renderCards() string {
	if len(m.variants) == 0 {
		return ""
	}
	if m.width < len(m.variants)*(cardWidth+4) {
		return lipgloss.JoinHorizontal(lipgloss.Center, "< ", m.renderCard(m.selected), " >")
	}

	cards := make([]string, len(m.variants))
	for i := range m.variants {
		cards[i] = m.renderCard(i)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m ScoreboardModel) renderCard(i int) string {
	v := m.variants[i]
	style, label := cardStyle, v.label
	if i == m.selected {
		style = cardActiveStyle
		label = scoreTitleStyle.Render(label)
	}

	st, ok := m.stats[v.id]
	if !ok {
		return style.Render(label + "\n\nno games yet\n\n\n")
	}
	return style.Render(fmt.Sprintf("%s\n\nbest   %d\nround  %s\ngames  %d\nlast   %s",
		label, st.HighScore, roundLabel(st.BestRound), st.GamesCount, st.LastPlayed.Format("Jan 02")))
}

// roundLabel shows the round reached; a game that cleared every wall shows as "won".
func roundLabel(round int) string {
	if round >= config.DefaultBreakoutConfig().Gameplay.MaxRounds {
		return "won"
	}
	return fmt.Sprintf("%d", round+1)
}

// Selected returns the ID of the variant whose scores are listed.
func (m ScoreboardModel) Selected() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.selected].id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
