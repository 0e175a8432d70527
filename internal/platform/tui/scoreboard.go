package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pokeplaza/internal/highscore"
)

// Scoreboard layout constants
const (
	tableMinHeight = 5
	nameColumn     = highscore.MaxNameLen + 2
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Copy},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings. Copying is only
// offered when the clipboard is reachable.
func DefaultScoreboardKeyMap(canCopy bool) ScoreboardKeyMap {
	km := ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.Copy.SetEnabled(canCopy)
	return km
}

// Scoreboard shows the high-score table.
type Scoreboard struct {
	entries []highscore.Entry
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	status  string
}

// NewScoreboard creates a scoreboard sized for the terminal.
func NewScoreboard(width, height int, canCopy bool) Scoreboard {
	b := Scoreboard{
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(canCopy && !clipboard.Unsupported),
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

func (b *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameColumn},
		{Title: "Score", Width: 10},
		{Title: "Difficulty", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-10, tableMinHeight)),
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

// SetEntries replaces the listed scores.
func (b *Scoreboard) SetEntries(entries []highscore.Entry) {
	b.entries = entries
	b.status = ""
	b.table.SetRows(scoreRows(entries))
	b.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (b *Scoreboard) Resize(width, height int) {
	b.width = width
	b.height = height
	b.help.Width = width
	b.table = b.createTable()
	b.table.SetRows(scoreRows(b.entries))
}

// Update scrolls the table and handles copying.
func (b *Scoreboard) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Copy):
		b.Copy()
		return nil
	case key.Matches(msg, b.keys.Up), key.Matches(msg, b.keys.Down):
		var cmd tea.Cmd
		b.table, cmd = b.table.Update(msg)
		return cmd
	}
	return nil
}

// Copy puts the table on the system clipboard.
func (b *Scoreboard) Copy() {
	if !b.keys.Copy.Enabled() {
		return
	}
	if err := clipboard.WriteAll(ScoresText(b.entries)); err != nil {
		b.status = "Copy failed: " + err.Error()
		return
	}
	b.status = "Copied to clipboard"
}

// Status returns the result of the last copy.
func (b Scoreboard) Status() string {
	return b.status
}

// View renders the scoreboard.
func (b Scoreboard) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	sb.WriteString(titleStyle.Render("HIGH SCORES"))
	sb.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(tableStyle.Render(b.renderTableContent()))
	sb.WriteString("\n")

	if b.status != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(b.status))
		sb.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func (b Scoreboard) renderTableContent() string {
	if len(b.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return b.table.View()
}

func scoreRows(entries []highscore.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Difficulty,
		}
	}
	return rows
}

// ScoresText formats entries as tab separated lines with a header.
func ScoresText(entries []highscore.Entry) string {
	var sb strings.Builder
	sb.WriteString("Rank\tName\tScore\tDifficulty\n")
	for i, e := range entries {
		fmt.Fprintf(&sb, "%d\t%s\t%d\t%s\n", i+1, e.Name, e.Score, e.Difficulty)
	}
	return sb.String()
}
