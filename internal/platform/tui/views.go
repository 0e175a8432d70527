package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/session"
	"github.com/vovakirdan/pokeplaza/internal/settings"
)

const volumeBarWidth = 20

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
	activeBoxStyle = boxStyle.BorderForeground(lipgloss.Color("229"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current screen.
func (m Model) View() string {
	switch m.machine.Phase() {
	case session.MainMenu:
		return m.place(m.mainMenuView())
	case session.DifficultySelect:
		return m.place(m.difficultyView())
	case session.CharacterSelect:
		return m.place(m.characterView())
	case session.Settings:
		return m.place(m.settingsView())
	case session.HighScores:
		return m.board.View()
	case session.Playing:
		return m.fieldView(nil)
	case session.Paused:
		return m.fieldView([]string{"PAUSED", "", "P: resume   M: main menu"})
	case session.GameOver:
		next := "Enter: continue"
		if m.machine.Qualifies() {
			next = "Enter: save your name"
		}
		return m.fieldView([]string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", m.machine.LastScore()),
			"",
			next + "   Esc: skip",
		})
	case session.NameEntry:
		return m.place(m.nameEntryView())
	case session.PostGame:
		return m.place(m.postGameView())
	default:
		return ""
	}
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) mainMenuView() string {
	var b strings.Builder

	if m.catalog != nil {
		if banner := m.catalog.Banner(); len(banner) > 0 {
			b.WriteString(bannerStyle.Render(strings.Join(banner, "\n")))
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(m.catalog.Title()))
		b.WriteString("\n\n")
	}

	b.WriteString(boxStyle.Render(menuList(session.MainItems, m.machine.Cursor())))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Up/Down: navigate  |  Enter: select  |  Q: quit"))
	return lipgloss.JoinVertical(lipgloss.Center, b.String())
}

func (m Model) difficultyView() string {
	items := make([]string, len(config.Tiers))
	for i, t := range config.Tiers {
		p := t.Params()
		items[i] = fmt.Sprintf("%-8s speed x%.1f  shot every %.2fs", t.Label(), p.SpeedMul, p.ShotCooldown)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("CHOOSE DIFFICULTY"),
		"",
		boxStyle.Render(menuList(items, m.machine.Cursor())),
		mutedStyle.Render("Up/Down: navigate  |  1-3 or Enter: select  |  Esc: back"),
	)
}

func (m Model) characterView() string {
	chars := m.machine.Characters()
	cards := make([]string, 0, len(chars))
	for i, ch := range chars {
		var card strings.Builder
		if m.catalog != nil {
			if sp, err := m.catalog.Sprite(ch.Sprite, ch.Color); err == nil {
				card.WriteString(styleFor(sp.Color).Render(strings.Join(sp.Rows, "\n")))
				card.WriteString("\n\n")
			}
		}

		style := boxStyle
		name := ch.Name
		if i == m.machine.Cursor() {
			style = activeBoxStyle
			name = selectedStyle.Render("> " + name + " <")
		}
		card.WriteString(name)
		cards = append(cards, style.Align(lipgloss.Center).Render(card.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("CHOOSE YOUR CHARACTER"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		mutedStyle.Render("Left/Right: navigate  |  Enter: play  |  Esc: back"),
	)
}

func (m Model) settingsView() string {
	cfg := m.machine.Config()
	items := []string{
		fmt.Sprintf("%-8s %s %3.0f", session.SettingItems[session.SettingMusic], volumeBar(cfg.MusicVolume), cfg.MusicVolume),
		fmt.Sprintf("%-8s %s %3.0f", session.SettingItems[session.SettingSfx], volumeBar(cfg.SfxVolume), cfg.SfxVolume),
		session.SettingItems[session.SettingBack],
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("SETTINGS"),
		"",
		boxStyle.Render(menuList(items, m.machine.Cursor())),
		mutedStyle.Render("Up/Down: navigate  |  Left/Right: adjust  |  Esc: back"),
	)
}

func (m Model) nameEntryView() string {
	input := fmt.Sprintf("Name: %s_", m.machine.Name())
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("NEW HIGH SCORE!"),
		"",
		fmt.Sprintf("Score: %d  (%s)", m.machine.LastScore(), m.machine.Tier().Label()),
		"",
		activeBoxStyle.Render(input),
		mutedStyle.Render("Letters, digits and spaces  |  Enter: save  |  Esc: skip"),
	)
}

func (m Model) postGameView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("RUN OVER"),
		"",
		fmt.Sprintf("Score: %d", m.machine.LastScore()),
		"",
		boxStyle.Render(menuList(session.PostItems, m.machine.Cursor())),
		mutedStyle.Render("Up/Down: navigate  |  Enter: select"),
	)
}

// fieldView renders the running game with an optional message box on top.
func (m Model) fieldView(overlay []string) string {
	game := m.machine.Game()
	if game == nil {
		return ""
	}
	m.screen.Clear()
	game.Render(m.screen, m.machine.Art())
	if len(overlay) > 0 {
		drawOverlay(m.screen, overlay, core.ColorBrightWhite)
	}
	return RenderScreen(m.screen)
}

func menuList(items []string, cursor int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == cursor {
			lines[i] = selectedStyle.Render("> " + item)
		} else {
			lines[i] = "  " + item
		}
	}
	return strings.Join(lines, "\n")
}

func volumeBar(v float64) string {
	filled := int(v / settings.MaxVolume * volumeBarWidth)
	filled = core.Clamp(filled, 0, volumeBarWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", volumeBarWidth-filled) + "]"
}
