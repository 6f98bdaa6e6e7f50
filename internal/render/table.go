package render

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/shelfapp/shelf/internal/model"
)

const (
	maxNameWidth = 40
	maxCatsWidth = 30
)

// StyledText applies a lipgloss style to text when colors are enabled.
// When colors are disabled, it returns the plain text unchanged.
func StyledText(text string, style lipgloss.Style) string {
	if ColorsEnabled() {
		return style.Render(text)
	}
	return text
}

// ColorFromName maps model color name strings to lipgloss colors.
func ColorFromName(name string) lipgloss.Color {
	switch name {
	case "red":
		return lipgloss.Color("9")
	case "yellow":
		return lipgloss.Color("11")
	case "blue":
		return lipgloss.Color("12")
	case "green":
		return lipgloss.Color("10")
	case "magenta":
		return lipgloss.Color("13")
	case "gray":
		return lipgloss.Color("8")
	case "white":
		return lipgloss.Color("15")
	default:
		return lipgloss.Color("15")
	}
}

// truncate shortens a string to maxLen runes, appending an ellipsis if truncated.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// EmptyState renders a styled empty-state message with an optional contextual hint.
// When colors are enabled the message is rendered in dim gray and the hint is italic.
// When quiet is true the hint is suppressed.
func EmptyState(message, hint string, quiet bool) string {
	if !ColorsEnabled() {
		if quiet || hint == "" {
			return message
		}
		return message + "\n" + hint
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	result := dimStyle.Render(message)
	if !quiet && hint != "" {
		result += "\n" + hintStyle.Render(hint)
	}
	return result
}

func displayName(g *model.Game) string {
	if g.Name == "" {
		return "(unknown)"
	}
	return g.Name
}

func lastPlayedLabel(g *model.Game) string {
	if g.LastPlayed == 0 {
		return "never"
	}
	return humanize.Time(time.Unix(g.LastPlayed, 0))
}

func categoriesLabel(g *model.Game) string {
	if len(g.Categories) == 0 {
		return ""
	}
	names := make([]string, len(g.Categories))
	for i, c := range g.Categories {
		names[i] = c.Name
	}
	sort.Strings(names)
	return truncate(strings.Join(names, ", "), maxCatsWidth)
}

func hiddenLabel(hidden bool) string {
	if hidden {
		return "✓"
	}
	return ""
}

// RenderGamesTable renders the profile's games as a formatted table,
// sorted by ID.
func RenderGamesTable(games []*model.Game) string {
	if len(games) == 0 {
		return EmptyState("No games in profile.", "Fetch some with: shelf refresh", false)
	}

	sorted := make([]*model.Game, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	if !ColorsEnabled() {
		return renderPlainGamesTable(sorted)
	}

	headers := []string{"ID", "Name", "Source", "Hidden", "Categories", "Last played"}

	rows := make([][]string, 0, len(sorted))
	for _, g := range sorted {
		rows = append(rows, gameToRow(g))
	}

	sourceColors := make([]string, len(sorted))
	for i, g := range sorted {
		sourceColors[i] = g.Source.Color()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

			if row == table.HeaderRow {
				return s.Bold(true).Foreground(lipgloss.Color("15"))
			}

			if row < 0 || row >= len(sourceColors) {
				return s
			}

			switch col {
			case 0: // ID
				return s.Foreground(lipgloss.Color("15"))
			case 1: // Name
				return s.Bold(true)
			case 2: // Source
				return s.Foreground(ColorFromName(sourceColors[row]))
			case 4: // Categories
				return s.Foreground(lipgloss.Color("12"))
			default:
				return s
			}
		})

	return t.Render()
}

func gameToRow(g *model.Game) []string {
	return []string{
		fmt.Sprintf("%d", g.ID),
		truncate(displayName(g), maxNameWidth),
		g.Source.String(),
		hiddenLabel(g.Hidden),
		categoriesLabel(g),
		lastPlayedLabel(g),
	}
}

func renderPlainGamesTable(games []*model.Game) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-10s %-40s %-14s %-7s %-30s %s\n",
		"ID", "Name", "Source", "Hidden", "Categories", "Last played")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 115))

	for _, g := range games {
		fmt.Fprintf(&b, "%-10d %-40s %-14s %-7s %-30s %s\n",
			g.ID,
			truncate(displayName(g), maxNameWidth),
			g.Source.String(),
			hiddenLabel(g.Hidden),
			categoriesLabel(g),
			lastPlayedLabel(g),
		)
	}

	return b.String()
}

// AccountRow is one discovered local account for the accounts table.
// Name is nil while resolution is pending or when it failed.
type AccountRow struct {
	Dir  string `json:"dir"`
	ID64 int64  `json:"id64"`
	Name *string `json:"name"`
}

// RenderAccountsTable renders discovered local accounts with their
// resolved display names.
func RenderAccountsTable(accounts []AccountRow) string {
	if len(accounts) == 0 {
		return EmptyState("No local accounts found.", "Check steam_path in settings.yaml", false)
	}

	if !ColorsEnabled() {
		return renderPlainAccountsTable(accounts)
	}

	headers := []string{"Directory", "Account ID", "Display name"}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, accountToRow(a))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(lipgloss.Color("15"))
			}
			if col == 2 {
				return s.Bold(true)
			}
			return s.Foreground(lipgloss.Color("15"))
		})

	return t.Render()
}

func accountToRow(a AccountRow) []string {
	name := "(unresolved)"
	if a.Name != nil {
		name = *a.Name
	}
	return []string{a.Dir, fmt.Sprintf("%d", a.ID64), name}
}

func renderPlainAccountsTable(accounts []AccountRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-12s %-20s %s\n", "Directory", "Account ID", "Display name")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 60))

	for _, a := range accounts {
		name := "(unresolved)"
		if a.Name != nil {
			name = *a.Name
		}
		fmt.Fprintf(&b, "%-12s %-20d %s\n", a.Dir, a.ID64, name)
	}

	return b.String()
}
