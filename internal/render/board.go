package render

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/shelfapp/shelf/internal/model"
)

const (
	maxCardsPerColumn = 10
	maxBoardColumns   = 5
	minColumnWidth    = 20
	defaultTermWidth  = 100
)

// RenderCategoryBoard renders the library as side-by-side columns, one
// per category (largest first), plus an Uncategorized column when any
// game has no categories. At most maxBoardColumns columns are shown.
func RenderCategoryBoard(gl *model.GameList) string {
	if len(gl.Games) == 0 {
		return EmptyState("No games in profile.", "Fetch some with: shelf refresh", false)
	}

	cols := boardColumns(gl)
	if len(cols) == 0 {
		return ""
	}

	if !ColorsEnabled() {
		return renderPlainBoard(cols)
	}
	return renderColorBoard(cols)
}

type boardColumn struct {
	title string
	games []*model.Game
}

func boardColumns(gl *model.GameList) []boardColumn {
	var cols []boardColumn
	for _, c := range categoryCounts(gl) {
		if c.Count == 0 {
			continue
		}
		cat := gl.GetCategory(c.Name)
		var games []*model.Game
		for _, id := range gl.SortedIDs() {
			g := gl.Games[id]
			if g.HasCategory(cat) {
				games = append(games, g)
			}
		}
		sortGamesByName(games)
		cols = append(cols, boardColumn{title: c.Name, games: games})
	}

	var uncat []*model.Game
	for _, id := range gl.SortedIDs() {
		g := gl.Games[id]
		if len(g.Categories) == 0 {
			uncat = append(uncat, g)
		}
	}
	if len(uncat) > 0 {
		cols = append(cols, boardColumn{title: "Uncategorized", games: uncat})
	}

	if len(cols) > maxBoardColumns {
		cols = cols[:maxBoardColumns]
	}
	return cols
}

// terminalWidth returns the current terminal width, falling back to a default.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

func renderColorBoard(cols []boardColumn) string {
	tw := terminalWidth()
	gaps := len(cols) - 1
	colWidth := (tw - gaps) / len(cols)
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	contentWidth := colWidth - 4
	if contentWidth < 5 {
		contentWidth = 5
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		rendered = append(rendered, renderColorColumn(col, colWidth, contentWidth))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColorColumn(col boardColumn, colWidth, contentWidth int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Width(colWidth).
		Align(lipgloss.Center)

	header := headerStyle.Render(fmt.Sprintf("%s (%d)", truncate(col.title, contentWidth), len(col.games)))

	visible := col.games
	overflow := 0
	if len(visible) > maxCardsPerColumn {
		visible = visible[:maxCardsPerColumn]
		overflow = len(col.games) - maxCardsPerColumn
	}

	cards := make([]string, 0, len(visible)+2)
	cards = append(cards, header)

	for _, g := range visible {
		cards = append(cards, renderColorCard(g, colWidth, contentWidth))
	}

	if overflow > 0 {
		moreStyle := lipgloss.NewStyle().
			Width(colWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("8"))
		cards = append(cards, moreStyle.Render(fmt.Sprintf("+%d more", overflow)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderColorCard(g *model.Game, colWidth, contentWidth int) string {
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle := lipgloss.NewStyle().Foreground(ColorFromName(g.Source.Color()))

	line1 := fmt.Sprintf("%s %s", idStyle.Render(fmt.Sprintf("%d", g.ID)), sourceStyle.Render(g.Source.String()))
	line2 := truncate(displayName(g), contentWidth)

	cardStyle := lipgloss.NewStyle().
		Width(colWidth - 2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8"))

	return cardStyle.Render(line1 + "\n" + line2)
}

// --- Plain text fallback ---

func renderPlainBoard(cols []boardColumn) string {
	var b strings.Builder

	for i, col := range cols {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "=== %s (%d) ===\n", col.title, len(col.games))

		visible := col.games
		overflow := 0
		if len(visible) > maxCardsPerColumn {
			visible = visible[:maxCardsPerColumn]
			overflow = len(col.games) - maxCardsPerColumn
		}

		for _, g := range visible {
			fmt.Fprintf(&b, "  %d  %s (%s)\n", g.ID, truncate(displayName(g), maxNameWidth), g.Source)
		}
		if overflow > 0 {
			fmt.Fprintf(&b, "  +%d more\n", overflow)
		}
	}

	return b.String()
}

// sortGamesByName orders games alphabetically with unknown titles last.
func sortGamesByName(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		a, b := games[i].Name, games[j].Name
		if (a == "") != (b == "") {
			return b == ""
		}
		if a != b {
			return strings.ToLower(a) < strings.ToLower(b)
		}
		return games[i].ID < games[j].ID
	})
}
