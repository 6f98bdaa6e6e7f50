package render

import (
	"fmt"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/shelfapp/shelf/internal/model"
)

const maxListedCategories = 15

// RenderProfileDetail renders a full profile summary: identity,
// behavior flags, library stats, top categories, filters, and the
// category-generation rules.
func RenderProfileDetail(p *model.Profile) string {
	if !ColorsEnabled() {
		return renderPlainProfileDetail(p)
	}

	var sections []string

	sections = append(sections, renderProfileHeader(p))
	sections = append(sections, renderProfileFlags(p))
	sections = append(sections, renderLibraryStats(p))

	if len(p.GameData.Categories) > 0 {
		sections = append(sections, renderCategories(p))
	}
	if len(p.GameData.Filters) > 0 {
		sections = append(sections, renderFilters(p))
	}
	if len(p.AutoCats) > 0 {
		sections = append(sections, renderAutoCats(p))
	}

	return strings.Join(sections, "\n\n")
}

func renderProfileHeader(p *model.Profile) string {
	idStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return fmt.Sprintf("%s %s\n%s",
		idStyle.Render("Profile"),
		idStyle.Render(fmt.Sprintf("%d", p.AccountID64)),
		pathStyle.Render(p.FilePath),
	)
}

func flagLabel(name string, on bool) string {
	mark := "off"
	color := "gray"
	if on {
		mark = "on"
		color = "green"
	}
	style := lipgloss.NewStyle().Foreground(ColorFromName(color))
	return fmt.Sprintf("%s %s", name, style.Render(mark))
}

func profileFlags(p *model.Profile) []struct {
	Name string
	On   bool
} {
	return []struct {
		Name string
		On   bool
	}{
		{"auto-update", p.AutoUpdate},
		{"auto-import", p.AutoImport},
		{"auto-export", p.AutoExport},
		{"local-update", p.LocalUpdate},
		{"web-update", p.WebUpdate},
		{"export-discard", p.ExportDiscard},
		{"auto-ignore", p.AutoIgnore},
		{"include-unknown", p.IncludeUnknown},
		{"bypass-ignore-on-import", p.BypassIgnoreOnImport},
		{"overwrite-names", p.OverwriteOnDownload},
		{"include-shortcuts", p.IncludeShortcuts},
	}
}

func renderProfileFlags(p *model.Profile) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	var lines []string
	for _, f := range profileFlags(p) {
		lines = append(lines, "  "+flagLabel(f.Name, f.On))
	}
	return sectionStyle.Render("Behavior") + "\n" + strings.Join(lines, "\n")
}

func libraryCounts(p *model.Profile) (games, shortcuts, hidden int) {
	for _, g := range p.GameData.Games {
		if g.IsShortcut() {
			shortcuts++
		} else {
			games++
		}
		if g.Hidden {
			hidden++
		}
	}
	return games, shortcuts, hidden
}

func renderLibraryStats(p *model.Profile) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valStyle := lipgloss.NewStyle().Bold(true)

	games, shortcuts, hidden := libraryCounts(p)

	lines := []string{
		fmt.Sprintf("  %s %s", keyStyle.Render("Games:"), valStyle.Render(humanize.Comma(int64(games)))),
		fmt.Sprintf("  %s %s", keyStyle.Render("Shortcuts:"), valStyle.Render(humanize.Comma(int64(shortcuts)))),
		fmt.Sprintf("  %s %s", keyStyle.Render("Hidden:"), valStyle.Render(humanize.Comma(int64(hidden)))),
		fmt.Sprintf("  %s %s", keyStyle.Render("Categories:"), valStyle.Render(humanize.Comma(int64(len(p.GameData.Categories))))),
		fmt.Sprintf("  %s %s", keyStyle.Render("Ignored:"), valStyle.Render(humanize.Comma(int64(len(p.IgnoreList))))),
	}

	return sectionStyle.Render("Library") + "\n" + strings.Join(lines, "\n")
}

// categoryCounts returns category names with the number of games
// carrying each, largest first then alphabetical.
func categoryCounts(gl *model.GameList) []struct {
	Name  string
	Count int
} {
	counts := make(map[*model.Category]int, len(gl.Categories))
	for _, g := range gl.Games {
		for _, c := range g.Categories {
			counts[c]++
		}
	}

	out := make([]struct {
		Name  string
		Count int
	}, 0, len(gl.Categories))
	for _, c := range gl.Categories {
		out = append(out, struct {
			Name  string
			Count int
		}{c.Name, counts[c]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func renderCategories(p *model.Profile) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	counts := categoryCounts(p.GameData)
	overflow := 0
	if len(counts) > maxListedCategories {
		overflow = len(counts) - maxListedCategories
		counts = counts[:maxListedCategories]
	}

	t := tree.New().Root(sectionStyle.Render("Categories"))
	for _, c := range counts {
		t.Child(fmt.Sprintf("%s %s", c.Name, countStyle.Render(fmt.Sprintf("(%d)", c.Count))))
	}
	if overflow > 0 {
		t.Child(countStyle.Render(fmt.Sprintf("+%d more", overflow)))
	}
	return t.String()
}

func renderFilters(p *model.Profile) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var lines []string
	for _, f := range p.GameData.Filters {
		lines = append(lines, fmt.Sprintf("  %s %s", f.Name,
			dimStyle.Render(fmt.Sprintf("(allow %d, require %d, exclude %d)",
				len(f.Allow), len(f.Require), len(f.Exclude)))))
	}
	return sectionStyle.Render("Filters") + "\n" + strings.Join(lines, "\n")
}

func renderAutoCats(p *model.Profile) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	var lines []string
	for _, ac := range p.AutoCats {
		base := ac.GetBase()
		line := fmt.Sprintf("  %s %s", base.Name, typeStyle.Render(ac.Type()))
		if base.Filter != "" {
			line += fmt.Sprintf(" [filter: %s]", base.Filter)
		}
		lines = append(lines, line)
	}
	return sectionStyle.Render("AutoCat rules") + "\n" + strings.Join(lines, "\n")
}

// renderPlainProfileDetail renders the summary without color or styling.
func renderPlainProfileDetail(p *model.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Profile %d\n%s\n", p.AccountID64, p.FilePath)

	b.WriteString("\nBehavior\n")
	for _, f := range profileFlags(p) {
		mark := "off"
		if f.On {
			mark = "on"
		}
		fmt.Fprintf(&b, "  %s %s\n", f.Name, mark)
	}

	games, shortcuts, hidden := libraryCounts(p)
	b.WriteString("\nLibrary\n")
	fmt.Fprintf(&b, "  Games: %d\n", games)
	fmt.Fprintf(&b, "  Shortcuts: %d\n", shortcuts)
	fmt.Fprintf(&b, "  Hidden: %d\n", hidden)
	fmt.Fprintf(&b, "  Categories: %d\n", len(p.GameData.Categories))
	fmt.Fprintf(&b, "  Ignored: %d\n", len(p.IgnoreList))

	if len(p.GameData.Categories) > 0 {
		b.WriteString("\nCategories\n")
		counts := categoryCounts(p.GameData)
		overflow := 0
		if len(counts) > maxListedCategories {
			overflow = len(counts) - maxListedCategories
			counts = counts[:maxListedCategories]
		}
		for _, c := range counts {
			fmt.Fprintf(&b, "  %s (%d)\n", c.Name, c.Count)
		}
		if overflow > 0 {
			fmt.Fprintf(&b, "  +%d more\n", overflow)
		}
	}

	if len(p.GameData.Filters) > 0 {
		b.WriteString("\nFilters\n")
		for _, f := range p.GameData.Filters {
			fmt.Fprintf(&b, "  %s (allow %d, require %d, exclude %d)\n",
				f.Name, len(f.Allow), len(f.Require), len(f.Exclude))
		}
	}

	if len(p.AutoCats) > 0 {
		b.WriteString("\nAutoCat rules\n")
		for _, ac := range p.AutoCats {
			base := ac.GetBase()
			if base.Filter != "" {
				fmt.Fprintf(&b, "  %s %s [filter: %s]\n", base.Name, ac.Type(), base.Filter)
			} else {
				fmt.Fprintf(&b, "  %s %s\n", base.Name, ac.Type())
			}
		}
	}

	return b.String()
}
