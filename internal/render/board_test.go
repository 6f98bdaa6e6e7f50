package render

import (
	"strings"
	"testing"

	"github.com/shelfapp/shelf/internal/model"
)

func boardList() *model.GameList {
	gl := model.NewGameList()

	action := gl.GetCategory("Action")
	puzzle := gl.GetCategory("Puzzle")

	a := model.NewGame(440, "Team Fortress 2")
	a.Source = model.SourceWebProfile
	a.AddCategory(action)

	b := model.NewGame(620, "Portal 2")
	b.Source = model.SourceWebProfile
	b.AddCategory(action)
	b.AddCategory(puzzle)

	c := model.NewGame(70, "Half-Life")
	c.Source = model.SourceManual

	gl.AddGame(a)
	gl.AddGame(b)
	gl.AddGame(c)
	return gl
}

func TestRenderCategoryBoardEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderCategoryBoard(model.NewGameList())
	if !strings.Contains(got, "No games in profile.") {
		t.Errorf("expected empty state, got:\n%s", got)
	}
}

func TestRenderPlainBoardGroupsByCategory(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderCategoryBoard(boardList())

	if !strings.Contains(got, "=== Action (2) ===") {
		t.Errorf("expected Action column with 2 games, got:\n%s", got)
	}
	if !strings.Contains(got, "=== Puzzle (1) ===") {
		t.Errorf("expected Puzzle column with 1 game, got:\n%s", got)
	}
	if !strings.Contains(got, "=== Uncategorized (1) ===") {
		t.Errorf("expected Uncategorized column, got:\n%s", got)
	}
	if !strings.Contains(got, "Half-Life") {
		t.Errorf("expected uncategorized game listed, got:\n%s", got)
	}

	// Largest category first.
	if strings.Index(got, "=== Action") > strings.Index(got, "=== Puzzle") {
		t.Errorf("expected Action column before Puzzle, got:\n%s", got)
	}
}

func TestRenderCategoryBoardColumnCap(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	gl := model.NewGameList()
	for i := 0; i < maxBoardColumns+3; i++ {
		cat := gl.GetCategory(strings.Repeat("c", i+1))
		g := model.NewGame(i+1, "game")
		g.AddCategory(cat)
		gl.AddGame(g)
	}

	got := RenderCategoryBoard(gl)
	if n := strings.Count(got, "==="); n != maxBoardColumns*2 {
		t.Errorf("expected %d columns, got %d markers:\n%s", maxBoardColumns, n, got)
	}
}

func TestRenderCategoryBoardColorPathExecutes(t *testing.T) {
	got := RenderCategoryBoard(boardList())
	if got == "" {
		t.Error("expected non-empty output from color board")
	}
}

func TestSortGamesByNameUnknownLast(t *testing.T) {
	games := []*model.Game{
		model.NewGame(3, ""),
		model.NewGame(1, "Zed"),
		model.NewGame(2, "alpha"),
	}

	sortGamesByName(games)

	if games[0].Name != "alpha" || games[1].Name != "Zed" || games[2].Name != "" {
		t.Errorf("unexpected order: %v, %v, %v", games[0].Name, games[1].Name, games[2].Name)
	}
}
