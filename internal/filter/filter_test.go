package filter

import (
	"testing"

	"github.com/shelfapp/shelf/internal/model"
)

func TestMatchRule(t *testing.T) {
	tests := []struct {
		rule int
		cond bool
		want bool
	}{
		{model.RuleIgnore, true, true},
		{model.RuleIgnore, false, true},
		{model.RuleRequire, true, true},
		{model.RuleRequire, false, false},
		{model.RuleExclude, true, false},
		{model.RuleExclude, false, true},
	}

	for _, tt := range tests {
		if got := matchRule(tt.rule, tt.cond); got != tt.want {
			t.Errorf("matchRule(%d, %v) = %v, want %v", tt.rule, tt.cond, got, tt.want)
		}
	}
}

func TestMatchesHiddenDimension(t *testing.T) {
	hidden := model.NewGame(1, "hidden")
	hidden.Hidden = true
	visible := model.NewGame(2, "visible")

	f := model.NewFilter("test")
	f.Hidden = model.RuleExclude

	if Matches(f, hidden) {
		t.Error("exclude-hidden must reject hidden games")
	}
	if !Matches(f, visible) {
		t.Error("exclude-hidden must accept visible games")
	}

	f.Hidden = model.RuleRequire
	if !Matches(f, hidden) || Matches(f, visible) {
		t.Error("require-hidden must accept only hidden games")
	}
}

func TestMatchesUncategorizedDimension(t *testing.T) {
	gl := model.NewGameList()
	bare := model.NewGame(1, "bare")
	tagged := model.NewGame(2, "tagged")
	tagged.AddCategory(gl.GetCategory("Action"))

	f := model.NewFilter("test")
	f.Uncategorized = model.RuleRequire

	if !Matches(f, bare) || Matches(f, tagged) {
		t.Error("require-uncategorized must accept only games without categories")
	}
}

func TestMatchesCategorySets(t *testing.T) {
	gl := model.NewGameList()
	action := gl.GetCategory("Action")
	puzzle := gl.GetCategory("Puzzle")
	junk := gl.GetCategory("Junk")

	g := model.NewGame(1, "game")
	g.AddCategory(action)
	g.AddCategory(puzzle)

	f := model.NewFilter("test")
	f.Require = []*model.Category{action, puzzle}
	if !Matches(f, g) {
		t.Error("game with every required category must pass")
	}

	f.Require = []*model.Category{action, junk}
	if Matches(f, g) {
		t.Error("game missing a required category must fail")
	}

	f = model.NewFilter("test")
	f.Exclude = []*model.Category{junk}
	if !Matches(f, g) {
		t.Error("game without excluded categories must pass")
	}
	f.Exclude = []*model.Category{puzzle}
	if Matches(f, g) {
		t.Error("game carrying an excluded category must fail")
	}
}

func TestMatchesAllowSet(t *testing.T) {
	gl := model.NewGameList()
	action := gl.GetCategory("Action")
	puzzle := gl.GetCategory("Puzzle")

	g := model.NewGame(1, "game")
	g.AddCategory(action)

	f := model.NewFilter("test")
	f.Allow = []*model.Category{puzzle}
	if Matches(f, g) {
		t.Error("categorized game outside the allow set must fail")
	}

	f.Allow = []*model.Category{action, puzzle}
	if !Matches(f, g) {
		t.Error("game in the allow set must pass")
	}

	// Uncategorized games pass an allow-set filter.
	bare := model.NewGame(2, "bare")
	if !Matches(f, bare) {
		t.Error("uncategorized game must pass an allow-set filter")
	}
}

func TestApplySortsAndFilters(t *testing.T) {
	gl := model.NewGameList()
	action := gl.GetCategory("Action")

	for _, id := range []int{500, 70, 440} {
		g := model.NewGame(id, "game")
		g.AddCategory(action)
		gl.AddGame(g)
	}
	hidden := model.NewGame(90, "hidden")
	hidden.Hidden = true
	hidden.AddCategory(action)
	gl.AddGame(hidden)

	f := model.NewFilter("test")
	f.Hidden = model.RuleExclude

	got := Apply(f, gl)
	want := []int{70, 440, 500}
	if len(got) != len(want) {
		t.Fatalf("got %d games, want %d", len(got), len(want))
	}
	for i, g := range got {
		if g.ID != want[i] {
			t.Errorf("result %d = %d, want %d", i, g.ID, want[i])
		}
	}
}
