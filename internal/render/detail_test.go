package render

import (
	"strings"
	"testing"

	"github.com/shelfapp/shelf/internal/autocat"
	"github.com/shelfapp/shelf/internal/model"
)

func detailProfile() *model.Profile {
	p := model.NewProfile()
	p.AccountID64 = 76561197960305707
	p.FilePath = "/tmp/profile.xml"

	g := model.NewGame(440, "Team Fortress 2")
	g.AddCategory(p.GameData.GetCategory("Shooter"))
	p.GameData.AddGame(g)

	shortcut := model.NewGame(-1, "Local Tool")
	shortcut.Hidden = true
	p.GameData.AddGame(shortcut)

	p.IgnoreGame(730)

	f := p.GameData.AddFilter("Backlog")
	f.Exclude = []*model.Category{p.GameData.GetCategory("Done")}

	p.AutoCats = []autocat.AutoCat{
		&autocat.Genre{Base: autocat.Base{Name: "Genre", Filter: "Backlog"}},
	}
	return p
}

func TestRenderPlainProfileDetail(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderProfileDetail(detailProfile())

	for _, want := range []string{
		"Profile 76561197960305707",
		"/tmp/profile.xml",
		"Games: 1",
		"Shortcuts: 1",
		"Hidden: 1",
		"Ignored: 1",
		"Shooter (1)",
		"Backlog (allow 0, require 0, exclude 1)",
		"Genre AutoCatGenre [filter: Backlog]",
		"include-shortcuts on",
		"overwrite-names off",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got:\n%s", want, got)
		}
	}
}

func TestRenderProfileDetailColorPathExecutes(t *testing.T) {
	if got := RenderProfileDetail(detailProfile()); got == "" {
		t.Error("expected non-empty output from color detail view")
	}
}

func TestRenderPlainProfileDetailEmptySections(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	p := model.NewProfile()
	got := RenderProfileDetail(p)

	for _, absent := range []string{"Filters", "AutoCat rules"} {
		if strings.Contains(got, absent) {
			t.Errorf("section %q must be omitted for an empty profile, got:\n%s", absent, got)
		}
	}
}
