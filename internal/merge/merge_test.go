package merge

import (
	"strings"
	"testing"

	"github.com/shelfapp/shelf/internal/model"
)

func remoteList() []Entry {
	return []Entry{
		{ID: 440, Name: "Team Fortress 2"},
		{ID: 620, Name: "Portal 2"},
		{ID: 730, Name: "Counter-Strike 2"},
	}
}

func TestIntegrateAddsNewGames(t *testing.T) {
	gl := model.NewGameList()

	fetched, added := Integrate(gl, remoteList(), false, nil)
	if fetched != 3 || added != 3 {
		t.Fatalf("fetched, added = %d, %d, want 3, 3", fetched, added)
	}

	g := gl.Games[440]
	if g == nil || g.Name != "Team Fortress 2" {
		t.Fatalf("game 440 = %+v", g)
	}
	if g.Source != model.SourceWebProfile {
		t.Errorf("new games must be tagged web-profile, got %v", g.Source)
	}
}

func TestIntegrateIgnorePrecedence(t *testing.T) {
	for _, overwrite := range []bool{false, true} {
		gl := model.NewGameList()
		ignore := model.NewIgnoreSet(730)

		fetched, added := Integrate(gl, remoteList(), overwrite, ignore)
		if _, ok := gl.Games[730]; ok {
			t.Errorf("overwrite=%v: ignored game 730 must never be created", overwrite)
		}
		if fetched != 2 || added != 2 {
			t.Errorf("overwrite=%v: fetched, added = %d, %d, want 2, 2 (ignored entries do not count)", overwrite, fetched, added)
		}
	}
}

func TestIntegrateIgnoredExistingGameUntouched(t *testing.T) {
	gl := model.NewGameList()
	g := model.NewGame(730, "Old Name")
	g.Source = model.SourceManual
	gl.AddGame(g)

	Integrate(gl, remoteList(), true, model.NewIgnoreSet(730))
	if g.Name != "Old Name" {
		t.Errorf("ignored game must not be updated even with overwrite, got %q", g.Name)
	}
}

func TestIntegrateIdempotent(t *testing.T) {
	gl := model.NewGameList()

	Integrate(gl, remoteList(), false, nil)
	gl.Games[440].Name = "Edited Locally"

	fetched, added := Integrate(gl, remoteList(), false, nil)
	if added != 0 {
		t.Errorf("second pass added = %d, want 0", added)
	}
	if fetched != 3 {
		t.Errorf("second pass fetched = %d, want 3", fetched)
	}
	if gl.Games[440].Name != "Edited Locally" {
		t.Errorf("overwrite=false must keep local name, got %q", gl.Games[440].Name)
	}
}

func TestIntegrateOverwriteReplacesNames(t *testing.T) {
	gl := model.NewGameList()
	Integrate(gl, remoteList(), false, nil)
	gl.Games[440].Name = "Edited Locally"

	Integrate(gl, remoteList(), true, nil)
	if gl.Games[440].Name != "Team Fortress 2" {
		t.Errorf("overwrite=true must replace local name, got %q", gl.Games[440].Name)
	}
}

func TestIntegrateFillsEmptyLocalName(t *testing.T) {
	gl := model.NewGameList()
	gl.AddGame(model.NewGame(440, ""))

	Integrate(gl, remoteList(), false, nil)
	if gl.Games[440].Name != "Team Fortress 2" {
		t.Errorf("empty local name must be filled without overwrite, got %q", gl.Games[440].Name)
	}
}

func TestIntegratePreservesUserEdits(t *testing.T) {
	gl := model.NewGameList()
	g := model.NewGame(440, "TF2")
	g.Hidden = true
	g.Executable = "tf2.sh"
	g.AddCategory(gl.GetCategory("Shooter"))
	gl.AddGame(g)

	Integrate(gl, remoteList(), true, nil)

	if !g.Hidden || g.Executable != "tf2.sh" || len(g.Categories) != 1 {
		t.Errorf("merge must not touch hidden/executable/categories: %+v", g)
	}
}

func TestIntegrateNeverRemoves(t *testing.T) {
	gl := model.NewGameList()
	gl.AddGame(model.NewGame(999, "Local Only"))

	Integrate(gl, remoteList(), true, nil)
	if _, ok := gl.Games[999]; !ok {
		t.Error("games absent from the remote list must survive the merge")
	}
}

func TestEntriesFromXML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<gamesList>
  <steamID64>76561197960287930</steamID64>
  <games>
    <game><appID>440</appID><name>Team Fortress 2</name></game>
    <game><appID>620</appID><name> Portal 2 </name></game>
    <game><appID>440</appID><name>Duplicate</name></game>
    <game><name>no id</name></game>
    <game><appID>junk</appID></game>
  </games>
</gamesList>`

	entries, err := EntriesFromXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Entry{{440, "Team Fortress 2"}, {620, "Portal 2"}}
	if len(entries) != len(want) {
		t.Fatalf("entries = %+v, want %+v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestEntriesFromXMLErrors(t *testing.T) {
	if _, err := EntriesFromXML(strings.NewReader("<gamesList><unclosed>")); err == nil {
		t.Error("expected error for malformed XML")
	}
	if _, err := EntriesFromXML(strings.NewReader("<html></html>")); err == nil {
		t.Error("expected error for missing gamesList root")
	}
}

func TestEntriesFromXMLEmptyGames(t *testing.T) {
	entries, err := EntriesFromXML(strings.NewReader("<gamesList></gamesList>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}

func TestEntriesFromHTML(t *testing.T) {
	page := `<html><body>
<div id="games_list_rows">
  <div class="gameListRow" id="game_440">
    <div class="gameListRowItemName">Team Fortress 2</div>
  </div>
  <div class="gameListRow" id="game_620">
    <div class="gameListRowItemName">
      Portal 2
    </div>
  </div>
  <div class="gameListRow" id="game_440">
    <div class="gameListRowItemName">Duplicate</div>
  </div>
  <div class="gameListRow" id="not_a_game">
    <div class="gameListRowItemName">Bogus</div>
  </div>
</div>
</body></html>`

	entries, err := EntriesFromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Entry{{440, "Team Fortress 2"}, {620, "Portal 2"}}
	if len(entries) != len(want) {
		t.Fatalf("entries = %+v, want %+v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
