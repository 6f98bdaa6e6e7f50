package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shelfapp/shelf/internal/model"
)

func strPtr(s string) *string { return &s }

func makeTestGame(id int, name string, source model.ListingSource) *model.Game {
	g := model.NewGame(id, name)
	g.Source = source
	return g
}

func TestRenderGamesTableEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderGamesTable(nil)
	if !strings.Contains(got, "No games in profile.") {
		t.Errorf("expected empty state message, got:\n%s", got)
	}
	if !strings.Contains(got, "shelf refresh") {
		t.Errorf("expected hint in empty state, got:\n%s", got)
	}
}

func TestRenderPlainGamesTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	gl := model.NewGameList()
	a := makeTestGame(440, "Team Fortress 2", model.SourceWebProfile)
	a.AddCategory(gl.GetCategory("Shooter"))
	a.LastPlayed = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	b := makeTestGame(620, "Portal 2", model.SourceManual)
	b.Hidden = true

	got := RenderGamesTable([]*model.Game{b, a})

	for _, want := range []string{"440", "Team Fortress 2", "620", "Portal 2", "Shooter", "WebProfile", "Manual"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got:\n%s", want, got)
		}
	}

	// Sorted by ID: 440 before 620.
	if strings.Index(got, "Team Fortress 2") > strings.Index(got, "Portal 2") {
		t.Errorf("expected games sorted by ID, got:\n%s", got)
	}

	// Never-played games show "never".
	if !strings.Contains(got, "never") {
		t.Errorf("expected 'never' for unplayed game, got:\n%s", got)
	}
}

func TestRenderGamesTableUnknownName(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderGamesTable([]*model.Game{makeTestGame(10, "", model.SourceUnknown)})
	if !strings.Contains(got, "(unknown)") {
		t.Errorf("expected placeholder for unnamed game, got:\n%s", got)
	}
}

func TestRenderGamesTableColorPathExecutes(t *testing.T) {
	got := RenderGamesTable([]*model.Game{makeTestGame(440, "Team Fortress 2", model.SourceWebProfile)})
	if got == "" {
		t.Error("expected non-empty output from color table")
	}
}

func TestRenderAccountsTableEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := RenderAccountsTable(nil)
	if !strings.Contains(got, "No local accounts found.") {
		t.Errorf("expected empty state message, got:\n%s", got)
	}
}

func TestRenderPlainAccountsTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	rows := []AccountRow{
		{Dir: "12345", ID64: 76561197960265728 + 12345, Name: strPtr("alice")},
		{Dir: "67890", ID64: 76561197960265728 + 67890},
	}

	got := RenderAccountsTable(rows)

	if !strings.Contains(got, "alice") {
		t.Errorf("expected resolved name in output, got:\n%s", got)
	}
	if !strings.Contains(got, "(unresolved)") {
		t.Errorf("expected placeholder for unresolved account, got:\n%s", got)
	}
	if !strings.Contains(got, "12345") || !strings.Contains(got, "67890") {
		t.Errorf("expected both directory names, got:\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a very long game title here", 10, "a very ..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestEmptyStateQuietSuppressesHint(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := EmptyState("Nothing here.", "Try something.", true)
	if strings.Contains(got, "Try something.") {
		t.Errorf("expected hint suppressed in quiet mode, got %q", got)
	}
}
