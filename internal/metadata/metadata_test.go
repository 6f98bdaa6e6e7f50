package metadata

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "metadata.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Initialize(db); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}
	return db
}

func TestInitializeIsIdempotent(t *testing.T) {
	db := testDB(t)
	if err := Initialize(db); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
}

func TestTopTagsOrdersByAggregateScore(t *testing.T) {
	db := testDB(t)

	apps := []struct {
		id    int
		name  string
		tags  map[string]float64
		flags []string
	}{
		{440, "Team Fortress 2", map[string]float64{"Shooter": 10, "Co-op": 3}, []string{"Multi-player"}},
		{620, "Portal 2", map[string]float64{"Puzzle": 8, "Co-op": 9}, []string{"Single-player", "Multi-player"}},
	}
	for _, a := range apps {
		if err := db.InsertApp(a.id, a.name, "", a.tags, a.flags); err != nil {
			t.Fatalf("inserting app %d: %v", a.id, err)
		}
	}

	tags, err := db.TopTags(2)
	if err != nil {
		t.Fatalf("querying tags: %v", err)
	}
	// Co-op aggregates to 12, Shooter to 10, Puzzle to 8.
	want := []string{"Co-op", "Shooter"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestStoreFlagsDistinctSorted(t *testing.T) {
	db := testDB(t)

	if err := db.InsertApp(440, "Team Fortress 2", "", nil, []string{"Multi-player", "Co-op"}); err != nil {
		t.Fatalf("inserting app: %v", err)
	}
	if err := db.InsertApp(620, "Portal 2", "", nil, []string{"Co-op"}); err != nil {
		t.Fatalf("inserting app: %v", err)
	}

	flags, err := db.StoreFlags()
	if err != nil {
		t.Fatalf("querying flags: %v", err)
	}
	want := []string{"Co-op", "Multi-player"}
	if len(flags) != len(want) {
		t.Fatalf("flags = %v, want %v", flags, want)
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("flag %d = %q, want %q", i, flags[i], want[i])
		}
	}
}

func TestInsertAppTwiceDoesNotError(t *testing.T) {
	db := testDB(t)

	if err := db.InsertApp(440, "Old Name", "", map[string]float64{"Shooter": 1}, []string{"Co-op"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := db.InsertApp(440, "Team Fortress 2", "Action", map[string]float64{"Shooter": 5}, []string{"Co-op"}); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	tags, err := db.TopTags(10)
	if err != nil {
		t.Fatalf("querying tags: %v", err)
	}
	if len(tags) != 1 || tags[0] != "Shooter" {
		t.Errorf("tags = %v, want just Shooter", tags)
	}
}

func TestEmptyDatabaseQueries(t *testing.T) {
	db := testDB(t)

	tags, err := db.TopTags(10)
	if err != nil {
		t.Fatalf("querying tags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("tags = %v, want none", tags)
	}

	flags, err := db.StoreFlags()
	if err != nil {
		t.Fatalf("querying flags: %v", err)
	}
	if len(flags) != 0 {
		t.Errorf("flags = %v, want none", flags)
	}
}
