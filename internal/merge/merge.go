// Package merge folds a remotely fetched title list into a local game
// list without disturbing user edits. Both remote document shapes
// normalize to (id, name) entries before merging, so the merge itself
// is shape-agnostic.
package merge

import "github.com/shelfapp/shelf/internal/model"

// Entry is one normalized remote listing.
type Entry struct {
	ID   int
	Name string
}

// Integrate merges remote entries into gl. Entries whose ID is in
// ignore are skipped outright and never created or updated. Existing
// games keep their categories, hidden flag, and executable; their name
// is replaced only when overwrite is true or the local name is empty.
// New games are created with web-profile provenance.
//
// fetched counts entries processed into the local set (ignored entries
// do not count); added counts newly created games.
func Integrate(gl *model.GameList, entries []Entry, overwrite bool, ignore model.IgnoreSet) (fetched, added int) {
	for _, entry := range entries {
		if ignore != nil && ignore.Contains(entry.ID) {
			continue
		}

		if g, ok := gl.Games[entry.ID]; ok {
			if overwrite || g.Name == "" {
				g.Name = entry.Name
			}
		} else {
			g := model.NewGame(entry.ID, entry.Name)
			g.Source = model.SourceWebProfile
			gl.AddGame(g)
			added++
		}
		fetched++
	}
	return fetched, added
}
