package model

import (
	"sort"
	"strings"
)

// GameList owns every game tracked by a profile, plus the shared
// category pool and the saved filter definitions. Categories are
// deduplicated by case-insensitive name and shared by reference
// across games.
type GameList struct {
	Games      map[int]*Game
	Categories []*Category
	Filters    []*Filter

	catIndex map[string]*Category // lowercased name -> interned instance
}

// NewGameList creates an empty game list.
func NewGameList() *GameList {
	return &GameList{
		Games:    make(map[int]*Game),
		catIndex: make(map[string]*Category),
	}
}

// GetCategory returns the interned category for name, creating it on
// first use. Empty names yield nil.
func (gl *GameList) GetCategory(name string) *Category {
	if name == "" {
		return nil
	}
	key := strings.ToLower(name)
	if c, ok := gl.catIndex[key]; ok {
		return c
	}
	c := &Category{Name: name}
	gl.catIndex[key] = c
	gl.Categories = append(gl.Categories, c)
	return c
}

// HasCategory reports whether a category with the given name exists,
// without creating it.
func (gl *GameList) HasCategory(name string) bool {
	_, ok := gl.catIndex[strings.ToLower(name)]
	return ok
}

// FavoriteCategory returns the interned favorite sentinel category.
func (gl *GameList) FavoriteCategory() *Category {
	return gl.GetCategory(FavoriteNewConfigValue)
}

// AddGame inserts a game keyed by its ID, replacing any previous entry.
func (gl *GameList) AddGame(g *Game) {
	gl.Games[g.ID] = g
}

// SortedIDs returns every game ID in ascending order, for
// deterministic iteration when rendering or persisting.
func (gl *GameList) SortedIDs() []int {
	ids := make([]int, 0, len(gl.Games))
	for id := range gl.Games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// AddFilter creates and registers an empty named filter. If a filter
// with the same name already exists (case-insensitive) it is returned
// instead of creating a duplicate.
func (gl *GameList) AddFilter(name string) *Filter {
	if f := gl.GetFilter(name); f != nil {
		return f
	}
	f := NewFilter(name)
	gl.Filters = append(gl.Filters, f)
	return f
}

// GetFilter returns the named filter, or nil when absent.
func (gl *GameList) GetFilter(name string) *Filter {
	for _, f := range gl.Filters {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}
