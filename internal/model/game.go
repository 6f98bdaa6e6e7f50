package model

import "fmt"

// ListingSource records where a game entry came from. The ordering
// matters: sources below SourceManual are store-catalog listings and
// are subject to the profile ignore list; SourceManual and above are
// user-created entries that bypass it.
type ListingSource int

const (
	SourceUnknown ListingSource = iota
	SourcePackageNormal
	SourcePackageFree
	SourceWebProfile
	SourceSteamConfig
	SourceManual
	SourceShortcut
)

var sourceNames = map[ListingSource]string{
	SourceUnknown:       "Unknown",
	SourcePackageNormal: "PackageNormal",
	SourcePackageFree:   "PackageFree",
	SourceWebProfile:    "WebProfile",
	SourceSteamConfig:   "SteamConfig",
	SourceManual:        "Manual",
	SourceShortcut:      "Shortcut",
}

// String returns the stable name used in the persisted document.
func (s ListingSource) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseListingSource maps a persisted source name back to its value.
// Unrecognized names yield SourceUnknown with an error so callers can
// choose between defaulting and reporting.
func ParseListingSource(name string) (ListingSource, error) {
	for src, n := range sourceNames {
		if n == name {
			return src, nil
		}
	}
	return SourceUnknown, fmt.Errorf("unknown listing source %q", name)
}

// IgnoreEligible reports whether an entry from this source honors the
// profile ignore list on import and load.
func (s ListingSource) IgnoreEligible() bool {
	return s < SourceManual
}

// Color returns the display color name for this source.
func (s ListingSource) Color() string {
	switch s {
	case SourcePackageNormal, SourcePackageFree:
		return "green"
	case SourceWebProfile:
		return "blue"
	case SourceSteamConfig:
		return "white"
	case SourceManual:
		return "yellow"
	case SourceShortcut:
		return "magenta"
	default:
		return "gray"
	}
}

// Game represents one owned title tracked by a profile. Shortcut
// entries carry negative IDs; store titles are always positive.
type Game struct {
	ID         int
	Name       string // empty for unknown titles
	Source     ListingSource
	Hidden     bool
	LastPlayed int64  // unix timestamp, 0 = never
	Executable string // launch override, empty = default

	Categories []*Category
}

// NewGame creates a game with the given identity and no categories.
func NewGame(id int, name string) *Game {
	return &Game{ID: id, Name: name}
}

// IsShortcut reports whether the game is a non-store shortcut entry.
func (g *Game) IsShortcut() bool {
	return g.ID <= 0
}

// HasCategory reports whether the game references the given category.
// Categories are interned per collection, so pointer comparison is
// sufficient.
func (g *Game) HasCategory(c *Category) bool {
	for _, cat := range g.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// AddCategory attaches a category reference, ignoring duplicates and nil.
func (g *Game) AddCategory(c *Category) {
	if c == nil || g.HasCategory(c) {
		return
	}
	g.Categories = append(g.Categories, c)
}

// RemoveCategory detaches a category reference if present.
func (g *Game) RemoveCategory(c *Category) {
	for i, cat := range g.Categories {
		if cat == c {
			g.Categories = append(g.Categories[:i], g.Categories[i+1:]...)
			return
		}
	}
}

// IsFavorite reports whether the game carries the favorite category.
func (g *Game) IsFavorite() bool {
	for _, cat := range g.Categories {
		if cat.Name == FavoriteNewConfigValue || cat.Name == FavoriteConfigValue {
			return true
		}
	}
	return false
}
