// Package filter applies saved filter definitions to a game list.
package filter

import "github.com/shelfapp/shelf/internal/model"

// matchRule evaluates a tri-state dimension rule against a condition.
func matchRule(rule int, cond bool) bool {
	switch rule {
	case model.RuleRequire:
		return cond
	case model.RuleExclude:
		return !cond
	default:
		return true
	}
}

// Matches reports whether a game passes the filter. Dimension rules
// apply first: Hidden matches the hidden flag, Uncategorized matches
// games with no categories. The Game, Software, and VR dimensions
// depend on catalog data the profile does not carry and are treated as
// ignore. Category sets then apply: the game must reference every
// Require category, reference none of the Exclude categories, and,
// when Allow is non-empty, reference at least one Allow category or be
// uncategorized.
func Matches(f *model.Filter, g *model.Game) bool {
	if !matchRule(f.Hidden, g.Hidden) {
		return false
	}
	if !matchRule(f.Uncategorized, len(g.Categories) == 0) {
		return false
	}

	for _, c := range f.Require {
		if !g.HasCategory(c) {
			return false
		}
	}
	for _, c := range f.Exclude {
		if g.HasCategory(c) {
			return false
		}
	}

	if len(f.Allow) > 0 && len(g.Categories) > 0 {
		allowed := false
		for _, c := range f.Allow {
			if g.HasCategory(c) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return true
}

// Apply returns the games from gl that pass the filter, in ascending
// ID order.
func Apply(f *model.Filter, gl *model.GameList) []*model.Game {
	var out []*model.Game
	for _, id := range gl.SortedIDs() {
		g := gl.Games[id]
		if Matches(f, g) {
			out = append(out, g)
		}
	}
	return out
}
