package model

// Tri-state filter rule values. The persisted format stores these as
// bare integers.
const (
	RuleIgnore  = -1
	RuleExclude = 0
	RuleRequire = 1
)

// Filter is a named saved view over a game list: four tri-state
// dimension rules plus category allow/require/exclude sets.
type Filter struct {
	Name string

	Game          int
	Hidden        int
	Software      int
	Uncategorized int
	VR            int

	Allow   []*Category
	Require []*Category
	Exclude []*Category
}

// NewFilter creates a filter with every dimension rule set to ignore.
func NewFilter(name string) *Filter {
	return &Filter{
		Name:          name,
		Game:          RuleIgnore,
		Hidden:        RuleIgnore,
		Software:      RuleIgnore,
		Uncategorized: RuleIgnore,
		VR:            RuleIgnore,
	}
}
