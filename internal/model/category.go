package model

// Category label names with special meaning in the persisted format.
// The old config format stored favorites under "favorite"; newer data
// uses the sentinel "<Favorite>" internally, which is mapped back to
// "favorite" on save.
const (
	FavoriteConfigValue    = "favorite"
	FavoriteNewConfigValue = "<Favorite>"
)

// Category is a named label attachable to games. Categories are
// interned per GameList: equal names (case-insensitive) always yield
// the same shared instance, so identity comparison is safe.
type Category struct {
	Name string
}

func (c *Category) String() string {
	return c.Name
}
