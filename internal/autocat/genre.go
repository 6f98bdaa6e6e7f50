package autocat

import "github.com/beevik/etree"

// TypeGenre is the element tag for genre rules.
const TypeGenre = "AutoCatGenre"

// Genre assigns categories from a game's store genres.
type Genre struct {
	Base

	MaxCategories     int  // 0 = unlimited
	RemoveOtherGenres bool // strip previously assigned genre categories
	TagFallback       bool // fall back to store tags when no genre is known
	IgnoredGenres     []string
}

func init() {
	register(TypeGenre, loadGenre)
}

func (*Genre) Type() string { return TypeGenre }

// Clone implements AutoCat.
func (a *Genre) Clone() AutoCat {
	c := *a
	c.IgnoredGenres = append([]string(nil), a.IgnoredGenres...)
	return &c
}

func (a *Genre) encodeParams(e *etree.Element) {
	encodeInt(e, "MaxCategories", a.MaxCategories)
	encodeBool(e, "RemoveOthers", a.RemoveOtherGenres)
	encodeBool(e, "TagFallback", a.TagFallback)
	encodeList(e, "Ignored", "Ignore", a.IgnoredGenres)
}

func loadGenre(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	return &Genre{
		Base:              b,
		MaxCategories:     childInt(e, "MaxCategories", 0),
		RemoveOtherGenres: childBool(e, "RemoveOthers", false),
		TagFallback:       childBool(e, "TagFallback", true),
		IgnoredGenres:     childList(e, "Ignored", "Ignore"),
	}, nil
}
