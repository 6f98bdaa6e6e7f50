package autocat

import "github.com/beevik/etree"

// TypeYear is the element tag for release-year rules.
const TypeYear = "AutoCatYear"

// Year assigns a category from a game's release year.
type Year struct {
	Base

	IncludeUnknown bool
	UnknownText    string
}

func init() {
	register(TypeYear, loadYear)
}

func (*Year) Type() string { return TypeYear }

// Clone implements AutoCat.
func (a *Year) Clone() AutoCat {
	c := *a
	return &c
}

func (a *Year) encodeParams(e *etree.Element) {
	encodeBool(e, "IncludeUnknown", a.IncludeUnknown)
	e.CreateElement("UnknownText").SetText(a.UnknownText)
}

func loadYear(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	return &Year{
		Base:           b,
		IncludeUnknown: childBool(e, "IncludeUnknown", true),
		UnknownText:    childText(e, "UnknownText"),
	}, nil
}
