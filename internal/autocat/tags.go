package autocat

import "github.com/beevik/etree"

// TypeTags is the element tag for store-tag rules.
const TypeTags = "AutoCatTags"

// Tags assigns categories from a game's community store tags.
type Tags struct {
	Base

	MaxTags      int // 0 = unlimited
	IncludedTags []string
}

func init() {
	register(TypeTags, loadTags)
}

func (*Tags) Type() string { return TypeTags }

// Clone implements AutoCat.
func (a *Tags) Clone() AutoCat {
	c := *a
	c.IncludedTags = append([]string(nil), a.IncludedTags...)
	return &c
}

func (a *Tags) encodeParams(e *etree.Element) {
	encodeInt(e, "MaxTags", a.MaxTags)
	encodeList(e, "Tags", "Tag", a.IncludedTags)
}

func loadTags(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	return &Tags{
		Base:         b,
		MaxTags:      childInt(e, "MaxTags", 0),
		IncludedTags: childList(e, "Tags", "Tag"),
	}, nil
}
