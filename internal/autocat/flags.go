package autocat

import "github.com/beevik/etree"

// TypeFlags is the element tag for store-flag rules.
const TypeFlags = "AutoCatFlags"

// Flags assigns categories from a game's store feature flags
// (single-player, co-op, controller support and so on).
type Flags struct {
	Base

	IncludedFlags []string
}

func init() {
	register(TypeFlags, loadFlags)
}

func (*Flags) Type() string { return TypeFlags }

// Clone implements AutoCat.
func (a *Flags) Clone() AutoCat {
	c := *a
	c.IncludedFlags = append([]string(nil), a.IncludedFlags...)
	return &c
}

func (a *Flags) encodeParams(e *etree.Element) {
	encodeList(e, "Flags", "Flag", a.IncludedFlags)
}

func loadFlags(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	return &Flags{
		Base:          b,
		IncludedFlags: childList(e, "Flags", "Flag"),
	}, nil
}
