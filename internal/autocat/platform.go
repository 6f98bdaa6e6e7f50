package autocat

import "github.com/beevik/etree"

// TypePlatform is the element tag for platform rules.
const TypePlatform = "AutoCatPlatform"

// Platform assigns categories from a game's supported platforms.
type Platform struct {
	Base

	Windows bool
	Mac     bool
	Linux   bool
	SteamOS bool
}

func init() {
	register(TypePlatform, loadPlatform)
}

func (*Platform) Type() string { return TypePlatform }

// Clone implements AutoCat.
func (a *Platform) Clone() AutoCat {
	c := *a
	return &c
}

func (a *Platform) encodeParams(e *etree.Element) {
	encodeBool(e, "Windows", a.Windows)
	encodeBool(e, "Mac", a.Mac)
	encodeBool(e, "Linux", a.Linux)
	encodeBool(e, "SteamOS", a.SteamOS)
}

func loadPlatform(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	return &Platform{
		Base:    b,
		Windows: childBool(e, "Windows", true),
		Mac:     childBool(e, "Mac", true),
		Linux:   childBool(e, "Linux", true),
		SteamOS: childBool(e, "SteamOS", true),
	}, nil
}
