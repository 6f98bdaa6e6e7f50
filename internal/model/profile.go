package model

import (
	"strconv"
	"strings"

	"github.com/shelfapp/shelf/internal/autocat"
)

// accountIDOffset converts between the short account ID used as a
// userdata directory name and the full 64-bit account ID.
const accountIDOffset = 0x0110000100000000

// Profile is the root aggregate: one user's library, behavioral
// settings, ignore list, and category-generation rules. It is created
// by decoding a profile document or by the new-profile flow, and only
// ever mutated on the caller's goroutine.
type Profile struct {
	FilePath string // last load/save location, updated on successful save

	AccountID64 int64

	AutoUpdate           bool
	AutoImport           bool
	AutoExport           bool
	LocalUpdate          bool
	WebUpdate            bool
	ExportDiscard        bool
	AutoIgnore           bool
	IncludeUnknown       bool
	BypassIgnoreOnImport bool
	OverwriteOnDownload  bool
	IncludeShortcuts     bool

	IgnoreList IgnoreSet
	AutoCats   []autocat.AutoCat

	GameData *GameList
}

// NewProfile creates a profile with the default flag values and an
// empty game list. No AutoCats are attached; callers that want the
// default set generate it explicitly.
func NewProfile() *Profile {
	return &Profile{
		AutoUpdate:       true,
		AutoImport:       true,
		AutoExport:       true,
		LocalUpdate:      true,
		WebUpdate:        true,
		ExportDiscard:    true,
		AutoIgnore:       true,
		IncludeShortcuts: true,
		IgnoreList:       NewIgnoreSet(),
		GameData:         NewGameList(),
	}
}

// DirNameToID64 converts a userdata directory name (the short account
// ID) to the full 64-bit account ID. Non-numeric names yield 0.
func DirNameToID64(dirName string) int64 {
	v, err := strconv.ParseInt(dirName, 10, 64)
	if err != nil {
		return 0
	}
	return v + accountIDOffset
}

// ID64ToDirName converts a 64-bit account ID back to its userdata
// directory name.
func ID64ToDirName(id int64) string {
	return strconv.FormatInt(id-accountIDOffset, 10)
}

// ParseAccountID accepts either form of account identifier: a full
// 64-bit ID or a short userdata directory name. Non-numeric input
// yields 0.
func ParseAccountID(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	if v >= accountIDOffset {
		return v
	}
	return v + accountIDOffset
}

// IgnoreGame adds a game ID to the ignore list, reporting whether it
// was newly added.
func (p *Profile) IgnoreGame(id int) bool {
	return p.IgnoreList.Add(id)
}

// GetAutoCat returns the rule with the given name, case-insensitive,
// or nil when absent.
func (p *Profile) GetAutoCat(name string) autocat.AutoCat {
	if name == "" {
		return nil
	}
	for _, ac := range p.AutoCats {
		if strings.EqualFold(ac.GetBase().Name, name) {
			return ac
		}
	}
	return nil
}

// CloneAutoCatList resolves each name to a rule and returns cloned
// copies, optionally retargeting every clone at the given filter.
// Names that resolve to nothing are dropped. Clones keep rule-group
// processing from mutating the profile's own rules.
func (p *Profile) CloneAutoCatList(names []string, filter *Filter) []autocat.AutoCat {
	var out []autocat.AutoCat
	for _, name := range names {
		ac := p.GetAutoCat(name)
		if ac == nil {
			continue
		}
		clone := ac.Clone()
		if filter != nil {
			clone.GetBase().Filter = filter.Name
		}
		out = append(out, clone)
	}
	return out
}
