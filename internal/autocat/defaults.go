package autocat

// MetadataSource supplies the catalog metadata used to seed default
// rules. It is satisfied by *metadata.DB; a nil source leaves the
// tag and flag lists empty.
type MetadataSource interface {
	TopTags(limit int) ([]string, error)
	StoreFlags() ([]string, error)
}

// defaultTagCount bounds how many tags the default tag rule includes.
const defaultTagCount = 20

// GenerateDefaultSet builds the rule set given to every new profile:
// genre, year, score, tags, flags, playtime buckets, and platform.
// Lookup failures against meta are tolerated; the affected rule just
// starts with an empty include list.
func GenerateDefaultSet(meta MetadataSource) []AutoCat {
	genre := &Genre{Base: Base{Name: "Genre", Prefix: "(Genre) "}, TagFallback: true}
	year := &Year{Base: Base{Name: "Year", Prefix: "(Year) "}, IncludeUnknown: true}

	score := &UserScore{Base: Base{Name: "Score", Prefix: "(Score) "}}
	score.GenerateStoreRules()

	tags := &Tags{Base: Base{Name: "Tags", Prefix: "(Tags) "}, MaxTags: defaultTagCount}
	flags := &Flags{Base: Base{Name: "Flags", Prefix: "(Flags) "}}
	if meta != nil {
		if list, err := meta.TopTags(defaultTagCount); err == nil {
			tags.IncludedTags = list
		}
		if list, err := meta.StoreFlags(); err == nil {
			flags.IncludedFlags = list
		}
	}

	hltb := &Hltb{Base: Base{Name: "HLTB", Prefix: "(HLTB) "}, Rules: DefaultBuckets()}

	platform := &Platform{
		Base:    Base{Name: "Platform", Prefix: "(Platform) "},
		Windows: true, Mac: true, Linux: true, SteamOS: true,
	}

	return []AutoCat{genre, year, score, tags, flags, hltb, platform}
}
