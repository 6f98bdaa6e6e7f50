package autocat

import "github.com/beevik/etree"

// TypeHltb is the element tag for playtime-bucket rules.
const TypeHltb = "AutoCatHltb"

// Completion time kinds a playtime bucket can be measured against.
const (
	TimeMain        = "Main"
	TimeExtras      = "Extras"
	TimeCompletionist = "Completionist"
)

// HltbRule maps a completion-time range in hours to a category name.
// MaxHours of 0 means unbounded.
type HltbRule struct {
	Name     string
	MinHours float64
	MaxHours float64
	TimeType string
}

// Hltb assigns a category from how long a game takes to beat.
type Hltb struct {
	Base

	IncludeUnknown bool
	UnknownText    string
	Rules          []HltbRule
}

func init() {
	register(TypeHltb, loadHltb)
}

func (*Hltb) Type() string { return TypeHltb }

// Clone implements AutoCat.
func (a *Hltb) Clone() AutoCat {
	c := *a
	c.Rules = append([]HltbRule(nil), a.Rules...)
	return &c
}

// DefaultBuckets returns the standard five playtime buckets.
func DefaultBuckets() []HltbRule {
	return []HltbRule{
		{Name: " 0-5", MinHours: 0, MaxHours: 5, TimeType: TimeExtras},
		{Name: " 5-10", MinHours: 5, MaxHours: 10, TimeType: TimeExtras},
		{Name: "10-20", MinHours: 10, MaxHours: 20, TimeType: TimeExtras},
		{Name: "20-50", MinHours: 20, MaxHours: 50, TimeType: TimeExtras},
		{Name: "50+", MinHours: 50, MaxHours: 0, TimeType: TimeExtras},
	}
}

func (a *Hltb) encodeParams(e *etree.Element) {
	encodeBool(e, "IncludeUnknown", a.IncludeUnknown)
	e.CreateElement("UnknownText").SetText(a.UnknownText)
	rules := e.CreateElement("Rules")
	for _, r := range a.Rules {
		re := rules.CreateElement("Rule")
		re.CreateElement("Text").SetText(r.Name)
		encodeFloat(re, "MinHours", r.MinHours)
		encodeFloat(re, "MaxHours", r.MaxHours)
		re.CreateElement("TimeType").SetText(r.TimeType)
	}
}

func loadHltb(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	a := &Hltb{
		Base:           b,
		IncludeUnknown: childBool(e, "IncludeUnknown", false),
		UnknownText:    childText(e, "UnknownText"),
	}
	if rules := e.SelectElement("Rules"); rules != nil {
		for _, re := range rules.SelectElements("Rule") {
			r := HltbRule{
				Name:     childText(re, "Text"),
				MinHours: childFloat(re, "MinHours", 0),
				MaxHours: childFloat(re, "MaxHours", 0),
				TimeType: childText(re, "TimeType"),
			}
			if r.Name == "" {
				continue
			}
			if r.TimeType == "" {
				r.TimeType = TimeMain
			}
			a.Rules = append(a.Rules, r)
		}
	}
	return a, nil
}
