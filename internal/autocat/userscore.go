package autocat

import "github.com/beevik/etree"

// TypeUserScore is the element tag for review-score rules.
const TypeUserScore = "AutoCatUserScore"

// ScoreRule maps a review-score band to a category name. Review
// counts of 0 mean unbounded.
type ScoreRule struct {
	Name       string
	MinScore   int
	MaxScore   int
	MinReviews int
	MaxReviews int
}

// UserScore assigns a category from a game's aggregate review score.
type UserScore struct {
	Base

	UseWilsonScore bool
	Rules          []ScoreRule
}

func init() {
	register(TypeUserScore, loadUserScore)
}

func (*UserScore) Type() string { return TypeUserScore }

// Clone implements AutoCat.
func (a *UserScore) Clone() AutoCat {
	c := *a
	c.Rules = append([]ScoreRule(nil), a.Rules...)
	return &c
}

// GenerateStoreRules replaces the rule list with the canonical store
// review bands, from Overwhelmingly Positive down to Overwhelmingly
// Negative.
func (a *UserScore) GenerateStoreRules() {
	a.Rules = []ScoreRule{
		{Name: "Overwhelmingly Positive", MinScore: 95, MaxScore: 100, MinReviews: 500},
		{Name: "Very Positive", MinScore: 85, MaxScore: 100, MinReviews: 50},
		{Name: "Positive", MinScore: 80, MaxScore: 100, MinReviews: 1},
		{Name: "Mostly Positive", MinScore: 70, MaxScore: 79, MinReviews: 1},
		{Name: "Mixed", MinScore: 40, MaxScore: 69, MinReviews: 1},
		{Name: "Mostly Negative", MinScore: 20, MaxScore: 39, MinReviews: 1},
		{Name: "Negative", MinScore: 0, MaxScore: 19, MinReviews: 1},
		{Name: "Very Negative", MinScore: 0, MaxScore: 19, MinReviews: 50},
		{Name: "Overwhelmingly Negative", MinScore: 0, MaxScore: 19, MinReviews: 500},
	}
}

func (a *UserScore) encodeParams(e *etree.Element) {
	encodeBool(e, "UseWilsonScore", a.UseWilsonScore)
	rules := e.CreateElement("Rules")
	for _, r := range a.Rules {
		re := rules.CreateElement("Rule")
		re.CreateElement("Text").SetText(r.Name)
		encodeInt(re, "MinScore", r.MinScore)
		encodeInt(re, "MaxScore", r.MaxScore)
		encodeInt(re, "MinReviews", r.MinReviews)
		encodeInt(re, "MaxReviews", r.MaxReviews)
	}
}

func loadUserScore(e *etree.Element) (AutoCat, error) {
	b, err := loadBase(e)
	if err != nil {
		return nil, err
	}
	a := &UserScore{
		Base:           b,
		UseWilsonScore: childBool(e, "UseWilsonScore", false),
	}
	if rules := e.SelectElement("Rules"); rules != nil {
		for _, re := range rules.SelectElements("Rule") {
			r := ScoreRule{
				Name:       childText(re, "Text"),
				MinScore:   childInt(re, "MinScore", 0),
				MaxScore:   childInt(re, "MaxScore", 100),
				MinReviews: childInt(re, "MinReviews", 0),
				MaxReviews: childInt(re, "MaxReviews", 0),
			}
			if r.Name == "" {
				continue
			}
			a.Rules = append(a.Rules, r)
		}
	}
	return a, nil
}
