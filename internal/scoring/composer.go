package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/voluntariado/match-engine/config"
)

// ExplanationSeparator joins explanation fragments.
const ExplanationSeparator = " • "

// FallbackExplanation is emitted when no score contribution produced a
// fragment.
const FallbackExplanation = "No matches found"

// SearchSignals are the inputs to the filter-driven search blend.
type SearchSignals struct {
	SkillOverlap   int     // selected filter skills found on the posting
	SelectedSkills int     // size of the filter's skill set
	Recency        float64 // recency contribution, 0..RecencyMaxScore
	Location       string  // posting location, "" when absent
}

// RecommendSignals are the inputs to the profile-driven recommendation blend.
// When the volunteer or the posting carries no skill signal, Lexical holds the
// TF-IDF cosine similarity used in its place and LexicalUsed is set.
type RecommendSignals struct {
	SkillOverlap   int
	RequiredSkills int
	Lexical        float64
	LexicalUsed    bool
	LocationMatch  bool
	Location       string
}

// Composer merges the individual signals into one bounded compatibility score
// plus an explanation. Each method implements one blend on its own scale; the
// two are never mixed within a result set.
type Composer struct {
	cfg *config.Config
}

// NewComposer creates a Composer using the given tuning configuration.
func NewComposer(cfg *config.Config) *Composer {
	return &Composer{cfg: cfg}
}

// ComposeSearch applies the filter-driven blend on the [0,100] scale:
// round(min(100, filterRatio*SkillWeight + recency)).
func (c *Composer) ComposeSearch(sig SearchSignals) (float64, string) {
	skillScore := 0.0
	if sig.SelectedSkills > 0 {
		skillScore = float64(sig.SkillOverlap) / float64(sig.SelectedSkills) * c.cfg.SkillWeight
	}
	value := math.Round(math.Min(100, skillScore+sig.Recency))

	fragments := make([]string, 0, 3)
	if sig.SkillOverlap > 0 {
		fragments = append(fragments, fmt.Sprintf("%d skill(s) in common", sig.SkillOverlap))
	}
	if sig.Recency > c.cfg.RecencyExplainThreshold {
		fragments = append(fragments, "Recent posting")
	}
	if sig.Location != "" {
		fragments = append(fragments, sig.Location)
	}

	return value, joinFragments(fragments)
}

// ComposeRecommend applies the profile-driven blend on its natural scale
// (at most 1 + LocationBonus): the skill overlap ratio against the posting's
// required skills (or the lexical similarity when that ratio carries no
// signal) plus the location bonus.
func (c *Composer) ComposeRecommend(sig RecommendSignals) (float64, string) {
	base := 0.0
	if sig.LexicalUsed {
		base = sig.Lexical
	} else if sig.RequiredSkills > 0 {
		base = float64(sig.SkillOverlap) / float64(sig.RequiredSkills)
	}

	value := base
	fragments := make([]string, 0, 3)
	if sig.SkillOverlap > 0 {
		fragments = append(fragments, fmt.Sprintf("%d skill(s) in common", sig.SkillOverlap))
	}
	if sig.LexicalUsed && sig.Lexical > 0 {
		fragments = append(fragments, "Similar to your profile")
	}
	if sig.LocationMatch {
		value += c.cfg.LocationBonus
		if sig.Location != "" {
			fragments = append(fragments, sig.Location)
		}
	}

	return value, joinFragments(fragments)
}

func joinFragments(fragments []string) string {
	if len(fragments) == 0 {
		return FallbackExplanation
	}
	return strings.Join(fragments, ExplanationSeparator)
}
