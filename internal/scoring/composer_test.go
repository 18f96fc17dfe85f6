package scoring

import (
	"strings"
	"testing"

	"github.com/voluntariado/match-engine/config"
)

func newTestComposer() *Composer {
	return NewComposer(config.Default())
}

func TestComposeSearch(t *testing.T) {
	composer := newTestComposer()

	t.Run("skill and recency blend", func(t *testing.T) {
		// 1 of 2 selected skills, fresh posting: 0.5*70 + 30 = 65.
		value, explanation := composer.ComposeSearch(SearchSignals{
			SkillOverlap:   1,
			SelectedSkills: 2,
			Recency:        30,
		})
		if value != 65 {
			t.Errorf("value = %v, want 65", value)
		}
		if !strings.Contains(explanation, "1 skill(s) in common") {
			t.Errorf("explanation %q should mention the skill overlap", explanation)
		}
		if !strings.Contains(explanation, "Recent posting") {
			t.Errorf("explanation %q should mention recency", explanation)
		}
	})

	t.Run("clamped to 100", func(t *testing.T) {
		cfg := config.Default()
		cfg.SkillWeight = 90
		value, _ := NewComposer(cfg).ComposeSearch(SearchSignals{
			SkillOverlap:   3,
			SelectedSkills: 3,
			Recency:        30,
		})
		if value != 100 {
			t.Errorf("value = %v, want clamp at 100", value)
		}
	})

	t.Run("no selected skills yields recency only", func(t *testing.T) {
		value, _ := composer.ComposeSearch(SearchSignals{Recency: 25})
		if value != 25 {
			t.Errorf("value = %v, want 25", value)
		}
	})

	t.Run("recency below threshold omitted from explanation", func(t *testing.T) {
		_, explanation := composer.ComposeSearch(SearchSignals{
			SkillOverlap:   1,
			SelectedSkills: 1,
			Recency:        5,
		})
		if strings.Contains(explanation, "Recent posting") {
			t.Errorf("explanation %q should not mention recency below threshold", explanation)
		}
	})

	t.Run("location appears as fragment", func(t *testing.T) {
		_, explanation := composer.ComposeSearch(SearchSignals{
			SkillOverlap:   2,
			SelectedSkills: 2,
			Location:       "Aracaju",
		})
		if !strings.Contains(explanation, "Aracaju") {
			t.Errorf("explanation %q should include the posting location", explanation)
		}
	})

	t.Run("fallback when nothing contributes", func(t *testing.T) {
		value, explanation := composer.ComposeSearch(SearchSignals{})
		if value != 0 {
			t.Errorf("value = %v, want 0", value)
		}
		if explanation != FallbackExplanation {
			t.Errorf("explanation = %q, want fallback %q", explanation, FallbackExplanation)
		}
	})
}

func TestComposeRecommend(t *testing.T) {
	composer := newTestComposer()

	t.Run("overlap ratio plus location bonus", func(t *testing.T) {
		value, explanation := composer.ComposeRecommend(RecommendSignals{
			SkillOverlap:   2,
			RequiredSkills: 2,
			LocationMatch:  true,
			Location:       "Aracaju",
		})
		if value != 1.2 {
			t.Errorf("value = %v, want 1.2", value)
		}
		if !strings.Contains(explanation, "2 skill(s) in common") || !strings.Contains(explanation, "Aracaju") {
			t.Errorf("explanation = %q, want skill and location fragments", explanation)
		}
	})

	t.Run("lexical signal substitutes for missing skill signal", func(t *testing.T) {
		value, explanation := composer.ComposeRecommend(RecommendSignals{
			Lexical:     0.8,
			LexicalUsed: true,
		})
		if value != 0.8 {
			t.Errorf("value = %v, want 0.8", value)
		}
		if !strings.Contains(explanation, "Similar to your profile") {
			t.Errorf("explanation = %q, want lexical fragment", explanation)
		}
	})

	t.Run("fragments joined with separator", func(t *testing.T) {
		_, explanation := composer.ComposeRecommend(RecommendSignals{
			SkillOverlap:   1,
			RequiredSkills: 2,
			LocationMatch:  true,
			Location:       "Lagarto",
		})
		if !strings.Contains(explanation, ExplanationSeparator) {
			t.Errorf("explanation = %q, want fragments joined with %q", explanation, ExplanationSeparator)
		}
	})

	t.Run("zero contributions yield fallback", func(t *testing.T) {
		value, explanation := composer.ComposeRecommend(RecommendSignals{
			RequiredSkills: 3,
		})
		if value != 0 {
			t.Errorf("value = %v, want 0", value)
		}
		if explanation != FallbackExplanation {
			t.Errorf("explanation = %q, want %q", explanation, FallbackExplanation)
		}
	})
}
