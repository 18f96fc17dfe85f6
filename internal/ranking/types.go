package ranking

import (
	"sort"
	"time"

	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

// scoredCandidate carries a posting through scoring and sorting before it is
// converted into a RankedResult.
type scoredCandidate struct {
	posting     model.OpportunityPosting
	score       float64
	explanation string
}

// sortCandidates orders descending by score with descending CreatedAt as the
// deterministic tie-break. Sorting always sees the full scored window;
// truncation happens afterwards.
func sortCandidates(candidates []scoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].posting.CreatedAt.After(candidates[j].posting.CreatedAt)
	})
}

// toRankedResults converts sorted candidates into the external result shape.
func toRankedResults(candidates []scoredCandidate) []services.RankedResult {
	results := make([]services.RankedResult, len(candidates))
	for i, c := range candidates {
		results[i] = services.RankedResult{
			ID:                 c.posting.ID,
			Title:              c.posting.Title,
			Description:        c.posting.Description,
			SkillsRequired:     c.posting.SkillsRequired,
			EstimatedHours:     c.posting.EstimatedHours,
			Location:           c.posting.Location,
			CreatedAt:          c.posting.CreatedAt.UTC().Format(time.RFC3339),
			Organization:       c.posting.Organization,
			CompatibilityScore: c.score,
			MatchExplanation:   c.explanation,
		}
	}
	return results
}
