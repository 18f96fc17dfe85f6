// Package scoring implements the individual compatibility signals (skill
// overlap, recency decay, location boost) and the composer that merges them
// into a bounded score with a human-readable explanation.
//
// All functions operate on normalized skill tokens (see internal/normalizer)
// and are total: every division site is guarded.
package scoring

// OverlapCount returns the size of the intersection of two normalized skill
// sets.
func OverlapCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, skill := range b {
		set[skill] = struct{}{}
	}
	count := 0
	for _, skill := range a {
		if _, ok := set[skill]; ok {
			count++
		}
	}
	return count
}

// HasAnyOverlap reports whether the two sets share at least one skill.
// This is the OR-semantics retention check: a candidate survives a skill
// filter when any selected skill matches, never requiring full coverage.
func HasAnyOverlap(a, b []string) bool {
	return OverlapCount(a, b) > 0
}

// OverlapRatio scores a volunteer's skills against a posting's required
// skills: |intersection| / |required|, in [0,1]. An empty requirement scores
// 0; there is no signal to claim a match against.
func OverlapRatio(volunteerSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}
	return float64(OverlapCount(volunteerSkills, requiredSkills)) / float64(len(requiredSkills))
}

// FilterRatio scores a posting against the skills a caller selected in a
// search filter: |intersection| / |selected|, in [0,1]. The denominator is
// the filter's skill set, not the posting's. No selected skills means no
// skill signal and scores 0.
func FilterRatio(selectedSkills, postingSkills []string) float64 {
	if len(selectedSkills) == 0 {
		return 0
	}
	return float64(OverlapCount(selectedSkills, postingSkills)) / float64(len(selectedSkills))
}
