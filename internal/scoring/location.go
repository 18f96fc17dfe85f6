package scoring

import "github.com/voluntariado/match-engine/internal/normalizer"

// LocationBoost returns bonus when the posting's location is a case- and
// accent-insensitive member of the volunteer's declared locations, and 0
// otherwise. It is only meaningful when the volunteer declared at least one
// location; an empty declaration or an unlocated posting never boosts.
func LocationBoost(postingLocation string, volunteerLocations []string, bonus float64) float64 {
	if postingLocation == "" || len(volunteerLocations) == 0 {
		return 0
	}
	target := normalizer.Normalize(postingLocation)
	for _, loc := range volunteerLocations {
		if normalizer.Normalize(loc) == target {
			return bonus
		}
	}
	return 0
}
