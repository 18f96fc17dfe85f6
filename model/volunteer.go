package model

// VolunteerProfile is the volunteer-side input for recommendation mode.
// Skills arrives as a free-form comma-separated list at the boundary and is
// normalized inside the engine; Bio may be empty for incomplete profiles.
type VolunteerProfile struct {
	Bio       string   `json:"bio,omitempty"`
	Skills    string   `json:"skills,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// ProfileText returns the free text the lexical engine vectorizes for this
// volunteer: bio and raw skills joined.
func (v VolunteerProfile) ProfileText() string {
	if v.Bio == "" {
		return v.Skills
	}
	if v.Skills == "" {
		return v.Bio
	}
	return v.Bio + " " + v.Skills
}
