// Package model defines the entities the matching engine operates on.
// All entities are read-only inputs: the engine never mutates or persists them.
package model

import "time"

// OrganizationRef identifies the NGO that published a posting. It is carried
// through to ranked results so callers can render results without a second
// lookup.
type OrganizationRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// OpportunityPosting is a volunteering opportunity published by an NGO.
// SkillsRequired holds normalized skill tokens; Location is optional.
// Only postings with Active=true are eligible for matching.
type OpportunityPosting struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	SkillsRequired []string        `json:"skills_required"`
	EstimatedHours float64         `json:"estimated_hours"`
	Location       string          `json:"location,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Active         bool            `json:"active"`
	Organization   OrganizationRef `json:"organization"`
}

// SearchText returns the posting's free-text content used for lexical
// similarity: title, description and required skills concatenated.
func (p OpportunityPosting) SearchText() string {
	text := p.Title + " " + p.Description
	for _, skill := range p.SkillsRequired {
		text += " " + skill
	}
	return text
}
