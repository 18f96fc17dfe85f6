// Package services defines the engine's public contracts: the search filter
// and result shapes, and the store collaborator interface the engine fetches
// candidate postings through.
package services

import (
	"context"

	"github.com/voluntariado/match-engine/model"
)

// SearchFilter is the caller-supplied filter for search mode. All fields are
// optional; zero values mean "no constraint" except MaxHours, which defaults
// to the configured hour ceiling when left at zero alongside MinHours.
// Skills and Locations use OR semantics.
type SearchFilter struct {
	Query     string   `json:"query"`
	Skills    []string `json:"skills"`
	MinHours  float64  `json:"min_hours"`
	MaxHours  float64  `json:"max_hours"`
	Locations []string `json:"locations"`
}

// RankedResult is one scored posting in a result page. CompatibilityScore is
// on the scale of the mode that produced it (see SearchResult.Mode);
// MatchExplanation is a human-readable " • "-joined summary of the non-zero
// score contributions.
type RankedResult struct {
	ID                 string                `json:"id"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	SkillsRequired     []string              `json:"skills_required"`
	EstimatedHours     float64               `json:"estimated_hours"`
	Location           string                `json:"location,omitempty"`
	CreatedAt          string                `json:"created_at"`
	Organization       model.OrganizationRef `json:"organization"`
	CompatibilityScore float64               `json:"compatibility_score"`
	MatchExplanation   string                `json:"match_explanation"`
}

// ScoringMode identifies which blend produced a result set's scores. The two
// blends use different scales and must never be mixed within one result.
type ScoringMode string

const (
	// ModeSearch is the filter-driven blend: skill ratio against the
	// selected filter skills weighted into [0,100] together with recency.
	ModeSearch ScoringMode = "search"
	// ModeRecommendation is the profile-driven blend: lexical similarity
	// plus skill overlap against the posting's required skills and the
	// location bonus, on the natural [0,1.2] scale.
	ModeRecommendation ScoringMode = "recommendation"
)

// SearchResult is an ordered page of ranked postings.
type SearchResult struct {
	Hits    []RankedResult `json:"hits"`
	Total   int            `json:"total"`
	Took    int64          `json:"took"` // milliseconds
	QueryID string         `json:"query_id"`
	Mode    ScoringMode    `json:"mode"`
}

// Predicates are the server-evaluable filter conjunction handed to the store:
// inclusive hour bounds, location membership and a coarse text predicate over
// title/description/skills, always over active postings only. Nil bounds mean
// unconstrained. Location membership is case- and accent-insensitive: every
// store implementation compares normalized values on both sides.
type Predicates struct {
	MinHours  *float64
	MaxHours  *float64
	Locations []string
	Text      string
}

// OpportunityStore is the external collaborator the engine fetches candidate
// postings from. Implementations evaluate only the coarse Predicates
// conjunction over active postings; all scoring and ranking stays in the
// engine. Results are capped at limit, most recent first.
type OpportunityStore interface {
	FetchActiveOpportunities(ctx context.Context, preds Predicates, limit int) ([]model.OpportunityPosting, error)
}

// Searcher executes filter-driven searches.
type Searcher interface {
	Search(ctx context.Context, filter SearchFilter) (SearchResult, error)
}

// Recommender produces personalized recommendations for a volunteer profile.
type Recommender interface {
	Recommend(ctx context.Context, profile model.VolunteerProfile) (SearchResult, error)
}
