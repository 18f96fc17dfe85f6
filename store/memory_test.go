package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

func floatPtr(f float64) *float64 { return &f }

func seedPostings(now time.Time) []model.OpportunityPosting {
	return []model.OpportunityPosting{
		{
			ID: "opp-1", Title: "Aulas de reforço", Description: "Ensino para crianças",
			SkillsRequired: []string{"ensino"}, EstimatedHours: 10,
			Location: "Aracaju", CreatedAt: now.AddDate(0, 0, -1), Active: true,
		},
		{
			ID: "opp-2", Title: "Campanha de marketing", Description: "Divulgação nas redes",
			SkillsRequired: []string{"marketing", "design"}, EstimatedHours: 25,
			Location: "Lagarto", CreatedAt: now.AddDate(0, 0, -10), Active: true,
		},
		{
			ID: "opp-3", Title: "Vaga encerrada", Description: "Não deveria aparecer",
			SkillsRequired: []string{"ensino"}, EstimatedHours: 5,
			CreatedAt: now, Active: false,
		},
	}
}

func TestMemoryStore_ActiveOnly(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.Active)
	}
}

func TestMemoryStore_HourBounds(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{
		MinHours: floatPtr(0),
		MaxHours: floatPtr(15),
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "opp-1", got[0].ID)

	// Inclusive bounds.
	got, err = s.FetchActiveOpportunities(context.Background(), services.Predicates{
		MinHours: floatPtr(25),
		MaxHours: floatPtr(25),
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "opp-2", got[0].ID)
}

func TestMemoryStore_EmptyHourRange(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	// min > max is allowed and simply matches nothing.
	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{
		MinHours: floatPtr(30),
		MaxHours: floatPtr(5),
	}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_LocationMembership(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{
		Locations: []string{"aracaju", "Estância"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "opp-1", got[0].ID)
}

func TestMemoryStore_TextPredicate(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	// Matches over title, description and skills, accent-insensitively.
	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{Text: "divulgacao"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "opp-2", got[0].ID)

	got, err = s.FetchActiveOpportunities(context.Background(), services.Predicates{Text: "design"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "opp-2", got[0].ID)
}

func TestMemoryStore_OrderAndLimit(t *testing.T) {
	s := NewMemoryStore()
	s.Add(seedPostings(time.Now())...)

	got, err := s.FetchActiveOpportunities(context.Background(), services.Predicates{}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	// Most recent active posting first.
	assert.Equal(t, "opp-1", got[0].ID)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FetchActiveOpportunities(ctx, services.Predicates{}, 0)
	assert.Error(t, err)
}
