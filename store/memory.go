// Package store provides OpportunityStore implementations: an in-memory
// store for tests and demos, and a sqlite-backed store for deployments.
// Both evaluate only the coarse server-side predicate conjunction; scoring
// and ranking stay in the engine.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/voluntariado/match-engine/internal/normalizer"
	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

// MemoryStore is an in-memory OpportunityStore. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	postings []model.OpportunityPosting
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends postings to the store.
func (s *MemoryStore) Add(postings ...model.OpportunityPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postings = append(s.postings, postings...)
}

// Insert appends a single posting. It exists so MemoryStore can be seeded
// through the same Inserter interface as SQLiteStore.
func (s *MemoryStore) Insert(_ context.Context, posting model.OpportunityPosting) error {
	s.Add(posting)
	return nil
}

// FetchActiveOpportunities returns active postings matching the predicate
// conjunction, most recent first, capped at limit.
func (s *MemoryStore) FetchActiveOpportunities(ctx context.Context, preds services.Predicates, limit int) ([]model.OpportunityPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	text := normalizer.Normalize(preds.Text)
	locations := normalizer.NormalizeSet(preds.Locations)

	matched := make([]model.OpportunityPosting, 0, len(s.postings))
	for _, p := range s.postings {
		if !p.Active {
			continue
		}
		if preds.MinHours != nil && p.EstimatedHours < *preds.MinHours {
			continue
		}
		if preds.MaxHours != nil && p.EstimatedHours > *preds.MaxHours {
			continue
		}
		if len(locations) > 0 && !containsString(locations, normalizer.Normalize(p.Location)) {
			continue
		}
		if text != "" && !strings.Contains(normalizer.Normalize(p.SearchText()), text) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
