// Package ranking implements the query executor: it fetches a coarse
// candidate window from the opportunity store, refines it client-side,
// scores every candidate through the compatibility signals, sorts and
// truncates to a page.
//
// Every query walks the pipeline Fetching -> Scoring -> Sorted -> Done, or
// stops at Failed when the store fetch errors. The executor is a pure
// function of (filter or profile, candidate set, now): it keeps no mutable
// state across invocations beyond the read-only result cache, so no locking
// is needed around queries.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voluntariado/match-engine/config"
	apperrors "github.com/voluntariado/match-engine/internal/errors"
	"github.com/voluntariado/match-engine/internal/lexical"
	"github.com/voluntariado/match-engine/internal/metrics"
	"github.com/voluntariado/match-engine/internal/normalizer"
	"github.com/voluntariado/match-engine/internal/scoring"
	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

// Terminal pipeline states reported to metrics.
const (
	stateDone   = "done"
	stateFailed = "failed"
)

// Service executes search and recommendation queries against an opportunity
// store. It fulfills the services.Searcher and services.Recommender
// interfaces.
type Service struct {
	store    services.OpportunityStore
	cfg      *config.Config
	composer *scoring.Composer
	metrics  *metrics.Metrics
	cache    *resultCache
	now      func() time.Time
}

// NewService creates a ranking Service. A nil metrics argument disables
// instrumentation; a nil config uses the documented defaults.
func NewService(store services.OpportunityStore, cfg *config.Config, m *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("opportunity store cannot be nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.NewNop()
	}

	return &Service{
		store:    store,
		cfg:      cfg,
		composer: scoring.NewComposer(cfg),
		metrics:  m,
		cache:    newResultCache(cfg.CacheTTL),
		now:      time.Now,
	}, nil
}

// Search executes a filter-driven search: coarse store fetch, client-side
// OR-skill refinement, search-blend scoring, deterministic sort and a single
// page truncation after the full window is sorted.
//
// Identical filters within the cache staleness window are answered from a
// read-only snapshot without a store round-trip.
func (s *Service) Search(ctx context.Context, filter services.SearchFilter) (services.SearchResult, error) {
	startTime := s.now()
	filter = s.clampFilter(filter)
	key := FilterKey(filter)

	if cached, ok := s.cache.get(key, startTime); ok {
		s.metrics.CacheHits.Inc()
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	candidates, err := s.store.FetchActiveOpportunities(ctx, s.predicates(filter), s.cfg.FetchLimit)
	if err != nil {
		return services.SearchResult{}, s.fetchFailed(services.ModeSearch, startTime, err)
	}

	selectedSkills := normalizer.NormalizeSet(filter.Skills)
	now := s.now()

	scored := make([]scoredCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, posting := range candidates {
		if _, dup := seen[posting.ID]; dup {
			continue
		}
		seen[posting.ID] = struct{}{}

		postingSkills := normalizer.NormalizeSet(posting.SkillsRequired)

		// OR semantics: when the filter names skills, a candidate is
		// excluded only if none of them match.
		if len(selectedSkills) > 0 && !scoring.HasAnyOverlap(selectedSkills, postingSkills) {
			continue
		}

		value, explanation := s.composer.ComposeSearch(scoring.SearchSignals{
			SkillOverlap:   scoring.OverlapCount(selectedSkills, postingSkills),
			SelectedSkills: len(selectedSkills),
			Recency:        scoring.RecencyScore(posting.CreatedAt, now, s.cfg.RecencyWindowDays, s.cfg.RecencyMaxScore),
			Location:       posting.Location,
		})
		scored = append(scored, scoredCandidate{posting: posting, score: value, explanation: explanation})
	}

	sortCandidates(scored)

	total := len(scored)
	if len(scored) > s.cfg.PageSize {
		scored = scored[:s.cfg.PageSize]
	}

	result := services.SearchResult{
		Hits:    toRankedResults(scored),
		Total:   total,
		Took:    s.now().Sub(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
		Mode:    services.ModeSearch,
	}
	s.cache.put(key, result, s.now())
	s.metrics.ObserveQuery(string(services.ModeSearch), stateDone, s.now().Sub(startTime), len(candidates))
	return result, nil
}

// Recommend executes a profile-driven recommendation: all active postings
// are scored with the recommendation blend, using TF-IDF/cosine similarity
// of the profile text where structured skill data carries no signal. A
// volunteer with no usable signal gets the configured neutral score on every
// candidate instead of an empty page.
func (s *Service) Recommend(ctx context.Context, profile model.VolunteerProfile) (services.SearchResult, error) {
	startTime := s.now()

	candidates, err := s.store.FetchActiveOpportunities(ctx, services.Predicates{}, s.cfg.FetchLimit)
	if err != nil {
		return services.SearchResult{}, s.fetchFailed(services.ModeRecommendation, startTime, err)
	}

	volunteerSkills := normalizer.SplitList(profile.Skills)
	profileTokens := normalizer.TokenizeMin(profile.ProfileText(), s.cfg.MinTokenLength)

	var scored []scoredCandidate
	if len(profileTokens) == 0 && len(volunteerSkills) == 0 {
		scored = s.scoreNeutral(candidates)
	} else {
		scored = s.scoreProfile(candidates, profile, volunteerSkills, profileTokens)
	}

	sortCandidates(scored)

	total := len(scored)
	if len(scored) > s.cfg.TopN {
		scored = scored[:s.cfg.TopN]
	}

	result := services.SearchResult{
		Hits:    toRankedResults(scored),
		Total:   total,
		Took:    s.now().Sub(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
		Mode:    services.ModeRecommendation,
	}
	s.metrics.ObserveQuery(string(services.ModeRecommendation), stateDone, s.now().Sub(startTime), len(candidates))
	return result, nil
}

// fetchFailed records a failed pipeline run and normalizes the error to the
// engine's fetch-failed condition. No retry, no cached substitution.
func (s *Service) fetchFailed(mode services.ScoringMode, startTime time.Time, err error) error {
	s.metrics.FetchFailures.WithLabelValues(string(mode)).Inc()
	s.metrics.ObserveQuery(string(mode), stateFailed, s.now().Sub(startTime), -1)
	if !errors.Is(err, apperrors.ErrFetchFailed) {
		err = apperrors.NewFetchError("", err)
	}
	return err
}

// scoreNeutral assigns the configured neutral score to every candidate: an
// incomplete profile must not collapse the ranking to an empty page.
func (s *Service) scoreNeutral(candidates []model.OpportunityPosting) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, posting := range candidates {
		if _, dup := seen[posting.ID]; dup {
			continue
		}
		seen[posting.ID] = struct{}{}
		scored = append(scored, scoredCandidate{
			posting:     posting,
			score:       s.cfg.NeutralScore,
			explanation: scoring.FallbackExplanation,
		})
	}
	return scored
}

func (s *Service) scoreProfile(candidates []model.OpportunityPosting, profile model.VolunteerProfile, volunteerSkills, profileTokens []string) []scoredCandidate {
	// One shared corpus per query: the profile plus every candidate text.
	postingTokens := make([][]string, len(candidates))
	for i, posting := range candidates {
		postingTokens[i] = normalizer.TokenizeMin(posting.SearchText(), s.cfg.MinTokenLength)
	}
	lexicalScores := lexical.SimilarityScores(profileTokens, postingTokens)

	scored := make([]scoredCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for i, posting := range candidates {
		if _, dup := seen[posting.ID]; dup {
			continue
		}
		seen[posting.ID] = struct{}{}

		postingSkills := normalizer.NormalizeSet(posting.SkillsRequired)

		// The overlap ratio is the primary signal; lexical similarity
		// substitutes when either side carries no structured skills.
		lexicalUsed := len(profileTokens) > 0 &&
			(len(volunteerSkills) == 0 || len(postingSkills) == 0)

		value, explanation := s.composer.ComposeRecommend(scoring.RecommendSignals{
			SkillOverlap:   scoring.OverlapCount(volunteerSkills, postingSkills),
			RequiredSkills: len(postingSkills),
			Lexical:        lexicalScores[i],
			LexicalUsed:    lexicalUsed,
			LocationMatch:  scoring.LocationBoost(posting.Location, profile.Locations, 1) > 0,
			Location:       posting.Location,
		})
		if value < s.cfg.RecommendThreshold {
			continue
		}
		scored = append(scored, scoredCandidate{posting: posting, score: value, explanation: explanation})
	}
	return scored
}

// clampFilter defends against malformed input: negative hours clamp to zero
// and an entirely unset hour range assumes the configured ceiling. A range
// with min > max is left alone; it simply matches nothing.
func (s *Service) clampFilter(filter services.SearchFilter) services.SearchFilter {
	if filter.MinHours < 0 {
		filter.MinHours = 0
	}
	if filter.MaxHours < 0 {
		filter.MaxHours = 0
	}
	if filter.MinHours == 0 && filter.MaxHours == 0 {
		filter.MaxHours = s.cfg.DefaultMaxHours
	}
	return filter
}

// predicates translates a filter into the store's server-evaluable
// conjunction. Free-text queries shorter than the configured minimum are not
// forwarded to the text predicate.
func (s *Service) predicates(filter services.SearchFilter) services.Predicates {
	preds := services.Predicates{
		MinHours:  &filter.MinHours,
		MaxHours:  &filter.MaxHours,
		Locations: filter.Locations,
	}
	if query := normalizer.Normalize(filter.Query); len(query) >= s.cfg.MinQueryLength {
		preds.Text = filter.Query
	}
	return preds
}
