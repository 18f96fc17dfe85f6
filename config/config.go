// Package config defines the engine's tunable scoring and ranking settings.
// The weighting constants are product-tuning knobs, kept here as named
// configuration values with documented defaults so behavior can be adjusted
// without code changes.
package config

import (
	"time"

	"github.com/voluntariado/match-engine/internal/errors"
)

// Config contains all engine settings. Zero values are replaced by defaults
// via ApplyDefaults.
type Config struct {
	// SkillWeight scales the filter-skill ratio into the [0,100] search
	// blend. With the default 70, a perfect skill match contributes 70 of
	// the 100 available points; recency contributes the rest.
	SkillWeight float64 `koanf:"skill_weight"`

	// RecencyWindowDays is the horizon after which a posting's recency
	// contribution reaches zero.
	RecencyWindowDays int `koanf:"recency_window_days"`

	// RecencyMaxScore is the recency contribution of a brand-new posting.
	RecencyMaxScore float64 `koanf:"recency_max_score"`

	// RecencyExplainThreshold is the minimum recency contribution for the
	// "Recent posting" explanation fragment to appear.
	RecencyExplainThreshold float64 `koanf:"recency_explain_threshold"`

	// LocationBonus is added in recommendation mode when a posting's
	// location matches one of the volunteer's declared locations.
	LocationBonus float64 `koanf:"location_bonus"`

	// NeutralScore is assigned to every candidate when the volunteer
	// profile carries no usable signal (no bio, no skills), so incomplete
	// profiles still see recommendations instead of an empty page.
	NeutralScore float64 `koanf:"neutral_score"`

	// RecommendThreshold drops recommendation-mode candidates scoring
	// below it before truncation. Default 0.4; an explicit zero keeps
	// everything.
	RecommendThreshold float64 `koanf:"recommend_threshold"`

	// TopN caps the recommendation result list.
	TopN int `koanf:"top_n"`

	// FetchLimit bounds the candidate window over-fetched from the store.
	// It must exceed PageSize: client-side filtering only shrinks the set.
	FetchLimit int `koanf:"fetch_limit"`

	// PageSize caps the search result page.
	PageSize int `koanf:"page_size"`

	// DefaultMaxHours is the hour ceiling assumed when a filter leaves
	// both hour bounds at zero.
	DefaultMaxHours float64 `koanf:"default_max_hours"`

	// MinQueryLength is the shortest free-text query forwarded to the
	// store's text predicate; shorter queries are ignored.
	MinQueryLength int `koanf:"min_query_length"`

	// MinTokenLength is the shortest token the lexical engine indexes.
	MinTokenLength int `koanf:"min_token_length"`

	// CacheTTL is the staleness window for cached result snapshots.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// DebounceInterval coalesces rapid filter edits into a single query.
	DebounceInterval time.Duration `koanf:"debounce_interval"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath locates the sqlite opportunity store used by the server.
	DataPath string `koanf:"data_path"`

	// SeedPath optionally names a JSON file of opportunity postings loaded
	// into the store at startup. Empty disables seeding.
	SeedPath string `koanf:"seed_path"`
}

// Default returns a Config populated with the documented defaults.
func Default() *Config {
	return &Config{
		SkillWeight:             70,
		RecencyWindowDays:       30,
		RecencyMaxScore:         30,
		RecencyExplainThreshold: 10,
		LocationBonus:           0.2,
		NeutralScore:            0.5,
		RecommendThreshold:      0.4,
		TopN:                    5,
		FetchLimit:              200,
		PageSize:                50,
		DefaultMaxHours:         40,
		MinQueryLength:          2,
		MinTokenLength:          3,
		CacheTTL:                30 * time.Second,
		DebounceInterval:        250 * time.Millisecond,
		Addr:                    ":8080",
		DataPath:                "./match_data/opportunities.db",
	}
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
// RecommendThreshold is deliberately left alone: zero is a meaningful
// setting that disables threshold filtering, so callers wanting the default
// start from Default() instead of a zero struct.
func (c *Config) ApplyDefaults() {
	defaults := Default()
	if c.SkillWeight == 0 {
		c.SkillWeight = defaults.SkillWeight
	}
	if c.RecencyWindowDays == 0 {
		c.RecencyWindowDays = defaults.RecencyWindowDays
	}
	if c.RecencyMaxScore == 0 {
		c.RecencyMaxScore = defaults.RecencyMaxScore
	}
	if c.RecencyExplainThreshold == 0 {
		c.RecencyExplainThreshold = defaults.RecencyExplainThreshold
	}
	if c.LocationBonus == 0 {
		c.LocationBonus = defaults.LocationBonus
	}
	if c.NeutralScore == 0 {
		c.NeutralScore = defaults.NeutralScore
	}
	if c.TopN == 0 {
		c.TopN = defaults.TopN
	}
	if c.FetchLimit == 0 {
		c.FetchLimit = defaults.FetchLimit
	}
	if c.PageSize == 0 {
		c.PageSize = defaults.PageSize
	}
	if c.DefaultMaxHours == 0 {
		c.DefaultMaxHours = defaults.DefaultMaxHours
	}
	if c.MinQueryLength == 0 {
		c.MinQueryLength = defaults.MinQueryLength
	}
	if c.MinTokenLength == 0 {
		c.MinTokenLength = defaults.MinTokenLength
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = defaults.CacheTTL
	}
	if c.DebounceInterval == 0 {
		c.DebounceInterval = defaults.DebounceInterval
	}
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.DataPath == "" {
		c.DataPath = defaults.DataPath
	}
}

// Validate checks invariants between settings.
func (c *Config) Validate() error {
	if c.SkillWeight < 0 {
		return errors.NewValidationError("skill_weight", "must be non-negative")
	}
	if c.RecencyWindowDays <= 0 {
		return errors.NewValidationError("recency_window_days", "must be positive")
	}
	if c.RecencyMaxScore < 0 {
		return errors.NewValidationError("recency_max_score", "must be non-negative")
	}
	if c.FetchLimit < c.PageSize {
		return errors.NewValidationError("fetch_limit", "must be at least page_size: the candidate window can only shrink downstream")
	}
	if c.TopN <= 0 {
		return errors.NewValidationError("top_n", "must be positive")
	}
	if c.MinTokenLength <= 0 {
		return errors.NewValidationError("min_token_length", "must be positive")
	}
	return nil
}
