package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/voluntariado/match-engine/model"
)

// Inserter is the write side a seed run needs. Both MemoryStore and
// SQLiteStore satisfy it.
type Inserter interface {
	Insert(ctx context.Context, posting model.OpportunityPosting) error
}

// LoadSeedFile reads a JSON array of opportunity postings from filePath.
// If the file does not exist, it returns os.ErrNotExist, allowing callers to
// handle fresh starts gracefully.
func LoadSeedFile(filePath string) ([]model.OpportunityPosting, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	var postings []model.OpportunityPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}
	return postings, nil
}

// Seed inserts the given postings into the store, stopping at the first
// failure.
func Seed(ctx context.Context, dst Inserter, postings []model.OpportunityPosting) error {
	for _, p := range postings {
		if err := dst.Insert(ctx, p); err != nil {
			return fmt.Errorf("failed to seed posting %s: %w", p.ID, err)
		}
	}
	return nil
}
