package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/voluntariado/match-engine/internal/errors"
	"github.com/voluntariado/match-engine/internal/normalizer"
	"github.com/voluntariado/match-engine/model"
	"github.com/voluntariado/match-engine/services"
)

const schema = `
CREATE TABLE IF NOT EXISTS opportunities (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	skills_required TEXT NOT NULL DEFAULT '',
	estimated_hours REAL NOT NULL DEFAULT 0,
	location        TEXT,
	location_norm   TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL,
	active          INTEGER NOT NULL DEFAULT 1,
	org_id          TEXT NOT NULL DEFAULT '',
	org_name        TEXT NOT NULL DEFAULT '',
	org_avatar_url  TEXT
);
CREATE INDEX IF NOT EXISTS idx_opportunities_active_created
	ON opportunities (active, created_at DESC);
`

// SQLiteStore is a sqlite-backed OpportunityStore. Skills are stored as the
// original comma-separated list and normalized on read, matching the product
// data model the engine ingests from.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and runs the schema
// migration.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	// SQLite does not support concurrent writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Insert writes a posting. Skills are persisted as a comma-separated list;
// the location is stored both verbatim for display and normalized for the
// membership predicate.
func (s *SQLiteStore) Insert(ctx context.Context, p model.OpportunityPosting) error {
	var location, avatar interface{}
	if p.Location != "" {
		location = p.Location
	}
	if p.Organization.AvatarURL != "" {
		avatar = p.Organization.AvatarURL
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO opportunities (
			id, title, description, skills_required, estimated_hours,
			location, location_norm, created_at, active, org_id, org_name, org_avatar_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Title, p.Description, strings.Join(p.SkillsRequired, ","),
		p.EstimatedHours, location, normalizer.Normalize(p.Location), p.CreatedAt, p.Active,
		p.Organization.ID, p.Organization.Name, avatar,
	)
	return err
}

// FetchActiveOpportunities returns active postings under the predicate
// conjunction, most recent first, capped at limit. Failures surface as the
// engine's fetch-failed condition.
func (s *SQLiteStore) FetchActiveOpportunities(ctx context.Context, preds services.Predicates, limit int) ([]model.OpportunityPosting, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, title, description, skills_required, estimated_hours,
		       location, created_at, active, org_id, org_name, org_avatar_url
		FROM opportunities WHERE active = 1
	`)
	args := make([]interface{}, 0, 8)

	if preds.MinHours != nil {
		query.WriteString(" AND estimated_hours >= ?")
		args = append(args, *preds.MinHours)
	}
	if preds.MaxHours != nil {
		query.WriteString(" AND estimated_hours <= ?")
		args = append(args, *preds.MaxHours)
	}
	if len(preds.Locations) > 0 {
		// Membership is case- and accent-insensitive: compare the
		// normalized column against normalized predicate values.
		query.WriteString(" AND location_norm IN (?" + strings.Repeat(", ?", len(preds.Locations)-1) + ")")
		for _, loc := range preds.Locations {
			args = append(args, normalizer.Normalize(loc))
		}
	}
	if preds.Text != "" {
		query.WriteString(` AND (title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR skills_required LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(preds.Text) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query.WriteString(" ORDER BY created_at DESC")
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, apperrors.NewFetchError("sqlite", err)
	}
	defer rows.Close()

	postings := make([]model.OpportunityPosting, 0)
	for rows.Next() {
		var (
			p         model.OpportunityPosting
			skills    string
			location  sql.NullString
			avatar    sql.NullString
			createdAt time.Time
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &skills, &p.EstimatedHours,
			&location, &createdAt, &p.Active,
			&p.Organization.ID, &p.Organization.Name, &avatar,
		); err != nil {
			return nil, apperrors.NewFetchError("sqlite", err)
		}
		p.SkillsRequired = normalizer.SplitList(skills)
		p.Location = location.String
		p.Organization.AvatarURL = avatar.String
		p.CreatedAt = createdAt
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewFetchError("sqlite", err)
	}
	return postings, nil
}

// escapeLike neutralizes the LIKE metacharacters so user-supplied text
// matches literally. The backslash must go first: it is the ESCAPE
// character, and a bare trailing one would leave a dangling escape.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
