package taxonomy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// LoadPostgres loads a taxonomy snapshot from the skill_records table.
// The connection is only held for the duration of the load; the snapshot is
// a self-contained in-memory copy.
func LoadPostgres(ctx context.Context, databaseURL string) (*Snapshot, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	rows, err := pool.Query(ctx,
		`SELECT id, name, normalized_name, category, aliases, related, embedding
		 FROM skill_records
		 ORDER BY normalized_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill records: %w", err)
	}
	defer rows.Close()

	var records []types.SkillRecord
	for rows.Next() {
		var (
			id        uuid.UUID
			rec       types.SkillRecord
			category  string
			aliases   []string
			related   []string
			embedding []float64
		)
		if err := rows.Scan(&id, &rec.Name, &rec.NormalizedName, &category, &aliases, &related, &embedding); err != nil {
			return nil, fmt.Errorf("failed to scan skill record: %w", err)
		}
		rec.ID = id
		rec.Category = types.SkillCategory(category)
		rec.Aliases = aliases
		rec.Related = related
		rec.Embedding = embedding
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill records: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("skill_records table is empty")
	}

	return NewSnapshot(records), nil
}
