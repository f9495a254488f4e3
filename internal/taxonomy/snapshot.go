// Package taxonomy provides the read-only skill taxonomy consumed by the
// scoring engine. A Snapshot is constructed once (from the built-in seed, a
// JSON file, or Postgres) and never mutated afterwards, so concurrent readers
// need no locking.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/puneetrinity/evalmatch/internal/types"
)

// Snapshot is an immutable view of the skill taxonomy.
type Snapshot struct {
	records      []types.SkillRecord
	byNormalized map[string]int
	byAlias      map[string]int
}

// NewSnapshot builds a snapshot from skill records. Records missing a
// normalized name get one derived from the display name; duplicate normalized
// names keep the first record.
func NewSnapshot(records []types.SkillRecord) *Snapshot {
	s := &Snapshot{
		records:      make([]types.SkillRecord, 0, len(records)),
		byNormalized: make(map[string]int, len(records)),
		byAlias:      make(map[string]int),
	}

	for _, rec := range records {
		if rec.NormalizedName == "" {
			rec.NormalizedName = Normalize(rec.Name)
		}
		if rec.NormalizedName == "" {
			continue
		}
		if _, exists := s.byNormalized[rec.NormalizedName]; exists {
			continue
		}

		idx := len(s.records)
		s.records = append(s.records, rec)
		s.byNormalized[rec.NormalizedName] = idx
		for _, alias := range rec.Aliases {
			normalized := Normalize(alias)
			if normalized == "" {
				continue
			}
			if _, exists := s.byAlias[normalized]; !exists {
				s.byAlias[normalized] = idx
			}
		}
	}

	return s
}

// Normalize lowercases, trims and collapses internal whitespace in a skill name.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// LookupByNormalizedName returns the record whose normalized name matches.
func (s *Snapshot) LookupByNormalizedName(name string) (types.SkillRecord, bool) {
	idx, ok := s.byNormalized[Normalize(name)]
	if !ok {
		return types.SkillRecord{}, false
	}
	return s.records[idx], true
}

// LookupByAlias returns the record that lists the given string as an alias.
func (s *Snapshot) LookupByAlias(alias string) (types.SkillRecord, bool) {
	idx, ok := s.byAlias[Normalize(alias)]
	if !ok {
		return types.SkillRecord{}, false
	}
	return s.records[idx], true
}

// ListAll returns every record for fuzzy and semantic scans. The returned
// slice is a copy; the snapshot itself stays immutable.
func (s *Snapshot) ListAll() []types.SkillRecord {
	out := make([]types.SkillRecord, len(s.records))
	copy(out, s.records)
	return out
}

// RelatedNames returns the normalized related-skill names for a record,
// sorted for deterministic iteration.
func (s *Snapshot) RelatedNames(name string) []string {
	rec, ok := s.LookupByNormalizedName(name)
	if !ok {
		return nil
	}
	related := make([]string, 0, len(rec.Related))
	for _, r := range rec.Related {
		if normalized := Normalize(r); normalized != "" {
			related = append(related, normalized)
		}
	}
	sort.Strings(related)
	return related
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}
