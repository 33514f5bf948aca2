// =============================================================================
// Sales Analytics System - Catalog Mapping
// =============================================================================

package catalog

import (
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// Mapping is the id -> product index over the fetched catalog.
//
// The mapping preserves the insertion order of ids. The enrichment fallback
// depends on "the last catalog key" being well defined, so the order in
// which products arrived from the service is part of the mapping's contract.
type Mapping struct {
	entries map[int]types.CatalogEntry
	ids     []int
}

// BuildMapping indexes the fetched products by id. Products without an id
// are skipped. Absent metadata fields get their defaults here, so every
// entry in the mapping is fully populated. A duplicate id overwrites the
// entry but keeps the id's original position.
func BuildMapping(products []Product) *Mapping {
	m := &Mapping{entries: make(map[int]types.CatalogEntry)}

	for _, p := range products {
		if p.ID == nil {
			continue
		}
		entry := types.CatalogEntry{
			ID:       *p.ID,
			Title:    stringOr(p.Title, types.NoMatchValue),
			Category: stringOr(p.Category, types.NoMatchValue),
			Brand:    stringOr(p.Brand, types.NoMatchValue),
			Rating:   floatOr(p.Rating, 0),
		}
		if _, exists := m.entries[entry.ID]; !exists {
			m.ids = append(m.ids, entry.ID)
		}
		m.entries[entry.ID] = entry
	}

	return m
}

// Len returns the number of distinct catalog ids.
func (m *Mapping) Len() int {
	return len(m.ids)
}

// Get looks up a catalog entry by id.
func (m *Mapping) Get(id int) (types.CatalogEntry, bool) {
	entry, ok := m.entries[id]
	return entry, ok
}

// Has reports whether an id exists in the mapping.
func (m *Mapping) Has(id int) bool {
	_, ok := m.entries[id]
	return ok
}

// LastID returns the last catalog id in insertion order. ok is false for an
// empty mapping.
func (m *Mapping) LastID() (int, bool) {
	if len(m.ids) == 0 {
		return 0, false
	}
	return m.ids[len(m.ids)-1], true
}

// IDs returns the catalog ids in insertion order. The returned slice is a
// copy.
func (m *Mapping) IDs() []int {
	ids := make([]int, len(m.ids))
	copy(ids, m.ids)
	return ids
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func floatOr(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}
