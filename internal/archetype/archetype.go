package archetype

import (
	"fmt"
	"slices"
)

// Dimension is a discriminating skin dimension used in scoring profiles.
type Dimension string

const (
	DimOil         Dimension = "oil"
	DimSensitivity Dimension = "sensitivity"
	DimBreakouts   Dimension = "breakouts"
	DimMaturity    Dimension = "maturity"
	DimHormonal    Dimension = "hormonal"
)

// AllDimensions returns all dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{DimOil, DimSensitivity, DimBreakouts, DimMaturity, DimHormonal}
}

// Range is the expected band for a dimension on a 0–10 scale.
type Range struct {
	Lo float64
	Hi float64
}

// Contains reports whether v falls inside the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Archetype is one of the fixed output categories the classifier assigns.
// Archetypes are defined at build time and never created or destroyed at runtime.
type Archetype struct {
	ID      string
	Name    string
	Emoji   string
	Summary string

	// Profile maps each discriminating dimension to its expected band.
	// Used for display and for sanity-checking the question bank, not for
	// scoring; scoring runs entirely on option deltas.
	Profile map[Dimension]Range
}

// registry holds the archetype set with precomputed indices.
type registry struct {
	ordered []Archetype
	byID    map[string]*Archetype
	rank    map[string]int
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(archetypes []Archetype) *registry {
	r := &registry{
		ordered: archetypes,
		byID:    make(map[string]*Archetype, len(archetypes)),
		rank:    make(map[string]int, len(archetypes)),
	}
	for i := range r.ordered {
		r.byID[r.ordered[i].ID] = &r.ordered[i]
		r.rank[r.ordered[i].ID] = i
	}
	return r
}

// Get returns an archetype by ID, or an error if not found.
func Get(id string) (Archetype, error) {
	a, ok := reg.byID[id]
	if !ok {
		return Archetype{}, fmt.Errorf("archetype not found: %q", id)
	}
	return *a, nil
}

// Exists reports whether the given archetype ID is defined.
func Exists(id string) bool {
	_, ok := reg.byID[id]
	return ok
}

// All returns all archetypes in definition order.
func All() []Archetype {
	return slices.Clone(reg.ordered)
}

// Count returns the number of defined archetypes.
func Count() int {
	return len(reg.ordered)
}

// PriorityRank returns the tie-break rank of an archetype: lower wins.
// Rank is definition order, so the earliest-defined archetype takes
// priority when scores are exactly equal. Unknown IDs rank last.
func PriorityRank(id string) int {
	if r, ok := reg.rank[id]; ok {
		return r
	}
	return len(reg.ordered)
}
