package services

import (
	"sort"
	"strings"

	"github.com/bridgeit/directory/internal/domain/entities"
)

// FacetAxis names a filterable tag dimension.
type FacetAxis string

// The two tag axes: capability/theme tags and funding-call tags.
const (
	AxisTematica FacetAxis = "tematica"
	AxisConvo    FacetAxis = "convo"
)

// FacetCount is one tag with its frequency across the dataset.
type FacetCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// FacetTable holds the frequency tables for both axes, sorted by
// descending count with lexicographic tie-break.
type FacetTable struct {
	Tematica []FacetCount `json:"tematica"`
	Convo    []FacetCount `json:"convo"`
}

// BuildFacets aggregates tag frequencies across all entities.
func BuildFacets(items []entities.Entity) FacetTable {
	tem := make(map[string]int)
	con := make(map[string]int)
	for _, e := range items {
		for _, t := range e.Tematica {
			tem[t]++
		}
		for _, c := range e.Convo {
			con[c]++
		}
	}
	return FacetTable{
		Tematica: sortCounts(tem),
		Convo:    sortCounts(con),
	}
}

func sortCounts(counts map[string]int) []FacetCount {
	out := make([]FacetCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, FacetCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// FilterState is the active selection per axis plus the free-text
// query. It is a value: transitions return a new state and never mutate
// the receiver, so the presentation layer re-renders from explicit
// state instead of ambient page globals.
type FilterState struct {
	Tematica map[string]bool
	Convo    map[string]bool
	Query    string
}

// NewFilterState returns the empty selection.
func NewFilterState() FilterState {
	return FilterState{
		Tematica: map[string]bool{},
		Convo:    map[string]bool{},
	}
}

// ToggleFacet flips one tag on an axis and returns the new state.
func (s FilterState) ToggleFacet(axis FacetAxis, tag string) FilterState {
	next := s.clone()
	var set map[string]bool
	switch axis {
	case AxisTematica:
		set = next.Tematica
	case AxisConvo:
		set = next.Convo
	default:
		return next
	}
	if set[tag] {
		delete(set, tag)
	} else {
		set[tag] = true
	}
	return next
}

// WithQuery returns the state with a new free-text query.
func (s FilterState) WithQuery(q string) FilterState {
	next := s.clone()
	next.Query = q
	return next
}

// Clear resets both selections and the query, restoring the full
// sequence.
func (s FilterState) Clear() FilterState {
	return NewFilterState()
}

func (s FilterState) clone() FilterState {
	next := NewFilterState()
	for t := range s.Tematica {
		next.Tematica[t] = true
	}
	for c := range s.Convo {
		next.Convo[c] = true
	}
	next.Query = s.Query
	return next
}

// ApplyFilters yields the entities matching the state: OR within an
// axis, AND across axes, and a case-insensitive substring match of the
// query against name, pitch, summary and tags. An empty axis selection
// imposes no constraint.
func ApplyFilters(items []entities.Entity, state FilterState) []entities.Entity {
	query := strings.ToLower(strings.TrimSpace(state.Query))
	var out []entities.Entity
	for _, e := range items {
		if !hasIntersection(e.Tematica, state.Tematica) {
			continue
		}
		if !hasIntersection(e.Convo, state.Convo) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// hasIntersection is vacuously true for an empty selection.
func hasIntersection(tags []string, selection map[string]bool) bool {
	if len(selection) == 0 {
		return true
	}
	for _, t := range tags {
		if selection[t] {
			return true
		}
	}
	return false
}

func matchesQuery(e entities.Entity, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(e.Name), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Pitch), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(e.SummaryLong), loweredQuery) {
		return true
	}
	for _, t := range e.Tematica {
		if strings.Contains(t, loweredQuery) {
			return true
		}
	}
	for _, c := range e.Convo {
		if strings.Contains(c, loweredQuery) {
			return true
		}
	}
	return false
}
