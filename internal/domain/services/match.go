package services

import (
	"sort"

	"github.com/bridgeit/directory/internal/domain/entities"
)

// Default ranking parameters. Thematic/capability overlap dominates
// funding-call overlap; the split is fixed, not learned.
const (
	DefaultTematicaWeight = 0.7
	DefaultConvoWeight    = 0.3
	DefaultMaxMatchedTags = 8
)

// Match is one ranked candidate with its score explanation.
type Match struct {
	Candidate       entities.Entity `json:"candidate"`
	Score           float64         `json:"score"`
	MatchedTematica []string        `json:"matched_tematica"`
	MatchedConvo    []string        `json:"matched_convo"`
}

// MatchService ranks entities of the complementary type by weighted
// Jaccard overlap across the two tag axes.
type MatchService struct {
	tematicaWeight float64
	convoWeight    float64
	maxMatchedTags int
}

// NewMatchService creates a ranker with the given axis weights. Zero
// values fall back to the defaults.
func NewMatchService(tematicaWeight, convoWeight float64, maxMatchedTags int) *MatchService {
	if tematicaWeight == 0 && convoWeight == 0 {
		tematicaWeight = DefaultTematicaWeight
		convoWeight = DefaultConvoWeight
	}
	if maxMatchedTags <= 0 {
		maxMatchedTags = DefaultMaxMatchedTags
	}
	return &MatchService{
		tematicaWeight: tematicaWeight,
		convoWeight:    convoWeight,
		maxMatchedTags: maxMatchedTags,
	}
}

// Rank scores all candidates of the complementary type against the
// source entity. Candidates with no overlap on either axis are dropped;
// ties keep input order.
func (s *MatchService) Rank(source entities.Entity, candidates []entities.Entity) []Match {
	target := complementaryType(source.Type)

	var out []Match
	for _, c := range candidates {
		if c.Type != target || c.ID == source.ID {
			continue
		}
		scoreTem := Jaccard(source.Tematica, c.Tematica)
		scoreCon := Jaccard(source.Convo, c.Convo)
		score := s.tematicaWeight*scoreTem + s.convoWeight*scoreCon
		if score <= 0 {
			continue
		}
		out = append(out, Match{
			Candidate:       c,
			Score:           score,
			MatchedTematica: commonTags(source.Tematica, c.Tematica, s.maxMatchedTags),
			MatchedConvo:    commonTags(source.Convo, c.Convo, s.maxMatchedTags),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// complementaryType pairs grupos with empresas and everything else,
// including pass-through types, with empresas.
func complementaryType(t entities.EntityType) entities.EntityType {
	if t == entities.TypeEmpresa {
		return entities.TypeGrupo
	}
	return entities.TypeEmpresa
}

// Jaccard returns intersection size over union size of two tag sets.
// Two empty sets score 0, not NaN.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, x := range a {
		setA[x] = true
	}
	setB := make(map[string]bool, len(b))
	for _, x := range b {
		setB[x] = true
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	inter := 0
	for x := range setA {
		if setB[x] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// commonTags returns the literal intersection in the order tags appear
// in b, capped for display.
func commonTags(a, b []string, max int) []string {
	setA := make(map[string]bool, len(a))
	for _, x := range a {
		setA[x] = true
	}
	var out []string
	for _, x := range b {
		if setA[x] {
			out = append(out, x)
		}
		if len(out) == max {
			break
		}
	}
	return out
}
