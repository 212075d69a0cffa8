package schema

import (
	"strings"

	"github.com/bridgeit/directory/internal/domain/ports"
)

// Resolve returns the first non-empty raw value for a field spec.
//
// Exact candidates are scanned first, in order: survey forms drift
// (accents, parenthetical hints, capitalization) and the candidate
// order encodes which historical header wins when several are present.
// Only when no exact candidate holds a value are the record's actual
// headers matched against the fallback patterns, pattern by pattern.
func Resolve(rec ports.Record, spec FieldSpec) string {
	for _, key := range spec.Exact {
		if v, ok := rec.Values[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	for _, re := range spec.Patterns {
		for _, header := range rec.Headers {
			if !re.MatchString(header) {
				continue
			}
			if v := rec.Values[header]; strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return ""
}
