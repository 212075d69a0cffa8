package schema

import (
	"fmt"
	"strings"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/ports"
)

// BuildEntity converts one raw row into a canonical Entity. It is total:
// the worst case is an entity with empty optional fields and a
// positional id. Rows are never rejected here; the directory drops
// contentless entities afterwards.
func BuildEntity(rec ports.Record, index int) entities.Entity {
	rawType := entities.NormalizeEntityType(Resolve(rec, Fields.Type))
	typ := entities.EntityType(rawType)
	if rawType == "unknown" {
		typ = entities.TypeGrupo
	}

	id := strings.TrimSpace(Resolve(rec, Fields.ID))
	if id == "" {
		id = fmt.Sprintf("row-%d", index)
	}

	return entities.Entity{
		ID:          id,
		Type:        typ,
		Name:        strings.TrimSpace(Resolve(rec, Fields.Name)),
		Pitch:       strings.TrimSpace(Resolve(rec, Fields.Pitch)),
		SummaryLong: strings.TrimSpace(Resolve(rec, Fields.Summary)),
		Tematica:    entities.SplitTags(Resolve(rec, Fields.Tematica)),
		Convo:       entities.SplitTags(Resolve(rec, Fields.Convo)),
		ProfileURL:  entities.SafeHref(Resolve(rec, Fields.ProfileURL)),
		Logo:        entities.SafeHref(Resolve(rec, Fields.Logo)),
		Web:         entities.SafeURL(Resolve(rec, Fields.Web)),
		PDF:         entities.SafeURL(Resolve(rec, Fields.PDF)),
		Videos:      entities.ExtractURLs(Resolve(rec, Fields.Videos)),
		Links:       entities.ExtractURLs(Resolve(rec, Fields.Links)),
	}
}
