// Package schema maps loosely-named spreadsheet columns onto the
// canonical entity shape.
package schema

import "regexp"

// FieldSpec declares how one entity attribute is resolved from a row:
// an ordered list of exact header names tried first, then name patterns
// matched against the actual headers. Exact-candidate order encodes the
// preference among historically-used form questions and must be kept.
type FieldSpec struct {
	Exact    []string
	Patterns []*regexp.Regexp
}

// Fields is the schema contract with the published spreadsheets. The
// candidate lists cover every header the deployed forms have used;
// changing an entry breaks drop-in compatibility with existing sheets.
var Fields = struct {
	Type       FieldSpec
	Name       FieldSpec
	Pitch      FieldSpec
	Summary    FieldSpec
	Tematica   FieldSpec
	Convo      FieldSpec
	ProfileURL FieldSpec
	Logo       FieldSpec
	PDF        FieldSpec
	Web        FieldSpec
	Videos     FieldSpec
	Links      FieldSpec
	ID         FieldSpec
}{
	Type: FieldSpec{
		Exact: []string{
			"Tipo", "Eres...", "type", "TYPE", "Entidad", "Entity",
			"Tipo de entidad", "Tipo de organización", "Tipo de organizacion",
		},
		Patterns: regexps(`(?i)^tipo`, `(?i)eres`, `(?i)entity`),
	},
	Name: FieldSpec{
		Exact: []string{
			"Nombre de la entidad", "Nombre", "Name", "Organización",
			"Organizacion", "Entidad", "TITLE", "Title",
		},
		Patterns: regexps(`(?i)^nombre`, `(?i)organiza`, `(?i)entidad`, `(?i)name`, `(?i)title`),
	},
	Pitch: FieldSpec{
		Exact: []string{
			"Elevator pitch",
			"Elevator Pitch",
			"Pitch",
			"Elevator pitch (máx. 280 caracteres)",
			"Elevator pitch (max. 280 caracteres)",
			"Elevator pitch (máx. 300 caracteres)",
			"Propuesta de valor",
			"Propuesta de valor (1-2 frases)",
			"Mensaje corto",
			"Resumen en 1 frase",
		},
		Patterns: regexps(`(?i)elevator`, `(?i)\bpitch\b`, `(?i)propuesta.*valor`, `(?i)mensaje.*corto`, `(?i)1\s*frase`),
	},
	Summary: FieldSpec{
		Exact: []string{
			"Resumen corto de actividades (máx. 1200 caracteres)",
			"Resumen corto de actividades (máx. 1200 caracteres).",
			"Resumen corto de actividades",
			"Resumen largo",
			"Resumen",
			"Descripción",
			"Descripcion",
		},
		Patterns: regexps(`(?i)resumen`, `(?i)descrip`),
	},
	Tematica: FieldSpec{
		Exact: []string{
			"Keywords temática", "Keywords tematica", "Temática", "Tematica",
			"THEMATIC", "TAGS", "Tags", "Keywords", "Capacidades",
			"Capacidades técnicas", "Capacidades tecnicas",
		},
		Patterns: regexps(`(?i)temat`, `(?i)capacidad`, `(?i)keyword.*tema`, `(?i)\btags?\b`),
	},
	Convo: FieldSpec{
		Exact: []string{
			"Keywords convocatorias",
			"Keywords convocatoria",
			"Convocatorias",
			"Convocatorias de interés",
			"Convocatorias de interes",
			"Convocatorias objetivo",
			"Convocatorias a las que concurrir",
			"Convocatorias a las que quiere concurrir",
			"Convocatorias a las que queréis concurrir",
			"Calls",
			"CALLS",
			"Funding",
			"Programas",
			"Programas objetivo",
		},
		Patterns: regexps(`(?i)convoc`, `(?i)\bcalls?\b`, `(?i)program`, `(?i)funding`),
	},
	ProfileURL: FieldSpec{
		Exact: []string{
			"Página Bridge it",
			"Pagina Bridge it",
			"Página Bridge it (opcional)",
			"Pagina Bridge it (opcional)",
			"Página (opcional)",
			"Pagina (opcional)",
			"Página",
			"Pagina",
			"Perfil",
			"Profile",
			"URL página",
			"URL pagina",
			"URL perfil",
			"Profile URL",
		},
		Patterns: regexps(`(?i)p(á|a)gina`, `(?i)perfil`, `(?i)\bprofile\b`, `(?i)url.*(p(á|a)gina|perfil)`),
	},
	Logo: FieldSpec{
		Exact: []string{
			"Logo (URL)", "Logo", "Imagen (URL)", "Imagen", "Image URL",
			"Logo / Imagen (URL)", "URL logo", "URL imagen",
		},
		Patterns: regexps(`(?i)logo`, `(?i)imagen`, `(?i)\bimage\b`),
	},
	PDF: FieldSpec{
		Exact: []string{
			"PDF", "Pdf", "PDF link", "Material PDF", "Enlace PDF",
			"Brochure", "BROCHURE",
		},
		Patterns: regexps(`(?i)\bpdf\b`),
	},
	Web: FieldSpec{
		Exact: []string{
			"Web", "Website", "URL", "Url", "Página web", "Pagina web", "Site",
		},
		Patterns: regexps(`(?i)web`, `(?i)website`, `(?i)p(á|a)gina web`),
	},
	Videos: FieldSpec{
		Exact:    []string{"Vídeos", "Videos", "Video", "YouTube", "Vimeo"},
		Patterns: regexps(`(?i)video`, `(?i)youtube`, `(?i)vimeo`),
	},
	Links: FieldSpec{
		Exact: []string{
			"Enlaces", "Links", "Material", "MATERIAL",
			"Otros enlaces", "Otros links",
		},
		Patterns: regexps(`(?i)enlaces?`, `(?i)\blinks?\b`, `(?i)material`),
	},
	ID: FieldSpec{
		Exact: []string{
			"ID", "Id", "id", "Timestamp", "Marca temporal",
			"Marca temporal (timestamp)",
		},
		Patterns: regexps(`(?i)timestamp`, `(?i)marca temporal`),
	},
}

func regexps(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
