// Package entities contains core domain data structures.
package entities

// EntityType represents the category of a directory entry.
// Unrecognized source values are carried through lowered; the builder
// maps an unresolvable value to the default TypeGrupo.
type EntityType string

// Canonical entity types. The directory renders one column per type.
const (
	TypeGrupo   EntityType = "grupo"
	TypeEmpresa EntityType = "empresa"
)

// Entity represents one directory record (a research group or a company)
// built from a single spreadsheet row. Entities are immutable after
// construction and are rebuilt from the source on every load.
type Entity struct {
	ID          string     `json:"id"`
	Type        EntityType `json:"type"`
	Name        string     `json:"name"`
	Pitch       string     `json:"pitch,omitempty"`
	SummaryLong string     `json:"summary_long,omitempty"`
	Tematica    []string   `json:"tematica"`
	Convo       []string   `json:"convo"`
	ProfileURL  string     `json:"profile_url,omitempty"`
	Logo        string     `json:"logo,omitempty"`
	Web         string     `json:"web,omitempty"`
	PDF         string     `json:"pdf,omitempty"`
	Videos      []string   `json:"videos,omitempty"`
	Links       []string   `json:"links,omitempty"`
}

// DisplayName returns the entity name or a placeholder when the source
// row left it blank.
func (e Entity) DisplayName() string {
	if e.Name == "" {
		return "(sin nombre)"
	}
	return e.Name
}

// HasContent reports whether the row carried any descriptive text.
// Rows without name, pitch and summary are dropped by the directory.
func (e Entity) HasContent() bool {
	return e.Name != "" || e.Pitch != "" || e.SummaryLong != ""
}
