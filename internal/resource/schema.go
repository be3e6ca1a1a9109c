package resource

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
)

// FieldType selects the input rendered for a form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldRichText FieldType = "richtext"
	FieldSelect   FieldType = "select"
)

// Field is one form field of an admin resource. Name doubles as the form
// input name and the API field name.
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Required    bool
	Placeholder string
	Options     []string // for FieldSelect
}

// Schema describes one admin resource: where it lives on the API and what
// its form looks like. One schema per entity type replaces the per-page
// duplication of the CRUD workflow.
type Schema struct {
	Name      string // URL segment on this site, e.g. "cars"
	Label     string // display name, e.g. "Mobil"
	Path      string // API collection path, e.g. "/admin/mobils"
	Fields    []Field
	HasImage  bool
	Singleton bool // zero-or-one record; create-or-update by id presence

	// PrepareSubmit, when set, rewrites the draft before it is sent
	// (used by blogs to sanitize rich-text content).
	PrepareSubmit func(d *Draft) error
}

// Draft is the in-progress form state for a resource, pre-submission.
type Draft struct {
	Values url.Values
}

// NewDraft returns an empty draft with every schema field present.
func (s Schema) NewDraft() Draft {
	v := url.Values{}
	for _, f := range s.Fields {
		v.Set(f.Name, "")
	}
	return Draft{Values: v}
}

// DraftFromRequest copies the submitted form into a draft. Validation stays
// at required-field level; semantic checks belong to the backend.
func (s Schema) DraftFromRequest(c *gin.Context) Draft {
	d := s.NewDraft()
	for _, f := range s.Fields {
		d.Values.Set(f.Name, c.PostForm(f.Name))
	}
	return d
}

// DraftFromEntity copies an entity's fields into a draft via its JSON form,
// so the form schema and the API payload can never drift apart.
func (s Schema) DraftFromEntity(entity interface{}) (Draft, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return Draft{}, err
	}
	var flat map[string]interface{}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return Draft{}, err
	}

	d := s.NewDraft()
	for _, f := range s.Fields {
		if v, ok := flat[f.Name]; ok && v != nil {
			d.Values.Set(f.Name, stringify(v))
		}
	}
	return d, nil
}

// MissingRequired returns the labels of required fields left empty.
func (s Schema) MissingRequired(d Draft) []string {
	var missing []string
	for _, f := range s.Fields {
		if f.Required && d.Values.Get(f.Name) == "" {
			missing = append(missing, f.Label)
		}
	}
	return missing
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
