package validators

import (
	"bytes"
	"encoding/json"
)

// ObjectRules describes which keys of a JSON object are known and which of
// them must be present.
type ObjectRules struct {
	Fields   []string
	Required []string
}

var (
	// NoteInputRules applies to create and full replacement.
	NoteInputRules = ObjectRules{Fields: []string{"title", "description"}, Required: []string{"title"}}
	// NoteUpdateRules applies to partial updates, where every field is optional.
	NoteUpdateRules = ObjectRules{Fields: []string{"title", "description"}}
)

// Check reports required keys missing from obj and known keys set to null.
// It returns nil when obj passes.
func (o ObjectRules) Check(obj map[string]json.RawMessage) FieldErrors {
	fieldErrors := FieldErrors{}
	for _, field := range o.Required {
		if _, ok := obj[field]; !ok {
			fieldErrors.Add(field, "This field is required.")
		}
	}
	for _, field := range o.Fields {
		if raw, ok := obj[field]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			fieldErrors.Add(field, "This field may not be null.")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
