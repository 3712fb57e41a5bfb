package models

import (
	"encoding/json"
	"fmt"
)

// TriggerKind tags the two catalog trigger representations.
type TriggerKind int

const (
	// TriggerFlat is a bare list of trigger keywords.
	TriggerFlat TriggerKind = iota
	// TriggerStructured is an object with at least a "direct" trigger set.
	// Other fields are reserved for future matching strategies and are
	// ignored.
	TriggerStructured
)

// TriggerSet is the trigger representation of one catalog intent.
type TriggerSet struct {
	Kind   TriggerKind
	Direct []string
}

// Matches reports whether keyword is one of the set's direct triggers.
func (t TriggerSet) Matches(keyword string) bool {
	for _, trigger := range t.Direct {
		if trigger == keyword {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts either representation: a JSON array of strings, or
// an object carrying a "direct" array. Anything else is a schema error.
func (t *TriggerSet) UnmarshalJSON(data []byte) error {
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		t.Kind = TriggerFlat
		t.Direct = flat
		return nil
	}

	var structured struct {
		Direct *[]string `json:"direct"`
	}
	if err := json.Unmarshal(data, &structured); err == nil && structured.Direct != nil {
		t.Kind = TriggerStructured
		t.Direct = *structured.Direct
		return nil
	}

	return fmt.Errorf("triggers must be a list or an object with a 'direct' key")
}

// CatalogIntent pairs an intent name with its triggers. Catalog intents keep
// the declaration order of the catalog file: resolution iterates them in
// order and the first match wins.
type CatalogIntent struct {
	Name     string
	Triggers TriggerSet
}

// Catalog is the loaded intent catalog: ordered trigger entries plus the
// intent → response map.
type Catalog struct {
	Intents   []CatalogIntent
	Responses map[string]string
}

// Response returns the canned response for intent, or ok=false when the
// intent has no entry.
func (c *Catalog) Response(intent string) (string, bool) {
	resp, ok := c.Responses[intent]
	return resp, ok
}
