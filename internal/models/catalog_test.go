package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSetUnmarshalFlat(t *testing.T) {
	var ts TriggerSet
	require.NoError(t, json.Unmarshal([]byte(`["horaire", "ouverture"]`), &ts))
	assert.Equal(t, TriggerFlat, ts.Kind)
	assert.Equal(t, []string{"horaire", "ouverture"}, ts.Direct)
}

func TestTriggerSetUnmarshalStructured(t *testing.T) {
	var ts TriggerSet
	require.NoError(t, json.Unmarshal([]byte(`{"direct": ["contacter"], "fuzzy": ["contact"]}`), &ts))
	assert.Equal(t, TriggerStructured, ts.Kind)
	assert.Equal(t, []string{"contacter"}, ts.Direct)
}

func TestTriggerSetUnmarshalInvalid(t *testing.T) {
	for _, raw := range []string{`42`, `"horaire"`, `{"fuzzy": ["x"]}`} {
		var ts TriggerSet
		assert.Error(t, json.Unmarshal([]byte(raw), &ts), raw)
	}
}

func TestTriggerSetMatches(t *testing.T) {
	ts := TriggerSet{Direct: []string{"horaire", "ouverture"}}
	assert.True(t, ts.Matches("horaire"))
	assert.False(t, ts.Matches("Horaire"))
	assert.False(t, ts.Matches("tarif"))
}
