package models

// IntentUnknown is the sentinel intent for utterances the resolver could not
// classify. Corpus entries carrying it form the labeling queue.
const IntentUnknown = "unknown"

// CorpusEntry is one reference utterance. The corpus file is an append-only
// JSON array of these.
type CorpusEntry struct {
	Text   string `json:"text"`
	Intent string `json:"intent"`
}
