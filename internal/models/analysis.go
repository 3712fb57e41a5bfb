package models

// Token is one annotated token of a text, as returned by the annotation
// server.
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Stop  bool   `json:"is_stop"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entity is a named-entity span.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation is the full per-text output of the annotation server.
type Annotation struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// Relationship is one weighted edge of the keyword graph. Source and Target
// follow the input order of the keyword list, so the pair is always stored
// with the earlier keyword first.
type Relationship struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}
