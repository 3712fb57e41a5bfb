package dto

import "github.com/marccnfs/or4/internal/models"

type AnalyzeRequest struct {
	Message string `json:"message"`
}

type AnalyzeResponse struct {
	Response    string          `json:"response"`
	Keywords    []string        `json:"keywords"`
	Intent      string          `json:"intent"`
	Context     string          `json:"context"`
	Entities    []models.Entity `json:"entities"`
	Explanation string          `json:"explanation"`
}

type ExtractKeywordsRequest struct {
	Text string `json:"text"`
}

// ExtractedKeyword mirrors the raw keyword endpoint: surface form, lemma and
// POS tag, without scores.
type ExtractedKeyword struct {
	Keyword string `json:"keyword"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
}

type ExtractKeywordsResponse struct {
	Keywords []ExtractedKeyword `json:"keywords"`
}

type RelationshipsRequest struct {
	Keywords []string `json:"keywords"`
}

type RelationshipsResponse struct {
	Relationships []models.Relationship `json:"relationships"`
}

type GlossaryRequest struct {
	Term string `json:"term"`
}

type GlossaryResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
