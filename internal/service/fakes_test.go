package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/marccnfs/or4/internal/models"
)

var fakeTokenPattern = regexp.MustCompile(`\S+`)

// fakeAnnotator tokenizes on whitespace and looks lemmas and POS tags up in
// fixed tables, which is enough linguistic behavior for pipeline tests.
type fakeAnnotator struct {
	lemmas   map[string]string
	pos      map[string]string
	entities []models.Entity
	calls    int
}

func (f *fakeAnnotator) Annotate(_ context.Context, text string) (*models.Annotation, error) {
	f.calls++
	var tokens []models.Token
	for _, span := range fakeTokenPattern.FindAllStringIndex(text, -1) {
		word := text[span[0]:span[1]]
		lower := strings.ToLower(word)
		lemma := f.lemmas[lower]
		if lemma == "" {
			lemma = lower
		}
		pos := f.pos[lower]
		if pos == "" {
			pos = "X"
		}
		tokens = append(tokens, models.Token{
			Text:  word,
			Lemma: lemma,
			POS:   pos,
			Start: span[0],
			End:   span[1],
		})
	}
	return &models.Annotation{Tokens: tokens, Entities: f.entities}, nil
}

// fakeEmbedder returns fixed vectors per text. Unknown texts get a default
// unit vector so cosine similarity stays well defined.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := f.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float32{1, 0, 0}
		}
	}
	return out, nil
}
