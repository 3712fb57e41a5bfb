package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/config"
	"github.com/marccnfs/or4/pkg/stopwords"
)

// openClassPOS are the part-of-speech tags whose lemmas qualify as keyword
// candidates.
var openClassPOS = map[string]bool{
	"NOUN":  true,
	"PROPN": true,
	"VERB":  true,
	"ADJ":   true,
	"PRON":  true,
}

// KeywordService extracts the salient keywords of a message. The pipeline
// normalizes the text, collects candidate lemmas, weighs them with a TF-IDF
// model fit on the question corpus, blends in embedding similarity against
// the whole message, and keeps candidates above the score threshold.
type KeywordService struct {
	annotator Annotator
	embedder  Embedder
	stop      *stopwords.Policy
	logger    *zap.Logger

	forced         []string
	forcedSet      map[string]bool
	interrogatives []string

	scoreThreshold   float64
	tfidfWeight      float64
	similarityWeight float64

	// lemma cache for corpus documents, keyed by document text. The corpus
	// is append-only so entries never go stale.
	cacheMu    sync.Mutex
	lemmaCache map[string][]string
}

func NewKeywordService(
	annotator Annotator,
	embedder Embedder,
	stop *stopwords.Policy,
	langCfg config.LanguageConfig,
	kwCfg config.KeywordsConfig,
	logger *zap.Logger,
) *KeywordService {
	forced := make([]string, 0, len(langCfg.ForcedKeywords))
	forcedSet := make(map[string]bool, len(langCfg.ForcedKeywords))
	for _, f := range langCfg.ForcedKeywords {
		f = strings.ToLower(f)
		forced = append(forced, f)
		forcedSet[f] = true
	}
	interrogatives := make([]string, 0, len(langCfg.Interrogatives))
	for _, expr := range langCfg.Interrogatives {
		interrogatives = append(interrogatives, strings.ToLower(expr))
	}
	return &KeywordService{
		annotator:        annotator,
		embedder:         embedder,
		stop:             stop,
		logger:           logger,
		forced:           forced,
		forcedSet:        forcedSet,
		interrogatives:   interrogatives,
		scoreThreshold:   kwCfg.ScoreThreshold,
		tfidfWeight:      kwCfg.TFIDFWeight,
		similarityWeight: kwCfg.SimilarityWeight,
		lemmaCache:       make(map[string][]string),
	}
}

// Normalize strips stopwords from the text while keeping forced keywords and
// any token inside an interrogative expression. An empty or all-stopword
// input yields the empty string.
func (s *KeywordService) Normalize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	spans := s.protectedSpans(text)

	ann, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return "", err
	}

	var kept []string
	for _, tok := range ann.Tokens {
		lower := strings.ToLower(tok.Text)
		if !s.forcedSet[lower] && !overlapsAny(spans, tok.Start, tok.End) {
			if tok.Stop || s.stop.Contains(tok.Text) {
				continue
			}
		}
		kept = append(kept, tok.Text)
	}
	return strings.TrimSpace(strings.Join(kept, " ")), nil
}

// Extract returns the keyword lemmas of text, ranked by combined score in
// descending order. corpus holds the question texts the TF-IDF model is fit
// against.
func (s *KeywordService) Extract(ctx context.Context, text string, corpus []string) ([]string, error) {
	processed, err := s.Normalize(ctx, text)
	if err != nil {
		return nil, err
	}
	if processed == "" {
		return []string{}, nil
	}

	ann, err := s.annotator.Annotate(ctx, processed)
	if err != nil {
		return nil, err
	}

	// Candidate lemma occurrences, duplicates kept for term frequency.
	var occurrences []string
	for _, tok := range ann.Tokens {
		lower := strings.ToLower(tok.Text)
		if !openClassPOS[tok.POS] && !s.forcedSet[lower] {
			continue
		}
		lemma := strings.ToLower(tok.Lemma)
		if lemma == "" {
			lemma = lower
		}
		if !wordToken(lemma) {
			continue
		}
		occurrences = append(occurrences, lemma)
	}

	// Forced keywords present in the raw text but lost by normalization or
	// tagging get re-injected.
	rawLower := strings.ToLower(text)
	for _, f := range s.forced {
		if strings.Contains(rawLower, f) && !containsString(occurrences, f) {
			occurrences = append(occurrences, f)
		}
	}
	if len(occurrences) == 0 {
		return []string{}, nil
	}

	vocab := dedupeStrings(occurrences)

	weights, err := s.tfidfWeights(ctx, occurrences, vocab, corpus)
	if err != nil {
		return nil, err
	}

	inputs := append([]string{processed}, vocab...)
	vectors, err := s.embedder.Embed(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(inputs) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d inputs", len(vectors), len(inputs))
	}
	messageVec := vectors[0]

	type scoredKeyword struct {
		lemma string
		score float64
	}
	var scored []scoredKeyword
	for i, lemma := range vocab {
		weight := weights[lemma]
		if weight <= 0 {
			continue
		}
		similarity := cosineSimilarity(vectors[i+1], messageVec)
		score := s.tfidfWeight*weight + s.similarityWeight*similarity
		if score > s.scoreThreshold {
			scored = append(scored, scoredKeyword{lemma: lemma, score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	keywords := make([]string, len(scored))
	for i, sk := range scored {
		keywords[i] = sk.lemma
	}
	s.logger.Debug("keywords extracted",
		zap.Int("candidates", len(vocab)),
		zap.Strings("keywords", keywords))
	return keywords, nil
}

// SurfaceKeywords returns the content-bearing tokens of the raw text without
// any scoring: nouns, verbs and adjectives longer than two characters that
// are not stopwords.
func (s *KeywordService) SurfaceKeywords(ctx context.Context, text string) ([]models.Token, error) {
	ann, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}
	var out []models.Token
	for _, tok := range ann.Tokens {
		if tok.POS != "NOUN" && tok.POS != "VERB" && tok.POS != "ADJ" {
			continue
		}
		if tok.Stop || s.stop.Contains(tok.Text) {
			continue
		}
		if utf8.RuneCountInString(tok.Text) <= 2 {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

// tfidfWeights fits a TF-IDF model restricted to vocab against the corpus
// and scores the occurrence list. Document frequency is computed over
// lemmatized corpus documents; a term absent from the corpus weighs zero.
// Weights are l2-normalized, matching the usual smoothed-idf formulation.
func (s *KeywordService) tfidfWeights(ctx context.Context, occurrences, vocab, corpus []string) (map[string]float64, error) {
	n := len(corpus)
	df := make(map[string]int, len(vocab))
	for _, doc := range corpus {
		lemmas, err := s.corpusLemmas(ctx, doc)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(lemmas))
		for _, l := range lemmas {
			seen[l] = true
		}
		for _, term := range vocab {
			if seen[term] {
				df[term]++
			}
		}
	}

	tf := make(map[string]int, len(vocab))
	for _, l := range occurrences {
		tf[l]++
	}

	weights := make(map[string]float64, len(vocab))
	var sumSquares float64
	for _, term := range vocab {
		if df[term] == 0 {
			continue
		}
		idf := math.Log(float64(1+n)/float64(1+df[term])) + 1
		w := float64(tf[term]) * idf
		weights[term] = w
		sumSquares += w * w
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for term := range weights {
			weights[term] /= norm
		}
	}
	return weights, nil
}

// corpusLemmas returns the stop-filtered lemmas of a corpus document,
// annotating it on first use and caching the result.
func (s *KeywordService) corpusLemmas(ctx context.Context, doc string) ([]string, error) {
	s.cacheMu.Lock()
	cached, ok := s.lemmaCache[doc]
	s.cacheMu.Unlock()
	if ok {
		return cached, nil
	}

	ann, err := s.annotator.Annotate(ctx, doc)
	if err != nil {
		return nil, err
	}
	var lemmas []string
	for _, tok := range ann.Tokens {
		if tok.Stop || s.stop.Contains(tok.Text) {
			continue
		}
		lemma := strings.ToLower(tok.Lemma)
		if lemma == "" {
			lemma = strings.ToLower(tok.Text)
		}
		if !wordToken(lemma) {
			continue
		}
		lemmas = append(lemmas, lemma)
	}

	s.cacheMu.Lock()
	s.lemmaCache[doc] = lemmas
	s.cacheMu.Unlock()
	return lemmas, nil
}

func (s *KeywordService) protectedSpans(text string) [][2]int {
	lower := strings.ToLower(text)
	var spans [][2]int
	for _, expr := range s.interrogatives {
		from := 0
		for {
			i := strings.Index(lower[from:], expr)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, [2]int{start, start + len(expr)})
			from = start + len(expr)
		}
	}
	return spans
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

// wordToken reports whether s looks like a word of at least two characters.
func wordToken(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func dedupeStrings(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
