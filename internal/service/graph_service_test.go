package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/config"
)

func newTestGraphService(embedder Embedder) *GraphService {
	return NewGraphService(embedder, config.GraphConfig{FallbackThreshold: 0.2}, zap.NewNop())
}

func TestRelationshipsFewerThanTwoKeywords(t *testing.T) {
	svc := newTestGraphService(&fakeEmbedder{})

	for _, keywords := range [][]string{nil, {}, {"seul"}} {
		edges, err := svc.Relationships(context.Background(), keywords)
		require.NoError(t, err)
		assert.NotNil(t, edges)
		assert.Empty(t, edges)
	}
}

func TestRelationshipsMedianThresholdIsStrict(t *testing.T) {
	// Three keywords, pairwise similarities 1.0 (a,b), 0 (a,c), 0 (b,c).
	// Median 0: only the (a,b) edge survives, the edges at exactly the
	// threshold do not.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {1, 0, 0},
		"c": {0, 1, 0},
	}}
	svc := newTestGraphService(embedder)

	edges, err := svc.Relationships(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, models.Relationship{Source: "a", Target: "b", Weight: 1}, edges[0])
}

func TestRelationshipsSinglePairMedianEqualsSimilarity(t *testing.T) {
	// With one pair the median is the pair's own similarity, so the strict
	// comparison always rejects it.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {1, 1, 0},
	}}
	svc := newTestGraphService(embedder)

	edges, err := svc.Relationships(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestRelationshipsDegenerateVectorsUseFallback(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {0, 0, 0},
		"b": {0, 0, 0},
		"c": {0, 0, 0},
	}}
	svc := newTestGraphService(embedder)

	// All similarities are 0 against the 0.2 fallback threshold: no edges,
	// but no error either.
	edges, err := svc.Relationships(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestRelationshipsWeightsRoundedToTwoDecimals(t *testing.T) {
	// cos(a,b) = 1/sqrt(2) ≈ 0.7071, cos pairs with c are lower so the
	// median lets (a,b) through.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {1, 1, 0},
		"c": {0, 0, 1},
	}}
	svc := newTestGraphService(embedder)

	edges, err := svc.Relationships(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].Source)
	assert.Equal(t, "b", edges[0].Target)
	assert.Equal(t, 0.71, edges[0].Weight)
}

func TestRelationshipsPairOrderFollowsInput(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"x": {1, 0, 0},
		"y": {1, 0.2, 0},
		"z": {0, 1, 0},
	}}
	svc := newTestGraphService(embedder)

	edges, err := svc.Relationships(context.Background(), []string{"x", "y", "z"})
	require.NoError(t, err)
	for _, edge := range edges {
		assert.NotEqual(t, edge.Source, edge.Target)
		// Source always precedes Target in the input list.
		assert.Less(t, indexOf(t, []string{"x", "y", "z"}, edge.Source),
			indexOf(t, []string{"x", "y", "z"}, edge.Target))
	}
}

func indexOf(t *testing.T, list []string, target string) int {
	t.Helper()
	for i, s := range list {
		if s == target {
			return i
		}
	}
	t.Fatalf("%q not in %v", target, list)
	return -1
}
