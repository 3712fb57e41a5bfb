package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/internal/repository"
	"github.com/marccnfs/or4/pkg/config"
)

func newTestClassifier(t *testing.T, corpus string, testSplit float64) *ClassifierService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))
	repo, err := repository.NewCorpusRepository(path, zap.NewNop())
	require.NoError(t, err)
	return NewClassifierService(repo, config.ClassifierConfig{
		TestSplit:   testSplit,
		ShuffleSeed: 42,
	}, zap.NewNop())
}

const classifierCorpus = `[
    {"text": "Quels sont vos horaires", "intent": "horaires"},
    {"text": "À quelle heure ouvrez-vous", "intent": "horaires"},
    {"text": "Vos horaires d'ouverture", "intent": "horaires"},
    {"text": "Comment vous contacter", "intent": "contact"},
    {"text": "Quel est votre numéro de téléphone", "intent": "contact"},
    {"text": "Je veux vous joindre par téléphone", "intent": "contact"},
    {"text": "Quels sont vos tarifs", "intent": "tarifs"},
    {"text": "Combien coûte un abonnement", "intent": "tarifs"},
    {"text": "Le prix des abonnements", "intent": "tarifs"},
    {"text": "Vos tarifs et prix", "intent": "tarifs"}
]`

func waitForJob(t *testing.T, svc *ClassifierService, id string) *models.TrainingJob {
	t.Helper()
	var job *models.TrainingJob
	require.Eventually(t, func() bool {
		j, ok := svc.Job(id)
		if !ok {
			return false
		}
		job = j
		return j.Status == models.JobCompleted || j.Status == models.JobFailed
	}, 5*time.Second, 10*time.Millisecond)
	return job
}

func TestPredictBeforeTraining(t *testing.T) {
	svc := newTestClassifier(t, classifierCorpus, 0.2)

	assert.False(t, svc.Trained())
	_, err := svc.Predict("Quels sont vos horaires")
	assert.True(t, errors.Is(err, ErrNotTrained))
}

func TestTrainingJobLifecycle(t *testing.T) {
	svc := newTestClassifier(t, classifierCorpus, 0.2)

	job := svc.StartTraining()
	require.NotEmpty(t, job.ID)

	done := waitForJob(t, svc, job.ID.String())
	require.Equal(t, models.JobCompleted, done.Status)
	assert.Equal(t, 8, done.TrainExamples)
	assert.Equal(t, 2, done.TestExamples)
	assert.Equal(t, 3, done.Labels)
	assert.False(t, done.FinishedAt.IsZero())
	assert.True(t, svc.Trained())
}

func TestPredictAfterTraining(t *testing.T) {
	// Train on the full corpus so predictions do not depend on the split.
	svc := newTestClassifier(t, classifierCorpus, 0)

	job := svc.StartTraining()
	done := waitForJob(t, svc, job.ID.String())
	require.Equal(t, models.JobCompleted, done.Status)

	intent, err := svc.Predict("Quel est le prix d'un abonnement")
	require.NoError(t, err)
	assert.Equal(t, "tarifs", intent)

	intent, err = svc.Predict("Un numéro de téléphone pour vous joindre")
	require.NoError(t, err)
	assert.Equal(t, "contact", intent)
}

func TestTrainingIsDeterministic(t *testing.T) {
	first := newTestClassifier(t, classifierCorpus, 0.2)
	second := newTestClassifier(t, classifierCorpus, 0.2)

	jobA := waitForJob(t, first, first.StartTraining().ID.String())
	jobB := waitForJob(t, second, second.StartTraining().ID.String())

	require.Equal(t, models.JobCompleted, jobA.Status)
	require.Equal(t, models.JobCompleted, jobB.Status)
	assert.Equal(t, jobA.Accuracy, jobB.Accuracy)
	assert.Equal(t, jobA.TrainExamples, jobB.TrainExamples)
}

func TestTrainingFailsOnEmptyCorpus(t *testing.T) {
	svc := newTestClassifier(t, `[]`, 0.2)

	job := svc.StartTraining()
	done := waitForJob(t, svc, job.ID.String())
	assert.Equal(t, models.JobFailed, done.Status)
	assert.NotEmpty(t, done.Error)
	assert.False(t, svc.Trained())
}

func TestJobNotFound(t *testing.T) {
	svc := newTestClassifier(t, classifierCorpus, 0.2)

	_, ok := svc.Job("no-such-job")
	assert.False(t, ok)
}
