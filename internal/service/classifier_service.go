package service

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/internal/repository"
	"github.com/marccnfs/or4/pkg/config"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// ClassifierService trains a multinomial naive Bayes intent classifier over
// the corpus. Training runs as a background job; the finished model is
// published atomically so predictions never observe a half-trained state.
type ClassifierService struct {
	corpusRepo *repository.CorpusRepository
	testSplit  float64
	seed       int64
	logger     *zap.Logger

	model atomic.Pointer[bayesModel]

	// trainMu serializes training runs; jobsMu guards the job table.
	trainMu sync.Mutex
	jobsMu  sync.RWMutex
	jobs    map[string]*models.TrainingJob
}

func NewClassifierService(corpusRepo *repository.CorpusRepository, cfg config.ClassifierConfig, logger *zap.Logger) *ClassifierService {
	return &ClassifierService{
		corpusRepo: corpusRepo,
		testSplit:  cfg.TestSplit,
		seed:       cfg.ShuffleSeed,
		logger:     logger,
		jobs:       make(map[string]*models.TrainingJob),
	}
}

// StartTraining queues a background training run and returns its job.
func (s *ClassifierService) StartTraining() *models.TrainingJob {
	job := &models.TrainingJob{
		ID:        uuid.New(),
		Status:    models.JobQueued,
		CreatedAt: time.Now(),
	}
	s.jobsMu.Lock()
	s.jobs[job.ID.String()] = job
	s.jobsMu.Unlock()

	go s.runTraining(job.ID.String())
	return s.snapshotJob(job)
}

// Job returns a copy of the training job with the given id.
func (s *ClassifierService) Job(id string) (*models.TrainingJob, bool) {
	s.jobsMu.RLock()
	job, ok := s.jobs[id]
	s.jobsMu.RUnlock()
	if !ok {
		return nil, false
	}
	return s.snapshotJob(job), true
}

// Trained reports whether a model has been published.
func (s *ClassifierService) Trained() bool {
	return s.model.Load() != nil
}

// Predict classifies a message with the last published model.
func (s *ClassifierService) Predict(text string) (string, error) {
	model := s.model.Load()
	if model == nil {
		return "", ErrNotTrained
	}
	return model.predict(text), nil
}

func (s *ClassifierService) runTraining(jobID string) {
	s.trainMu.Lock()
	defer s.trainMu.Unlock()

	s.updateJob(jobID, func(job *models.TrainingJob) {
		job.Status = models.JobRunning
	})

	model, summary, err := s.train()
	now := time.Now()
	if err != nil {
		s.logger.Error("training failed", zap.String("job_id", jobID), zap.Error(err))
		s.updateJob(jobID, func(job *models.TrainingJob) {
			job.Status = models.JobFailed
			job.Error = err.Error()
			job.FinishedAt = now
		})
		return
	}

	s.model.Store(model)
	s.updateJob(jobID, func(job *models.TrainingJob) {
		job.Status = models.JobCompleted
		job.TrainExamples = summary.trainExamples
		job.TestExamples = summary.testExamples
		job.Labels = len(summary.labels)
		job.Accuracy = summary.accuracy
		job.FinishedAt = now
	})
	s.logger.Info("classifier trained",
		zap.String("job_id", jobID),
		zap.Int("train_examples", summary.trainExamples),
		zap.Int("test_examples", summary.testExamples),
		zap.Float64("accuracy", summary.accuracy))
}

type trainingSummary struct {
	trainExamples int
	testExamples  int
	labels        []string
	accuracy      float64
}

func (s *ClassifierService) train() (*bayesModel, trainingSummary, error) {
	pairs := s.corpusRepo.Pairs()
	if len(pairs) == 0 {
		return nil, trainingSummary{}, fmt.Errorf("corpus is empty")
	}
	for i, p := range pairs {
		if strings.TrimSpace(p.Text) == "" || strings.TrimSpace(p.Intent) == "" {
			return nil, trainingSummary{}, fmt.Errorf("corpus entry %d lacks text or intent", i)
		}
	}

	shuffled := make([]models.CorpusEntry, len(pairs))
	copy(shuffled, pairs)
	rng := rand.New(rand.NewSource(s.seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	testSize := int(math.Ceil(float64(len(shuffled)) * s.testSplit))
	if testSize >= len(shuffled) {
		testSize = len(shuffled) - 1
	}
	if testSize < 0 {
		testSize = 0
	}
	test := shuffled[:testSize]
	train := shuffled[testSize:]

	model := fitNaiveBayes(train)

	correct := 0
	for _, entry := range test {
		if model.predict(entry.Text) == entry.Intent {
			correct++
		}
	}
	accuracy := 0.0
	if len(test) > 0 {
		accuracy = float64(correct) / float64(len(test))
	}

	return model, trainingSummary{
		trainExamples: len(train),
		testExamples:  len(test),
		labels:        model.labels,
		accuracy:      accuracy,
	}, nil
}

func (s *ClassifierService) updateJob(id string, mutate func(*models.TrainingJob)) {
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()
	if job, ok := s.jobs[id]; ok {
		mutate(job)
	}
}

func (s *ClassifierService) snapshotJob(job *models.TrainingJob) *models.TrainingJob {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	clone := *job
	return &clone
}

// bayesModel is a multinomial naive Bayes classifier over bag-of-words
// counts with Laplace smoothing.
type bayesModel struct {
	labels   []string
	vocab    map[string]int
	logPrior []float64
	logCond  [][]float64
}

func fitNaiveBayes(train []models.CorpusEntry) *bayesModel {
	labelSet := make(map[string]bool)
	for _, entry := range train {
		labelSet[entry.Intent] = true
	}
	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	labelIndex := make(map[string]int, len(labels))
	for i, label := range labels {
		labelIndex[label] = i
	}

	vocab := make(map[string]int)
	docs := make([][]string, len(train))
	for i, entry := range train {
		tokens := tokenize(entry.Text)
		docs[i] = tokens
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}

	counts := make([][]float64, len(labels))
	totals := make([]float64, len(labels))
	classDocs := make([]float64, len(labels))
	for i := range counts {
		counts[i] = make([]float64, len(vocab))
	}
	for i, entry := range train {
		li := labelIndex[entry.Intent]
		classDocs[li]++
		for _, tok := range docs[i] {
			counts[li][vocab[tok]]++
			totals[li]++
		}
	}

	logPrior := make([]float64, len(labels))
	logCond := make([][]float64, len(labels))
	vocabSize := float64(len(vocab))
	for li := range labels {
		logPrior[li] = math.Log(classDocs[li] / float64(len(train)))
		logCond[li] = make([]float64, len(vocab))
		denom := totals[li] + vocabSize
		for ti := range logCond[li] {
			logCond[li][ti] = math.Log((counts[li][ti] + 1) / denom)
		}
	}

	return &bayesModel{
		labels:   labels,
		vocab:    vocab,
		logPrior: logPrior,
		logCond:  logCond,
	}
}

// predict returns the most likely label. Tokens outside the training
// vocabulary are skipped; ties resolve to the first label alphabetically.
func (m *bayesModel) predict(text string) string {
	best := 0
	bestScore := math.Inf(-1)
	for li := range m.labels {
		score := m.logPrior[li]
		for _, tok := range tokenize(text) {
			if ti, ok := m.vocab[tok]; ok {
				score += m.logCond[li][ti]
			}
		}
		if score > bestScore {
			bestScore = score
			best = li
		}
	}
	return m.labels[best]
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
