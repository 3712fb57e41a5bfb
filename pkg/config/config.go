package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Annotator  AnnotatorConfig
	Embedding  EmbeddingConfig
	Data       DataConfig
	Admin      AdminConfig
	Language   LanguageConfig
	Keywords   KeywordsConfig
	Graph      GraphConfig
	Classifier ClassifierConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AnnotatorConfig points at the token annotation server (tokenization,
// lemmas, POS tags, named entities).
type AnnotatorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type EmbeddingConfig struct {
	BaseURL string
	Model   string
}

// DataConfig locates the JSON documents backing the service.
type DataConfig struct {
	Dir            string
	CorpusFile     string
	CatalogFile    string
	GlossaryFile   string
	ClustersFile   string
	StatisticsFile string
}

type AdminConfig struct {
	APIKey string
}

// LanguageConfig carries the French-specific word lists. The values below
// default to the lists the service shipped with; all of them can be replaced
// per deployment.
type LanguageConfig struct {
	StopwordAdditions []string
	StopwordRemovals  []string
	ForcedKeywords    []string
	Interrogatives    []string
}

type KeywordsConfig struct {
	ScoreThreshold   float64
	TFIDFWeight      float64
	SimilarityWeight float64
}

type GraphConfig struct {
	FallbackThreshold float64
}

// ClassifierConfig controls the statistical intent classifier. Strategy
// selects how incoming messages are resolved: "dictionary" uses the trigger
// catalog, "classifier" uses the last trained model.
type ClassifierConfig struct {
	Strategy    string
	TestSplit   float64
	ShuffleSeed int64
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	annotatorTimeout, _ := strconv.Atoi(getEnv("ANNOTATOR_TIMEOUT", "30"))
	scoreThreshold, _ := strconv.ParseFloat(getEnv("KEYWORD_SCORE_THRESHOLD", "0.3"), 64)
	tfidfWeight, _ := strconv.ParseFloat(getEnv("KEYWORD_TFIDF_WEIGHT", "0.5"), 64)
	similarityWeight, _ := strconv.ParseFloat(getEnv("KEYWORD_SIMILARITY_WEIGHT", "0.5"), 64)
	fallbackThreshold, _ := strconv.ParseFloat(getEnv("GRAPH_FALLBACK_THRESHOLD", "0.2"), 64)
	testSplit, _ := strconv.ParseFloat(getEnv("CLASSIFIER_TEST_SPLIT", "0.2"), 64)
	shuffleSeed, _ := strconv.ParseInt(getEnv("CLASSIFIER_SHUFFLE_SEED", "42"), 10, 64)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Annotator: AnnotatorConfig{
			BaseURL: getEnv("ANNOTATOR_BASE_URL", "http://localhost:5000"),
			Timeout: time.Duration(annotatorTimeout) * time.Second,
		},
		Embedding: EmbeddingConfig{
			BaseURL: getEnv("EMBEDDING_BASE_URL", "http://localhost:11434"),
			Model:   getEnv("EMBEDDING_MODEL", "nomic-embed-text:latest"),
		},
		Data: DataConfig{
			Dir:            getEnv("DATA_DIR", "base"),
			CorpusFile:     getEnv("CORPUS_FILE", "intents_and_questions.json"),
			CatalogFile:    getEnv("CATALOG_FILE", "intents_and_responses.json"),
			GlossaryFile:   getEnv("GLOSSARY_FILE", "glossary.json"),
			ClustersFile:   getEnv("CLUSTERS_FILE", "clusters.json"),
			StatisticsFile: getEnv("STATISTICS_FILE", "statistics.json"),
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		Language: LanguageConfig{
			StopwordAdditions: getEnvList("STOPWORD_ADDITIONS", "neuf,qu,quelqu"),
			StopwordRemovals:  getEnvList("STOPWORD_REMOVALS", "public,artificielle,potins,numerique"),
			ForcedKeywords:    getEnvList("FORCED_KEYWORDS", "potins,numériques"),
			Interrogatives:    getEnvList("INTERROGATIVES", "c'est quoi,qu'est-ce que,qu'est ce que,quel,comment"),
		},
		Keywords: KeywordsConfig{
			ScoreThreshold:   scoreThreshold,
			TFIDFWeight:      tfidfWeight,
			SimilarityWeight: similarityWeight,
		},
		Graph: GraphConfig{
			FallbackThreshold: fallbackThreshold,
		},
		Classifier: ClassifierConfig{
			Strategy:    getEnv("INTENT_STRATEGY", "dictionary"),
			TestSplit:   testSplit,
			ShuffleSeed: shuffleSeed,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
