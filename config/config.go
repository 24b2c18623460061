package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// Duration wraps time.Duration so yaml values like "30s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Mongo      MongoConfig      `yaml:"mongo"`
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Amazon     AmazonConfig     `yaml:"amazon"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
	Completion CompletionConfig `yaml:"completion"`
	Cache      CacheConfig      `yaml:"cache"`
	Kafka      KafkaConfig      `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port               int      `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type MongoConfig struct {
	// URI and credentials come from MONGO_URI; only the database name
	// lives in the config file.
	DBName string `yaml:"db_name"`
}

type YouTubeConfig struct {
	BaseURL  string `yaml:"base_url"`
	PageSize int    `yaml:"page_size"`
}

type AmazonConfig struct {
	BaseURL string `yaml:"base_url"`
	Country string `yaml:"country"`
}

type SentimentConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// CompletionConfig selects the completion provider used for the
// positive/negative comment summaries.
// Provider is one of "openrouter" or "gemini".
type CompletionConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type CacheConfig struct {
	TTL Duration `yaml:"ttl"`
}

// KafkaConfig configures the telemetry event producer.
// An empty Brokers string disables event publishing entirely.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "revana"
	}
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if c.YouTube.PageSize <= 0 || c.YouTube.PageSize > 100 {
		c.YouTube.PageSize = 100
	}
	if c.Amazon.BaseURL == "" {
		c.Amazon.BaseURL = "https://real-time-amazon-data.p.rapidapi.com"
	}
	if c.Amazon.Country == "" {
		c.Amazon.Country = "US"
	}
	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = Duration(30 * time.Second)
	}
	if c.Completion.Provider == "" {
		c.Completion.Provider = "openrouter"
	}
	if c.Completion.BaseURL == "" {
		c.Completion.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Completion.Model == "" {
		c.Completion.Model = "deepseek/deepseek-chat-v3-0324:free"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = Duration(5 * time.Minute)
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Env keys for secrets. Values are read from the process environment
// (populated from .env by InitApp) and never from config.yaml.
const (
	EnvMongoURI         = "MONGO_URI"
	EnvYouTubeAPIKey    = "YOUTUBE_API_KEY"
	EnvRapidAPIKey      = "RAPIDAPI_KEY"
	EnvOpenRouterAPIKey = "OPENROUTER_API_KEY"
	EnvGeminiAPIKey     = "GEMINI_API_KEY"
	EnvJWTSecret        = "JWT_SECRET"
)

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
