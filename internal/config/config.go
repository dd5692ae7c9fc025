package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Store struct {
		// Driver selects the document-store backend: "mongo" (default)
		// or "postgres".
		Driver      string `yaml:"driver"`
		MongoURI    string `yaml:"mongoUri"`
		Database    string `yaml:"database"`
		PostgresDSN string `yaml:"postgresDsn"`
	} `yaml:"store"`

	AI struct {
		GroqAPIKey   string `yaml:"groqApiKey"`
		GroqModel    string `yaml:"groqModel"`
		OpenAIAPIKey string `yaml:"openaiApiKey"`
		OpenAIModel  string `yaml:"openaiModel"`
	} `yaml:"ai"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`
}

// Load reads the yaml config file when present and applies environment
// overrides on top. A missing file is fine; defaults plus environment are
// enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Store.Driver = "mongo"
	cfg.Store.MongoURI = "mongodb://localhost:27017"
	cfg.Store.Database = "archadvisor"
	cfg.CORS.AllowedOrigins = []string{"*"}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("MONGO_URL"); v != "" {
		c.Store.MongoURI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Store.Database = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Store.PostgresDSN = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.AI.GroqAPIKey = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		c.AI.GroqModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.AI.OpenAIModel = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		c.Minio.Endpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		c.Minio.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		c.Minio.SecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		c.Minio.BucketName = v
	}
}
