package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// maxCommentBudget bounds how many comments one analysis may request.
const maxCommentBudget = 500

type Config struct {
	CommentSentiment CommentSentimentConfig `yaml:"comment_sentiment"`
	Email            EmailConfig            `yaml:"email"`
	Monitoring       MonitoringConfig       `yaml:"monitoring"`
	Schedule         string                 `yaml:"schedule"`
}

type CommentSentimentConfig struct {
	YouTube     YouTubeConfig `yaml:"youtube"`
	MaxComments int64         `yaml:"max_comments"`
	Workers     int           `yaml:"workers"`
	TopWords    int           `yaml:"top_words"`
	Videos      []string      `yaml:"videos"`
	ExportDir   string        `yaml:"export_dir"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

// Configured reports whether email delivery is set up at all. Digest emails
// are optional; an unset block just disables them.
func (e *EmailConfig) Configured() bool {
	return e.SMTPServer != ""
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.CommentSentiment.YouTube.APIKey == "" {
		cfg.CommentSentiment.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.Email.Username == "" {
		cfg.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if cfg.Email.Password == "" {
		cfg.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}

	if cfg.CommentSentiment.MaxComments == 0 {
		cfg.CommentSentiment.MaxComments = 300
	}
	if cfg.CommentSentiment.Workers == 0 {
		cfg.CommentSentiment.Workers = 4
	}
	if cfg.CommentSentiment.TopWords == 0 {
		cfg.CommentSentiment.TopWords = 20
	}
	if cfg.Monitoring.HealthPort == 0 {
		cfg.Monitoring.HealthPort = 8080
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 0 9 * * *" // Daily at 9 AM (six fields, seconds first)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CommentSentiment.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or comment_sentiment.youtube.api_key)")
	}
	if c.CommentSentiment.MaxComments < 1 || c.CommentSentiment.MaxComments > maxCommentBudget {
		return fmt.Errorf("comment_sentiment.max_comments must be between 1 and %d, got %d",
			maxCommentBudget, c.CommentSentiment.MaxComments)
	}
	if c.CommentSentiment.Workers < 1 {
		return fmt.Errorf("comment_sentiment.workers must be at least 1, got %d", c.CommentSentiment.Workers)
	}
	if c.CommentSentiment.TopWords < 0 {
		return fmt.Errorf("comment_sentiment.top_words must not be negative, got %d", c.CommentSentiment.TopWords)
	}
	if c.Email.Configured() {
		if c.Email.SMTPPort == 0 {
			return fmt.Errorf("email.smtp_port is required when email is configured")
		}
		if c.Email.Username == "" || c.Email.Password == "" {
			return fmt.Errorf("email credentials are required when email is configured (set EMAIL_USERNAME and EMAIL_PASSWORD)")
		}
		if c.Email.FromEmail == "" || c.Email.ToEmail == "" {
			return fmt.Errorf("email.from_email and email.to_email are required when email is configured")
		}
	}
	return nil
}
