package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Registry struct {
		BaseURL           string `yaml:"base_url"`
		PageSize          int    `yaml:"page_size"`
		Sponsor           string `yaml:"sponsor"`
		InterventionQuery string `yaml:"intervention_query"`
		RetryMax          int    `yaml:"retry_max"`
		TimeoutSeconds    int    `yaml:"timeout_seconds"`
	} `yaml:"registry"`

	// Seed credentials for the first admin account. Optional: seeding is
	// skipped when empty.
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables
// when DATABASE_URL is set (test / container mode).
func LoadConfig() {
	var cfg Config

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		cfg.FirstAdminEmail = firstNonEmpty(os.Getenv("FIRST_ADMIN_EMAIL"), cfg.FirstAdminEmail)
		cfg.FirstAdminPassword = firstNonEmpty(os.Getenv("FIRST_ADMIN_PASSWORD"), cfg.FirstAdminPassword)

		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = firstNonEmpty(os.Getenv("SMTP_SERVER"), "smtp.gmail.com")
	cfg.Email.SMTPPort, _ = strconv.Atoi(firstNonEmpty(os.Getenv("SMTP_PORT"), "587"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = firstNonEmpty(os.Getenv("FROM_EMAIL"), cfg.Email.SMTPUsername)
	cfg.Email.UseTLS = true

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)

	AppConfig = &cfg
}

// applyDefaults fills registry defaults matching ClinicalTrials.gov API v2.
func applyDefaults(cfg *Config) {
	if cfg.Registry.BaseURL == "" {
		cfg.Registry.BaseURL = "https://clinicaltrials.gov/api/v2/studies"
	}
	if cfg.Registry.PageSize <= 0 {
		cfg.Registry.PageSize = 1000
	}
	if cfg.Registry.Sponsor == "" {
		cfg.Registry.Sponsor = "AstraZeneca"
	}
	if cfg.Registry.InterventionQuery == "" {
		cfg.Registry.InterventionQuery = "cell therapy OR gene therapy OR CAR-T OR adoptive cell transfer"
	}
	if cfg.Registry.TimeoutSeconds <= 0 {
		cfg.Registry.TimeoutSeconds = 60
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
