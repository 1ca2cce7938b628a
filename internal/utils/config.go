package utils

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port         string `yaml:"PORT"`
	AllowOrigins string `yaml:"ALLOW_ORIGINS"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Open Food Facts search endpoint
	OpenFoodFactsURL string `yaml:"OPEN_FOOD_FACTS_URL"`
}

const defaultOpenFoodFactsURL = "https://world.openfoodfacts.org/cgi/search.pl"

// LoadConfig reads the yaml config file once at process start. The resulting
// struct is passed down explicitly; nothing reads it through package state.
func LoadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	if config.Port == "" {
		config.Port = "3000"
	}
	if config.OpenFoodFactsURL == "" {
		config.OpenFoodFactsURL = defaultOpenFoodFactsURL
	}
	return config, nil
}
