package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

const AppName = "atikia-plugin-server"

type Config struct {
	AppName string
	AppPort string

	// Database
	DBUrl string

	// Blob storage (S3-compatible)
	S3Bucket          string
	S3Region          string
	S3Endpoint        string // optional, for non-AWS providers
	S3AccessKeyID     string
	S3SecretAccessKey string
}

func LoadConfig() *Config {
	// .env is a local-dev convenience; deployed environments inject real
	// env vars.
	_ = godotenv.Load()

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	s3Bucket := os.Getenv("S3_BUCKET")
	if s3Bucket == "" {
		utils.Logger.Fatal("S3_BUCKET env var is missing")
	}
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		utils.Logger.Fatal("S3_REGION env var is missing")
	}
	s3AccessKeyID := os.Getenv("S3_ACCESS_KEY_ID")
	if s3AccessKeyID == "" {
		utils.Logger.Fatal("S3_ACCESS_KEY_ID env var is missing")
	}
	s3SecretAccessKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if s3SecretAccessKey == "" {
		utils.Logger.Fatal("S3_SECRET_ACCESS_KEY env var is missing")
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		DBUrl:             dbURL,
		S3Bucket:          s3Bucket,
		S3Region:          s3Region,
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     s3AccessKeyID,
		S3SecretAccessKey: s3SecretAccessKey,
	}
}
