package config

import (
	"errors"
	"os"
)

// Config carries every environment-sourced setting the service needs.
// Loaded once in main and passed down explicitly.
type Config struct {
	DatabaseURL      string
	Port             string
	APIRoot          string
	JWTSecret        string
	UploadDir        string
	PublicUploadPath string
}

func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiRoot := os.Getenv("API_URL")
	if apiRoot == "" {
		apiRoot = "/api/v1"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}

	publicUploadPath := os.Getenv("PUBLIC_UPLOAD_PATH")
	if publicUploadPath == "" {
		publicUploadPath = "/public/uploads"
	}

	return &Config{
		DatabaseURL:      databaseURL,
		Port:             port,
		APIRoot:          apiRoot,
		JWTSecret:        jwtSecret,
		UploadDir:        uploadDir,
		PublicUploadPath: publicUploadPath,
	}, nil
}
