package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey           = "API_PORT"
	dbConnEnvKey            = "DB_CONNECTION_URL"
	jwtSecretEnvKey         = "JWT_SECRET"
	logLevelEnvKey          = "LOG_LEVEL"
	classifierURLEnvKey     = "CLASSIFIER_URL"
	classifierTimeoutEnvKey = "CLASSIFIER_TIMEOUT"
	downloadTimeoutEnvKey   = "DOWNLOAD_TIMEOUT"
	maxUploadBytesEnvKey    = "MAX_UPLOAD_BYTES"
	uploadDirEnvKey         = "UPLOAD_DIR"
	resetLinkBaseEnvKey     = "RESET_LINK_BASE"
	smtpHostEnvKey          = "SMTP_HOST"
	smtpPortEnvKey          = "SMTP_PORT"
	smtpTimeoutEnvKey       = "SMTP_TIMEOUT"
	emailUserEnvKey         = "EMAIL_USER"
	emailPassEnvKey         = "EMAIL_PASS"
	corsOriginsEnvKey       = "CORS_ORIGINS"
	s3BucketEnvKey          = "S3_BUCKET"
	s3RegionEnvKey          = "S3_REGION"
	s3EndpointEnvKey        = "S3_ENDPOINT"
	s3AccessKeyEnvKey       = "S3_ACCESS_KEY"
	s3SecretKeyEnvKey       = "S3_SECRET_KEY"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	LogLevel        string
	Classifier      Classifier
	Mail            Mail
	CORSOrigins     []string
	S3              S3
}

type Classifier struct {
	URL             string
	Timeout         time.Duration
	DownloadTimeout time.Duration
	MaxUploadBytes  int64
	UploadDir       string
}

type Mail struct {
	Host          string
	Port          int
	Username      string
	Password      string
	Timeout       time.Duration
	ResetLinkBase string
}

// S3 is optional; an empty Bucket disables the image archive.
type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// NewApp reads the application config from the environment. Values from a .env
// file in the working directory are loaded first and never override the process env.
func NewApp() (App, error) {
	_ = godotenv.Load()

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	classifierTimeout, err := durationEnv(classifierTimeoutEnvKey, 30*time.Second)
	if err != nil {
		return App{}, err
	}

	downloadTimeout, err := durationEnv(downloadTimeoutEnvKey, 15*time.Second)
	if err != nil {
		return App{}, err
	}

	maxUpload, err := intEnv(maxUploadBytesEnvKey, 10<<20)
	if err != nil {
		return App{}, err
	}

	smtpPort, err := intEnv(smtpPortEnvKey, 587)
	if err != nil {
		return App{}, err
	}

	smtpTimeout, err := durationEnv(smtpTimeoutEnvKey, 15*time.Second)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            stringEnv(apiPortEnvKey, "8080"),
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		LogLevel:        stringEnv(logLevelEnvKey, "info"),
		Classifier: Classifier{
			URL:             stringEnv(classifierURLEnvKey, "http://127.0.0.1:5001/predict"),
			Timeout:         classifierTimeout,
			DownloadTimeout: downloadTimeout,
			MaxUploadBytes:  int64(maxUpload),
			UploadDir:       stringEnv(uploadDirEnvKey, "uploads"),
		},
		Mail: Mail{
			Host:          stringEnv(smtpHostEnvKey, "smtp.gmail.com"),
			Port:          smtpPort,
			Username:      os.Getenv(emailUserEnvKey),
			Password:      os.Getenv(emailPassEnvKey),
			Timeout:       smtpTimeout,
			ResetLinkBase: stringEnv(resetLinkBaseEnvKey, "http://localhost:8080/reset-password"),
		},
		CORSOrigins: splitList(stringEnv(corsOriginsEnvKey, "*")),
		S3: S3{
			Bucket:    os.Getenv(s3BucketEnvKey),
			Region:    stringEnv(s3RegionEnvKey, "us-east-1"),
			Endpoint:  os.Getenv(s3EndpointEnvKey),
			AccessKey: os.Getenv(s3AccessKeyEnvKey),
			SecretKey: os.Getenv(s3SecretKeyEnvKey),
		},
	}, nil
}

func stringEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
