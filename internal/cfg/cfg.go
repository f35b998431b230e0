package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

type Config struct {
	Http    *HTTPConfig
	Backend *BackendCfg
	Upload  *UploadCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type BackendCfg struct {
	BaseURL        string        // Origin каталожного бэкенда (CRUD-контракт)
	RequestTimeout time.Duration // Таймаут одного исходящего вызова
}

type UploadCfg struct {
	BaseURL        string // Origin эндпоинтов /upload/* (по умолчанию совпадает с BaseURL бэкенда)
	MaxFileSize    int64  // Лимит размера одного файла в байтах
	MaxFilesPerReq int    // Лимит на кол-во файлов в одном multipart-запросе
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	backend, err := loadBackendCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	upload, err := loadUploadCfg(backend)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Backend: backend,
		Upload:  upload,
	}, nil
}

func loadBackendCfg(log logger.Logger) (*BackendCfg, error) {
	const defaultRequestTimeout = 15 * time.Second

	baseURL := getEnv("BACKEND_BASE_URL")
	if baseURL == "" {
		err := fmt.Errorf("BACKEND_BASE_URL is required")
		log.Errorf(err, "missing BACKEND_BASE_URL")
		return nil, err
	}

	requestTimeout, err := parseDurationEnv("BACKEND_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		log.Errorf(err, "invalid BACKEND_REQUEST_TIMEOUT")
		return nil, err
	}

	return &BackendCfg{
		BaseURL:        baseURL,
		RequestTimeout: requestTimeout,
	}, nil
}

func loadUploadCfg(backend *BackendCfg) (*UploadCfg, error) {
	const (
		defaultMaxFileSize    = 15 << 20
		defaultMaxFilesPerReq = 10
	)

	maxFileSize, err := parseInt64Env("UPLOAD_MAX_FILE_SIZE", defaultMaxFileSize)
	if err != nil {
		return nil, e.Wrap("UPLOAD_MAX_FILE_SIZE", err)
	}

	maxFiles, err := parseIntEnv("UPLOAD_MAX_FILES", defaultMaxFilesPerReq)
	if err != nil {
		return nil, e.Wrap("UPLOAD_MAX_FILES", err)
	}

	return &UploadCfg{
		BaseURL:        getEnvOrDefault("UPLOAD_BASE_URL", backend.BaseURL),
		MaxFileSize:    maxFileSize,
		MaxFilesPerReq: maxFiles,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func getEnv(key string) string {
	return os.Getenv(key)
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}

func parseIntEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func parseInt64Env(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
