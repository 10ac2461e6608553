package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	OutputPath string
	OutputDir  string

	SourceBaseURL      string
	SourceBossPath     string
	SourceUserAgent    string
	SourceRateLimitRPS int
	SourceTimeoutMs    int

	XLSXExport bool

	WatchIntervalMin int

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:     getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputPath: getEnv("OUTPUT_PATH", filepath.Join(cwd, "sorted_toram_data.json")),
		OutputDir:  getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SourceBaseURL:      getEnv("TORAM_BASE_URL", "https://toram-id.com"),
		SourceBossPath:     getEnv("TORAM_BOSS_PATH", "/monster/type/boss"),
		SourceUserAgent:    getEnv("SOURCE_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"),
		SourceRateLimitRPS: getEnvInt("SOURCE_RATE_LIMIT_RPS", 2),
		SourceTimeoutMs:    getEnvInt("SOURCE_TIMEOUT_MS", 30000),

		XLSXExport: getEnvBool("XLSX_EXPORT", false),

		WatchIntervalMin: getEnvInt("WATCH_INTERVAL_MIN", 360),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

// XLSXPath is the spreadsheet written next to the JSON artifact when XLSX_EXPORT is on.
func (c Config) XLSXPath() string {
	base := strings.TrimSuffix(filepath.Base(c.OutputPath), filepath.Ext(c.OutputPath))
	return filepath.Join(c.OutputDir, base+".xlsx")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
