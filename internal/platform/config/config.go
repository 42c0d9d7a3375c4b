// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// StorageUploadThing はUploadThing互換のHTTP APIでオブジェクトを削除します。
	StorageUploadThing = "uploadthing"
	// StorageS3 はS3互換ストレージでオブジェクトを削除します。
	StorageS3 = "s3"
	// StorageNone は外部ストレージを使用しません。
	StorageNone = "none"
)

// Config はサーバーとジョブで共有する設定値です。
type Config struct {
	Port     string
	LogLevel slog.Level

	JWTSecret string
	TokenTTL  time.Duration

	DB DBConfig

	RedisHost     string
	RedisPort     string
	RedisPassword string
	FeedCacheTTL  time.Duration

	Storage StorageConfig
	Cleanup CleanupConfig

	WebDir      string
	CORSOrigins []string

	AllowAnonymousComments bool
	AutoVerifyUsers        bool
}

// DBConfig はデータベース接続設定です。
type DBConfig struct {
	Driver        string // "postgres" or "sqlite"
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	SQLitePath    string
	RunMigrations bool
}

// StorageConfig は外部オブジェクトストレージの設定です。
type StorageConfig struct {
	Provider          string
	UploadThingURL    string
	UploadThingSecret string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKey       string
	S3SecretKey       string
	Timeout           time.Duration
}

// CleanupConfig は参照切れメディアのクリーンアップジョブの設定です。
type CleanupConfig struct {
	ProbeTimeout  time.Duration
	ProbesPerWave int           // 1ウィンドウあたりの確認件数。0以下で無制限
	WaveInterval  time.Duration // ウィンドウの長さ
}

// Load は環境変数から設定を読み込みます。
// 値が不正な場合はデフォルト値を使用し、警告を出力します。
func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  parseLevel(os.Getenv("LOG_LEVEL")),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", 7*24*time.Hour),
		DB: DBConfig{
			Driver:        strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:          os.Getenv("DB_HOST"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			SQLitePath:    getEnv("SQLITE_PATH", "./journal.db"),
			RunMigrations: getBool("RUN_MIGRATIONS", false),
		},
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		FeedCacheTTL:  getDuration("FEED_CACHE_TTL", time.Minute),
		Storage: StorageConfig{
			Provider:          strings.ToLower(getEnv("STORAGE_PROVIDER", StorageUploadThing)),
			UploadThingURL:    getEnv("UPLOADTHING_API_URL", "https://api.uploadthing.com/v6"),
			UploadThingSecret: os.Getenv("UPLOADTHING_SECRET"),
			S3Bucket:          os.Getenv("S3_BUCKET"),
			S3Region:          getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:        os.Getenv("S3_ENDPOINT"),
			S3AccessKey:       os.Getenv("S3_ACCESS_KEY_ID"),
			S3SecretKey:       os.Getenv("S3_SECRET_ACCESS_KEY"),
			Timeout:           getDuration("STORAGE_TIMEOUT", 10*time.Second),
		},
		Cleanup: CleanupConfig{
			ProbeTimeout:  getDuration("CLEANUP_PROBE_TIMEOUT", 10*time.Second),
			ProbesPerWave: getInt("CLEANUP_PROBES_PER_WAVE", 8),
			WaveInterval:  getDuration("CLEANUP_WAVE_INTERVAL", time.Second),
		},
		WebDir:                 os.Getenv("WEB_DIR"),
		CORSOrigins:            splitList(os.Getenv("CORS_ORIGINS")),
		AllowAnonymousComments: getBool("ALLOW_ANONYMOUS_COMMENTS", false),
		AutoVerifyUsers:        getBool("AUTO_VERIFY_USERS", false),
	}
}

// Addr はHTTPサーバーの待ち受けアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}

// RedisAddr はRedisのアドレスを返します。ホスト未設定の場合は空文字です。
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
