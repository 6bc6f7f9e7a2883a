package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// =======================
// APP CONFIG
// =======================

// Config is built once in main and passed explicitly to constructors,
// never read through package globals.
type Config struct {
	Port string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret      string
	AccessTokenTTL time.Duration
	CookieSecure   bool

	// Default color for new courses (6 hex digits, no '#').
	CourseDefaultColor string

	// Blob store (Aliyun OSS)
	OSSEndpoint  string
	OSSAccessKey string
	OSSSecretKey string
	OSSBucket    string
	OSSPrefix    string
}

var hexColorRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Load reads .env (when present) then builds Config from ENV.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using system ENV")
	}

	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		JWTSecret:    GetEnv("JWT_SECRET"),
		CookieSecure: GetEnv("COOKIE_SECURE", "false") == "true",

		CourseDefaultColor: GetEnv("COURSE_DEFAULT_COLOR", "039BE5"),

		OSSEndpoint:  GetEnv("ALI_OSS_ENDPOINT"),
		OSSAccessKey: GetEnv("ALI_OSS_ACCESS_KEY"),
		OSSSecretKey: GetEnv("ALI_OSS_SECRET_KEY"),
		OSSBucket:    GetEnv("ALI_OSS_BUCKET"),
		OSSPrefix:    GetEnv("ALI_OSS_PREFIX"),
	}

	ttl := GetEnv("ACCESS_TOKEN_TTL", "24h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.AccessTokenTTL = d

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if !hexColorRe.MatchString(cfg.CourseDefaultColor) {
		return nil, fmt.Errorf("COURSE_DEFAULT_COLOR must be 6 hex digits, got %q", cfg.CourseDefaultColor)
	}

	return cfg, nil
}

// HasOSS reports whether all blob store ENV values are present.
func (c *Config) HasOSS() bool {
	return c.OSSEndpoint != "" && c.OSSAccessKey != "" && c.OSSSecretKey != "" && c.OSSBucket != ""
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================

type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
