package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	HTTPAddr string
	DataDir  string

	Store StoreConfig
	Log   LogConfig

	Support  SupportConfig
	WhatsApp WhatsAppConfig
	Wedding  WeddingConfig
}

// StoreConfig selects and configures the slot store backend
type StoreConfig struct {
	Backend       string // file, sqlite, redis or memory
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// SupportConfig holds the support chat and contact channel settings
type SupportConfig struct {
	ReplyDelay time.Duration
	Phone      string
	Email      string
	WhatsApp   string
}

type WhatsAppConfig struct {
	Enabled bool
	DataDir string
}

// WeddingConfig is used to fill in invitation messages
type WeddingConfig struct {
	Date      string
	Location  string
	BrideName string
	GroomName string
}

var defaults = map[string]any{
	"HTTP_ADDR":           ":8080",
	"DATA_DIR":            "data",
	"STORE_BACKEND":       "file",
	"SQLITE_PATH":         "",
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"REDIS_PREFIX":        "hallbook",
	"LOG_LEVEL":           "info",
	"LOG_FORMAT":          "json",
	"LOG_OUTPUT":          "stderr",
	"SUPPORT_REPLY_DELAY": "1s",
	"SUPPORT_PHONE":       "+919876543210",
	"SUPPORT_EMAIL":       "support@hyderabadhallbook.com",
	"SUPPORT_WHATSAPP":    "919876543210",
	"WHATSAPP_ENABLED":    false,
	"WHATSAPP_DATA_DIR":   "",
	"WEDDING_DATE":        "Saturday, February 14, 2025",
	"WEDDING_LOCATION":    "Venue TBD",
	"BRIDE_NAME":          "Bride",
	"GROOM_NAME":          "Groom",
}

// LoadConfig loads configuration from .env files, environment variables and
// an optional config file, falling back to defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	dataDir := v.GetString("DATA_DIR")

	sqlitePath := v.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = dataDir + "/hallbook.db"
	}
	waDir := v.GetString("WHATSAPP_DATA_DIR")
	if waDir == "" {
		waDir = dataDir + "/whatsapp"
	}
	delay := v.GetDuration("SUPPORT_REPLY_DELAY")
	if delay <= 0 {
		delay = time.Second
	}

	return &Config{
		HTTPAddr: v.GetString("HTTP_ADDR"),
		DataDir:  dataDir,
		Store: StoreConfig{
			Backend:       strings.ToLower(v.GetString("STORE_BACKEND")),
			SQLitePath:    sqlitePath,
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
			RedisPrefix:   v.GetString("REDIS_PREFIX"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Support: SupportConfig{
			ReplyDelay: delay,
			Phone:      v.GetString("SUPPORT_PHONE"),
			Email:      v.GetString("SUPPORT_EMAIL"),
			WhatsApp:   v.GetString("SUPPORT_WHATSAPP"),
		},
		WhatsApp: WhatsAppConfig{
			Enabled: v.GetBool("WHATSAPP_ENABLED"),
			DataDir: waDir,
		},
		Wedding: WeddingConfig{
			Date:      v.GetString("WEDDING_DATE"),
			Location:  v.GetString("WEDDING_LOCATION"),
			BrideName: v.GetString("BRIDE_NAME"),
			GroomName: v.GetString("GROOM_NAME"),
		},
	}
}

// loadEnvFiles loads .env then .env.local; missing files are ignored.
// godotenv never overrides variables already set in the environment.
func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}
}
