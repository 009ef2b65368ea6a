package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/monee/internal/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyStoragePath     = "storage.path"
	KeyChatEndpoint    = "chat.endpoint"
	KeyChatTimeout     = "chat.timeout"
	KeyChatAttempts    = "chat.attempts"
	KeyChatRateLimit   = "chat.rate_limit"
	KeyDashboardSplash = "dashboard.splash"
	KeyDashboardTick   = "dashboard.tick"
	KeyDashboardTheme  = "dashboard.theme"
)

// EnvPrefix is prepended to every environment override, e.g. MONEE_CHAT_ENDPOINT.
const EnvPrefix = "MONEE"

// Settings is the resolved application configuration.
type Settings struct {
	LogLevel      string
	LogFormat     string
	StoragePath   string
	ChatEndpoint  string
	Theme         string
	ChatTimeout   time.Duration
	SplashDelay   time.Duration
	TickInterval  time.Duration
	ChatAttempts  int
	ChatRateLimit int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyChatEndpoint, "")
	v.SetDefault(KeyChatTimeout, 30*time.Second)
	v.SetDefault(KeyChatAttempts, 2)
	v.SetDefault(KeyChatRateLimit, 20)
	v.SetDefault(KeyDashboardSplash, 2*time.Second)
	v.SetDefault(KeyDashboardTick, 25*time.Millisecond)
	v.SetDefault(KeyDashboardTheme, "monee")
}

// ConfigureEnv maps MONEE_* variables onto the dotted keys.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(ExpandPath(path)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load resolves Settings from v. It follows this precedence:
// 1. Viper configuration (flags, config file or MONEE_ env vars)
// 2. MONEEBOT_URL for the chat endpoint
// 3. Default values
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
		StoragePath:   ExpandPath(v.GetString(KeyStoragePath)),
		ChatEndpoint:  v.GetString(KeyChatEndpoint),
		ChatTimeout:   v.GetDuration(KeyChatTimeout),
		ChatAttempts:  v.GetInt(KeyChatAttempts),
		ChatRateLimit: v.GetInt(KeyChatRateLimit),
		SplashDelay:   v.GetDuration(KeyDashboardSplash),
		TickInterval:  v.GetDuration(KeyDashboardTick),
		Theme:         v.GetString(KeyDashboardTheme),
	}

	if s.ChatEndpoint == "" {
		s.ChatEndpoint = os.Getenv("MONEEBOT_URL")
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the rest of the application cannot use.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, s.LogFormat)
	}
	if s.ChatTimeout < 0 {
		return fmt.Errorf("%w: chat timeout must not be negative", common.ErrInvalidConfig)
	}
	if s.ChatAttempts < 1 {
		return fmt.Errorf("%w: chat attempts must be at least 1", common.ErrInvalidConfig)
	}
	if s.ChatRateLimit < 0 {
		return fmt.Errorf("%w: chat rate limit must not be negative", common.ErrInvalidConfig)
	}
	if s.SplashDelay < 0 {
		return fmt.Errorf("%w: splash delay must not be negative", common.ErrInvalidConfig)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", common.ErrInvalidConfig)
	}
	return nil
}
