// Package config loads the VITTIN site configuration with Viper from
// defaults, an optional YAML file, VITTIN_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/pkg/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "VITTIN"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Content ContentConfig `mapstructure:"content"`
	Log     LogConfig     `mapstructure:"log"`
	Site    SiteConfig    `mapstructure:"site"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type ChatConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"`
	SystemInstruction string        `mapstructure:"system_instruction"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	MaxSessions       int           `mapstructure:"max_sessions"`
	MaxMessageLength  int           `mapstructure:"max_message_length"`
	Rate              float64       `mapstructure:"rate"`
	Burst             int           `mapstructure:"burst"`
	MaxConnsPerIP     int           `mapstructure:"max_conns_per_ip"`
}

type ContentConfig struct {
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SiteConfig struct {
	Locale  string `mapstructure:"locale"`
	BaseURL string `mapstructure:"base_url"`
	Year    int    `mapstructure:"year"`
}

// SetDefaults registers every default and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("chat.api_key", "")
	v.SetDefault("chat.model", chat.DefaultModel)
	v.SetDefault("chat.system_instruction", chat.DefaultSystemInstruction)
	v.SetDefault("chat.session_ttl", 30*time.Minute)
	v.SetDefault("chat.max_sessions", 1000)
	v.SetDefault("chat.max_message_length", 1000)
	v.SetDefault("chat.rate", 0.5)
	v.SetDefault("chat.burst", 5)
	v.SetDefault("chat.max_conns_per_ip", 4)

	v.SetDefault("content.file", "")
	v.SetDefault("content.watch", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("site.locale", "pt-BR")
	v.SetDefault("site.base_url", "http://localhost:8080")
	v.SetDefault("site.year", 2024)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential keeps working under the names other Gemini tooling uses.
	_ = v.BindEnv("chat.api_key", EnvPrefix+"_CHAT_API_KEY", "GEMINI_API_KEY", "API_KEY")
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Comma-separated origins from the environment arrive as one element.
	cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins)
	cfg.Chat.APIKey = strings.TrimSpace(cfg.Chat.APIKey)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration values for correctness.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("%w: server: %w", ErrInvalidConfig, err)
	}
	if err := validateChat(&cfg.Chat); err != nil {
		return fmt.Errorf("%w: chat: %w", ErrInvalidConfig, err)
	}
	if err := validateContent(&cfg.Content); err != nil {
		return fmt.Errorf("%w: content: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	if f := strings.ToLower(cfg.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: log: format must be text or json, got %q", ErrInvalidConfig, cfg.Log.Format)
	}
	if err := validateSite(&cfg.Site); err != nil {
		return fmt.Errorf("%w: site: %w", ErrInvalidConfig, err)
	}
	return nil
}

func validateServer(s *ServerConfig) error {
	// 0 lets the OS pick a port.
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", s.Port)
	}
	if strings.ContainsAny(s.Host, " ;&|$`<>\"'\\") {
		return fmt.Errorf("host contains invalid characters: %q", s.Host)
	}
	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("allowed origin %q must be scheme://host[:port]", origin)
		}
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return errors.New("read and write timeouts must be positive")
	}
	return nil
}

func validateChat(c *ChatConfig) error {
	switch {
	case strings.TrimSpace(c.Model) == "":
		return errors.New("model is required")
	case c.SessionTTL <= 0:
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	case c.MaxSessions < 1:
		return fmt.Errorf("max_sessions must be at least 1, got %d", c.MaxSessions)
	case c.MaxMessageLength < 1:
		return fmt.Errorf("max_message_length must be at least 1, got %d", c.MaxMessageLength)
	case c.Rate <= 0:
		return fmt.Errorf("rate must be positive, got %g", c.Rate)
	case c.Burst < 1:
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	return nil
}

func validateContent(c *ContentConfig) error {
	if c.Watch && c.File == "" {
		return errors.New("watch requires a content file")
	}
	if c.File != "" && filepath.Ext(c.File) != ".yaml" && filepath.Ext(c.File) != ".yml" {
		return fmt.Errorf("content file %q must be .yaml or .yml", c.File)
	}
	return nil
}

func validateSite(s *SiteConfig) error {
	if strings.TrimSpace(s.Locale) == "" {
		return errors.New("locale is required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute URL", s.BaseURL)
	}
	if s.Year < 1970 {
		return fmt.Errorf("year %d is not plausible", s.Year)
	}
	return nil
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ChatEnabled reports whether a provider credential is configured.
func (c *Config) ChatEnabled() bool {
	return c.Chat.APIKey != ""
}
