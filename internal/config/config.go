package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort             int           `mapstructure:"APP_PORT"`
	DatabasePath        string        `mapstructure:"DATABASE_PATH"`
	OllamaURL           string        `mapstructure:"OLLAMA_URL"`
	OllamaModel         string        `mapstructure:"OLLAMA_MODEL"`
	InitialSystemPrompt string        `mapstructure:"INITIAL_SYSTEM_PROMPT"`
	GatewayTimeout      time.Duration `mapstructure:"GATEWAY_TIMEOUT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	StaticDir           string        `mapstructure:"STATIC_DIR"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
}

const DefaultSystemPrompt = "You are a fun, energetic AI assistant who loves fonts, typography, and comic books! " +
	"Always respond enthusiastically and mention something about fonts or typography when relevant. " +
	"Keep responses conversational and engaging."

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3000)
	viper.SetDefault("DATABASE_PATH", "./data/sup_chat.db")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "gemma3:4b")
	viper.SetDefault("INITIAL_SYSTEM_PROMPT", DefaultSystemPrompt)
	viper.SetDefault("GATEWAY_TIMEOUT", "120s")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("STATIC_DIR", "./public")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// Env values arrive as a single comma-separated string.
	cfg.AllowedOrigins = splitOrigins(cfg.AllowedOrigins)

	return &cfg, nil
}

func splitOrigins(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
