package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 POSTCRAFT_LLM_API_KEY
const EnvPrefix = "POSTCRAFT"

// LoadConfig 从 configPath 目录加载 config.yaml，环境变量可覆盖同名配置
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.upload_dir", "static/uploads")
	v.SetDefault("server.processed_dir", "static/processed")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 60)

	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.stats_ttl", 300)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("image_gen.url", "https://image.pollinations.ai")

	v.SetDefault("branding.logo_path", "static/logo.png")
	v.SetDefault("branding.font_path", "static/fonts/arial.ttf")

	v.SetDefault("social.linkedin.api_base", "https://api.linkedin.com")
	v.SetDefault("social.facebook.graph_base", "https://graph.facebook.com")
	v.SetDefault("social.instagram.graph_version", "v18.0")

	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)

	v.SetDefault("logstash.index", "logstash-postcraft")

	v.SetDefault("cron.media_clean_spec", "@hourly")
	v.SetDefault("cron.media_retention_hours", 24)
}
