package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	ImageGen ImageGenConfig `mapstructure:"image_gen"`
	Branding BrandingConfig `mapstructure:"branding"`
	Social   SocialConfig   `mapstructure:"social"`
	Mail     MailConfig     `mapstructure:"mail"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	BaseURL      string `mapstructure:"base_url"`
	UploadDir    string `mapstructure:"upload_dir"`
	ProcessedDir string `mapstructure:"processed_dir"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	StatsTTL int    `mapstructure:"stats_ttl"`
}

type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	URL         string  `mapstructure:"url"`
	VisionModel string  `mapstructure:"vision_model"`
	ApiKey      string  `mapstructure:"api_key"`
	PromptPath  string  `mapstructure:"prompt_path"`
	Temperature float64 `mapstructure:"temperature"`
}

// MinIOConfig MinIO配置，作为品牌图片的公网图床
type MinIOConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	// ExpireDays 大于 0 时为存储桶设置过期规则，历史记录中的图片地址届时失效
	ExpireDays int `mapstructure:"expire_days"`
}

// ImageGenConfig 文生图服务
type ImageGenConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

// BrandingConfig 品牌素材
type BrandingConfig struct {
	LogoPath string `mapstructure:"logo_path"`
	FontPath string `mapstructure:"font_path"`
	Address  string `mapstructure:"address"`
}

type SocialConfig struct {
	Timeout   int             `mapstructure:"timeout"`
	LinkedIn  LinkedInConfig  `mapstructure:"linkedin"`
	Facebook  FacebookConfig  `mapstructure:"facebook"`
	Instagram InstagramConfig `mapstructure:"instagram"`
}

type LinkedInConfig struct {
	APIBase     string `mapstructure:"api_base"`
	AccessToken string `mapstructure:"access_token"`
	PersonURN   string `mapstructure:"person_urn"`
}

type FacebookConfig struct {
	GraphBase       string `mapstructure:"graph_base"`
	PageID          string `mapstructure:"page_id"`
	PageAccessToken string `mapstructure:"page_access_token"`
}

// InstagramConfig 使用 Facebook 主页 Token 发布
type InstagramConfig struct {
	GraphVersion string `mapstructure:"graph_version"`
	UserID       string `mapstructure:"user_id"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
	Receiver string `mapstructure:"receiver"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type CronConfig struct {
	MediaCleanSpec      string `mapstructure:"media_clean_spec"`
	MediaRetentionHours int    `mapstructure:"media_retention_hours"`
}
