package llm

import (
	"Postcraft/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "googleai"
)

// NewModel 按配置创建多模态模型客户端
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case ProviderGoogle:
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.ApiKey),
			googleai.WithDefaultModel(cfg.VisionModel),
		)
		if err != nil {
			log.Error("AI大模型初始化失败", "provider", cfg.Provider, "err", err)
			return nil, err
		}
		return model, nil
	case ProviderOpenAI, "":
		opts := []openai.Option{
			openai.WithModel(cfg.VisionModel),
			openai.WithToken(cfg.ApiKey),
		}
		if cfg.URL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.URL))
		}
		model, err := openai.New(opts...)
		if err != nil {
			log.Error("AI大模型初始化失败", "provider", cfg.Provider, "err", err)
			return nil, err
		}
		return model, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
