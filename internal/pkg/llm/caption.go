package llm

import (
	"Postcraft/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

const (
	PlatformLinkedIn  = "linkedin"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"

	DefaultTopic = "Professional Photography"

	topicPlaceholder = "{{topic}}"
)

var (
	ErrEmptyResponse      = errors.New("caption model returned no choices")
	ErrIncompleteCaptions = errors.New("caption response is missing a platform key")
)

const defaultCaptionPrompt = `Topic: {{topic}}
Context: High-End Photography Studio Marketing.

Analyze the image visually (lighting, emotion, composition) and generate 3 distinct social media posts in JSON format.
Keys must be: "linkedin", "facebook", "instagram".

STRICT RULES FOR CONTENT:
1. **LINKEDIN (Deep Dive):** Min 200 words. Discuss technical art (lighting, ISO) and storytelling. Professional Tone.
2. **FACEBOOK (Community):** Min 100 words. Engaging, family-friendly, questions.
3. **INSTAGRAM (Visuals):** Punchy hook + 30 Hashtags.

MANDATORY ENDING: "Scan the QR code on the image to book your session today!"
`

// Captions 各平台文案
type Captions struct {
	LinkedIn  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// Map 以平台名为 key
func (c *Captions) Map() map[string]string {
	return map[string]string{
		PlatformLinkedIn:  c.LinkedIn,
		PlatformFacebook:  c.Facebook,
		PlatformInstagram: c.Instagram,
	}
}

// FallbackCaptions 模型不可用时由调用方替换的固定文案
func FallbackCaptions() *Captions {
	return &Captions{
		LinkedIn:  "At our studio, we believe photography is about freezing time. This image represents our technical capability. Scan the QR code to secure your date.",
		Facebook:  "Capturing memories is our passion! ❤️ Look at the emotion in this shot. Scan the code to book!",
		Instagram: "Chasing light and capturing souls. ✨ \nScan to Book! 📸 \n\n#Photography #Portrait #Studio #Canon #Art #BookNow",
	}
}

// CaptionGenerator 看图写文案
type CaptionGenerator struct {
	model       llms.Model
	modelName   string
	prompt      string
	temperature float64
}

func NewCaptionGenerator(model llms.Model, cfg config.LLMConfig) *CaptionGenerator {
	prompt := readPrompt(cfg.PromptPath)
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultCaptionPrompt
	}
	return &CaptionGenerator{
		model:       model,
		modelName:   cfg.VisionModel,
		prompt:      prompt,
		temperature: cfg.Temperature,
	}
}

// Generate 从磁盘读回品牌图，连同主题一起发给多模态模型
func (s *CaptionGenerator) Generate(ctx context.Context, imagePath, topic string) (*Captions, error) {
	if topic == "" {
		topic = DefaultTopic
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read branded image: %w", err)
	}

	if err = ImageSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer ImageSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(strings.ReplaceAll(s.prompt, topicPlaceholder, topic)),
				llms.BinaryPart(mimetype.Detect(data).String(), data),
			},
		},
	}

	log.InfoContext(ctx, "正在请求AI大模型", "model", s.modelName, "topic", topic)
	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithModel(s.modelName),
		llms.WithTemperature(s.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("caption model request failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return ParseCaptions(resp.Choices[0].Content)
}

// ParseCaptions 去掉 markdown 代码块标记后解析，三个平台缺一不可
func ParseCaptions(raw string) (*Captions, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var captions Captions
	if err := json.Unmarshal([]byte(cleaned), &captions); err != nil {
		return nil, fmt.Errorf("failed to parse captions: %w", err)
	}
	if captions.LinkedIn == "" || captions.Facebook == "" || captions.Instagram == "" {
		return nil, ErrIncompleteCaptions
	}
	return &captions, nil
}
