package llm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"Postcraft/internal/api/config"
	"Postcraft/internal/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	content  string
	err      error
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.content}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.png")
	// PNG 文件头足以让类型嗅探识别
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n0000"), 0o600))
	return path
}

func TestParseCaptionsStripsFences(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"linkedin\":\"li\",\"facebook\":\"fb\",\"instagram\":\"ig\"}\n```"
	captions, err := llm.ParseCaptions(raw)
	require.NoError(t, err)
	assert.Equal(t, &llm.Captions{LinkedIn: "li", Facebook: "fb", Instagram: "ig"}, captions)
}

func TestParseCaptionsErrors(t *testing.T) {
	t.Parallel()

	_, err := llm.ParseCaptions("not json at all")
	require.Error(t, err)

	_, err = llm.ParseCaptions(`{"linkedin":"li","facebook":"fb"}`)
	assert.ErrorIs(t, err, llm.ErrIncompleteCaptions)
}

func TestGenerateSendsPromptAndImage(t *testing.T) {
	t.Parallel()

	model := &fakeModel{content: `{"linkedin":"li","facebook":"fb","instagram":"ig"}`}
	gen := llm.NewCaptionGenerator(model, config.LLMConfig{VisionModel: "vision"})

	captions, err := gen.Generate(context.Background(), writeImage(t), "")
	require.NoError(t, err)
	assert.Equal(t, "ig", captions.Instagram)

	require.Len(t, model.messages, 1)
	parts := model.messages[0].Parts
	require.Len(t, parts, 2)

	text, ok := parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Topic: "+llm.DefaultTopic)
	assert.Contains(t, text.Text, "Scan the QR code on the image to book your session today!")

	bin, ok := parts[1].(llms.BinaryContent)
	require.True(t, ok)
	assert.Equal(t, "image/png", bin.MIMEType)
}

func TestGenerateKeepsPercentInPromptFile(t *testing.T) {
	t.Parallel()

	promptPath := filepath.Join(t.TempDir(), "captions.txt")
	require.NoError(t, os.WriteFile(promptPath, []byte("Topic: {{topic}}\nGive 100% effort."), 0o600))

	model := &fakeModel{content: `{"linkedin":"li","facebook":"fb","instagram":"ig"}`}
	gen := llm.NewCaptionGenerator(model, config.LLMConfig{PromptPath: promptPath})

	_, err := gen.Generate(context.Background(), writeImage(t), "Weddings")
	require.NoError(t, err)

	text, ok := model.messages[0].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Topic: Weddings\nGive 100% effort.", text.Text)
}

func TestGenerateReturnsModelError(t *testing.T) {
	t.Parallel()

	model := &fakeModel{err: errors.New("quota exceeded")}
	gen := llm.NewCaptionGenerator(model, config.LLMConfig{})

	captions, err := gen.Generate(context.Background(), writeImage(t), "topic")
	require.Error(t, err)
	assert.Nil(t, captions)
}

func TestFallbackCaptionsKeys(t *testing.T) {
	t.Parallel()

	m := llm.FallbackCaptions().Map()
	assert.Len(t, m, 3)
	for _, key := range []string{"linkedin", "facebook", "instagram"} {
		assert.NotEmpty(t, m[key], key)
	}
}
