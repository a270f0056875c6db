package imagegen

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	promptPrefix = "Professional corporate photography poster, "
	promptSuffix = ", high resolution, realistic, cinematic lighting"
)

// BuildPrompt 为用户主题追加固定的风格描述
func BuildPrompt(topic string) string {
	return promptPrefix + topic + promptSuffix
}

// Generator 调用文生图服务，prompt 直接拼在 URL 路径中
type Generator struct {
	client  *resty.Client
	baseURL string
}

func NewGenerator(baseURL string, timeout time.Duration, transport http.RoundTripper) *Generator {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if transport != nil {
		client.SetTransport(transport)
	}
	return &Generator{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Generator) Generate(ctx context.Context, topic string) (image.Image, error) {
	endpoint := s.baseURL + "/prompt/" + url.PathEscape(BuildPrompt(topic))

	resp, err := s.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "image generation request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("image generation returned status %d", resp.StatusCode())
	}

	img, _, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode generated image")
	}
	return img, nil
}
