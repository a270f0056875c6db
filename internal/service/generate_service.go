package service

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/pkg/consts"
	"Postcraft/internal/pkg/imagegen"
	"Postcraft/internal/pkg/llm"
	"Postcraft/internal/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"image"
	log "log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ImageSource 文生图
type ImageSource interface {
	Generate(ctx context.Context, topic string) (image.Image, error)
}

// Brander 叠加品牌元素
type Brander interface {
	Apply(src image.Image) *image.NRGBA
}

// ImageHost 返回品牌图的公网地址
type ImageHost interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// CaptionWriter 看图写文案
type CaptionWriter interface {
	Generate(ctx context.Context, imagePath, topic string) (*llm.Captions, error)
}

type GenerateService interface {
	Generate(ctx context.Context, file *multipart.FileHeader, prompt string) (*dto.GenerateResultDTO, error)
}

type generateServiceImpl struct {
	source       ImageSource
	brander      Brander
	host         ImageHost
	captions     CaptionWriter
	uploadDir    string
	processedDir string
	now          func() time.Time
}

func NewGenerateService(source ImageSource, brander Brander, host ImageHost, captions CaptionWriter,
	uploadDir, processedDir string) GenerateService {
	return &generateServiceImpl{
		source:       source,
		brander:      brander,
		host:         host,
		captions:     captions,
		uploadDir:    uploadDir,
		processedDir: processedDir,
		now:          time.Now,
	}
}

// Generate 上传优先，其次按 prompt 生成；文案失败时替换为固定文案
func (s *generateServiceImpl) Generate(ctx context.Context, file *multipart.FileHeader, prompt string) (*dto.GenerateResultDTO, error) {
	prompt = strings.TrimSpace(prompt)
	if file == nil && prompt == "" {
		return nil, ErrMissingInput
	}

	src, err := s.acquire(ctx, file, prompt)
	if err != nil {
		return nil, err
	}

	localPath, err := s.saveBranded(s.brander.Apply(src))
	if err != nil {
		log.ErrorContext(ctx, "failed to save branded image", "err", err)
		return nil, UnExpectedError
	}

	publicURL, err := s.host.Upload(ctx, localPath)
	if err != nil {
		log.ErrorContext(ctx, "failed to host branded image", "path", localPath, "err", err)
		return nil, UnExpectedError
	}

	captions, err := s.captions.Generate(ctx, localPath, prompt)
	if err != nil {
		log.WarnContext(ctx, "caption generation failed, using fallback", "err", err)
		metrics.CaptionFallbackTotal.Inc()
		captions = llm.FallbackCaptions()
	}

	return &dto.GenerateResultDTO{
		ImageURL: publicURL,
		Captions: captions.Map(),
	}, nil
}

func (s *generateServiceImpl) acquire(ctx context.Context, file *multipart.FileHeader, prompt string) (image.Image, error) {
	if file != nil {
		path, err := imagegen.SaveUpload(s.uploadDir, file)
		if err != nil {
			log.ErrorContext(ctx, "failed to save upload", "err", err)
			return nil, UnExpectedError
		}
		img, err := imagegen.DecodeFile(path)
		if err != nil {
			if !errors.Is(err, imagegen.ErrNotImage) {
				log.WarnContext(ctx, "failed to decode upload", "path", path, "err", err)
			}
			return nil, ErrFileNotSupported
		}
		return img, nil
	}

	img, err := s.source.Generate(ctx, prompt)
	if err != nil {
		log.ErrorContext(ctx, "image generation failed", "prompt", prompt, "err", err)
		return nil, UnExpectedError
	}
	return img, nil
}

// saveBranded 文件名 gen_<unix>_<uuid>.png，并发请求不会互相覆盖
func (s *generateServiceImpl) saveBranded(img image.Image) (string, error) {
	if err := os.MkdirAll(s.processedDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%d_%s.png", consts.GeneratedPrefix, s.now().Unix(), uuid.NewString())
	path := filepath.Join(s.processedDir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", err
	}
	return path, nil
}

// LocalImageHost 未配置对象存储时，直接由本服务的静态目录提供图片
type LocalImageHost struct {
	BaseURL string
	Prefix  string
}

func (h LocalImageHost) Upload(_ context.Context, localPath string) (string, error) {
	return strings.TrimRight(h.BaseURL, "/") + h.Prefix + "/" + filepath.Base(localPath), nil
}
