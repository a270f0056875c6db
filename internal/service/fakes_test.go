package service

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"Postcraft/internal/model"
	"Postcraft/internal/pkg/llm"
	"Postcraft/internal/pkg/mail"
	"Postcraft/internal/pkg/social"
	"Postcraft/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostRepo(t *testing.T) repository.PostRepo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}))
	return repository.NewPostRepository(db)
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) GetValue(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memCache) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	default:
		c.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (c *memCache) DeleteKey(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type fakePublisher struct {
	results   social.Results
	calls     int
	platforms []string
}

func (f *fakePublisher) Publish(_ context.Context, platforms []string, _ map[string]string, _ string) social.Results {
	f.calls++
	f.platforms = platforms
	return f.results
}

type fakeSource struct {
	err    error
	topics []string
}

func (f *fakeSource) Generate(_ context.Context, topic string) (image.Image, error) {
	f.topics = append(f.topics, topic)
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	return img, nil
}

type passBrander struct{}

func (passBrander) Apply(src image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			out.Set(x, y, src.At(x, y))
		}
	}
	return out
}

type fakeCaptions struct {
	captions *llm.Captions
	err      error
	paths    []string
	topics   []string
}

func (f *fakeCaptions) Generate(_ context.Context, imagePath, topic string) (*llm.Captions, error) {
	f.paths = append(f.paths, imagePath)
	f.topics = append(f.topics, topic)
	return f.captions, f.err
}

type fakeMailer struct {
	err   error
	leads []mail.Lead
}

func (f *fakeMailer) SendLead(_ context.Context, lead mail.Lead) error {
	f.leads = append(f.leads, lead)
	return f.err
}
