package service

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/model"
	"Postcraft/internal/pkg/consts"
	"Postcraft/internal/pkg/redis"
	"Postcraft/internal/pkg/social"
	"Postcraft/internal/pkg/util"
	"Postcraft/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

// Publisher 各平台发布
type Publisher interface {
	Publish(ctx context.Context, platforms []string, captions map[string]string, imageURL string) social.Results
}

// Engagement 新记录的模拟互动数据
type Engagement struct {
	Impressions int
	Engagement  int
	Clicks      int
}

// RandomEngagement 曝光 500-2000，互动 50-150，点击 10-40
func RandomEngagement() Engagement {
	return Engagement{
		Impressions: util.RandInt(500, 2000),
		Engagement:  util.RandInt(50, 150),
		Clicks:      util.RandInt(10, 40),
	}
}

type PostService interface {
	ConfirmPost(ctx context.Context, req *dto.ConfirmPostDTO) (*dto.ConfirmPostResultDTO, error)
}

// statsInvalidateDelay 二次删除的延迟，需大于一次统计查询的耗时
const statsInvalidateDelay = time.Second

type postServiceImpl struct {
	postRepo        repository.PostRepo
	publisher       Publisher
	cache           redis.Cache
	engagement      func() Engagement
	now             func() time.Time
	invalidateDelay time.Duration
}

func NewPostService(postRepo repository.PostRepo, publisher Publisher, cache redis.Cache) PostService {
	return &postServiceImpl{
		postRepo:        postRepo,
		publisher:       publisher,
		cache:           cache,
		engagement:      RandomEngagement,
		now:             time.Now,
		invalidateDelay: statsInvalidateDelay,
	}
}

// ConfirmPost instant 立即发布，其余 action 只记录排期状态
func (s *postServiceImpl) ConfirmPost(ctx context.Context, req *dto.ConfirmPostDTO) (*dto.ConfirmPostResultDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParamInvalid, err.Error())
	}

	var status string
	var details map[string]string
	var scheduledTime *string

	if req.Action == consts.ActionInstant {
		results := s.publisher.Publish(ctx, req.Platforms, req.Captions, req.ImageURL)
		details = results.Details()
		status = consts.StatusPublished
		if results.Failed() {
			status = consts.StatusFailedPrefix
		}
	} else {
		status = consts.StatusScheduledLabel + ": " + req.Time
		details = map[string]string{"system": "Queued"}
		scheduledTime = util.PtrString(req.Time)
	}

	metric := s.engagement()
	post := &model.Post{
		Platforms:     strings.Join(req.Platforms, ","),
		ImageURL:      req.ImageURL,
		Caption:       req.Captions[social.PlatformLinkedIn],
		Status:        status,
		ScheduledTime: scheduledTime,
		Impressions:   metric.Impressions,
		Engagement:    metric.Engagement,
		Clicks:        metric.Clicks,
		Timestamp:     s.now(),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "failed to save post", "err", err)
		return nil, UnExpectedError
	}

	s.invalidateStats(ctx)

	log.InfoContext(ctx, "post recorded", "post_id", post.ID, "status", status)
	return &dto.ConfirmPostResultDTO{
		Status:     "success",
		PostStatus: status,
		Details:    details,
	}, nil
}

// invalidateStats 延迟双删，覆盖插入前已开始计算、插入后才回写的统计缓存
func (s *postServiceImpl) invalidateStats(ctx context.Context) {
	s.deleteStats(ctx)
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(s.invalidateDelay, func() {
		s.deleteStats(bg)
	})
}

func (s *postServiceImpl) deleteStats(ctx context.Context) {
	if err := s.cache.DeleteKey(ctx, consts.DashboardStatsKey); err != nil {
		log.WarnContext(ctx, "failed to invalidate dashboard cache", "err", err)
	}
}
