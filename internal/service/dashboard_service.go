package service

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/model"
	"Postcraft/internal/pkg/consts"
	"Postcraft/internal/pkg/redis"
	"Postcraft/internal/pkg/social"
	"Postcraft/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const (
	trendSize       = 7
	trendDateLayout = "02/01"
	timestampLayout = "2006-01-02 15:04"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
}

type dashboardServiceImpl struct {
	postRepo repository.PostRepo
	cache    redis.Cache
	ttl      time.Duration
}

func NewDashboardService(postRepo repository.PostRepo, cache redis.Cache, ttl time.Duration) DashboardService {
	return &dashboardServiceImpl{
		postRepo: postRepo,
		cache:    cache,
		ttl:      ttl,
	}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{Stats: stats, Posts: posts}, nil
}

// GetStats 优先读缓存，缓存异常时直接查库
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if cached, err := s.cache.GetValue(ctx, consts.DashboardStatsKey); err == nil && cached != "" {
		var stats dto.DashboardStatsDTO
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		log.WarnContext(ctx, "invalid dashboard cache payload", "err", err)
	} else if err != nil {
		log.WarnContext(ctx, "failed to read dashboard cache", "err", err)
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to compute dashboard stats", "err", err)
		return nil, UnExpectedError
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err = s.cache.SetWithExpiration(ctx, consts.DashboardStatsKey, payload, s.ttl); err != nil {
			log.WarnContext(ctx, "failed to write dashboard cache", "err", err)
		}
	}
	return stats, nil
}

func (s *dashboardServiceImpl) computeStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	totals, err := s.postRepo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.postRepo.CountByStatusPrefix(ctx, consts.StatusScheduledLabel)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, 3)
	for _, platform := range []string{social.PlatformLinkedIn, social.PlatformFacebook, social.PlatformInstagram} {
		if counts[platform], err = s.postRepo.CountByPlatform(ctx, platform); err != nil {
			return nil, err
		}
	}

	recent, err := s.postRepo.GetRecentPosts(ctx, trendSize)
	if err != nil {
		return nil, err
	}
	// 查询结果最新在前，趋势图需要时间正序
	slices.Reverse(recent)
	labels := make([]string, 0, len(recent))
	data := make([]int, 0, len(recent))
	for _, p := range recent {
		labels = append(labels, p.Timestamp.Format(trendDateLayout))
		data = append(data, p.Impressions)
	}

	return &dto.DashboardStatsDTO{
		TotalImpressions: humanize.Comma(totals.Impressions),
		EngagementRate:   EngagementRate(totals),
		LinkClicks:       humanize.Comma(totals.Clicks),
		ActiveCampaigns:  active,
		TrendLabels:      labels,
		TrendData:        data,
		LinkedInCount:    counts[social.PlatformLinkedIn],
		FacebookCount:    counts[social.PlatformFacebook],
		InstagramCount:   counts[social.PlatformInstagram],
	}, nil
}

// EngagementRate 互动 / 曝光，保留一位小数
func EngagementRate(totals *model.PostTotals) string {
	if totals.Impressions == 0 {
		return "0.0%"
	}
	rate := float64(totals.Engagement) / float64(totals.Impressions) * 100
	return fmt.Sprintf("%.1f%%", rate)
}

func (s *dashboardServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to list posts", "err", err)
		return nil, UnExpectedError
	}

	out := make([]*dto.PostDTO, 0, len(posts))
	if err = copier.CopyWithOption(&out, &posts, copier.Option{
		Converters: []copier.TypeConverter{timestampConverter},
	}); err != nil {
		log.ErrorContext(ctx, "failed to map posts", "err", err)
		return nil, UnExpectedError
	}
	return out, nil
}

var timestampConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		t, ok := src.(time.Time)
		if !ok {
			return nil, fmt.Errorf("unexpected timestamp type %T", src)
		}
		return t.Format(timestampLayout), nil
	},
}
