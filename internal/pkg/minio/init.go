package minio

import (
	"Postcraft/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

// Storage 品牌图的公网托管，社交平台需要可访问的 URL
type Storage struct {
	client   *minio.Client
	bucket   string
	external string
	useSSL   bool
}

// NewStorage 初始化 MinIO 客户端并确保存储桶存在
func NewStorage(ctx context.Context, cfg config.MinIOConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("已创建存储桶", "bucket", cfg.Bucket)
	}

	external := cfg.ExternalEndpoint
	if external == "" {
		external = cfg.Endpoint
	}

	s := &Storage{
		client:   client,
		bucket:   cfg.Bucket,
		external: external,
		useSSL:   cfg.UseSSL,
	}
	if cfg.ExpireDays > 0 {
		if err = s.ensureLifecycle(ctx, cfg.ExpireDays); err != nil {
			log.Warn("设置生命周期失败", "err", err)
		}
	}
	return s, nil
}

// ensureLifecycle 已存在同等规则时不再写入
func (s *Storage) ensureLifecycle(ctx context.Context, days int) error {
	lcConfig, err := s.client.GetBucketLifecycle(ctx, s.bucket)
	if err != nil {
		lcConfig = lifecycle.NewConfiguration()
	}

	if !withExpireRule(lcConfig, days) {
		log.Info("检测到已存在兼容的过期策略", "days", days)
		return nil
	}
	return s.client.SetBucketLifecycle(ctx, s.bucket, lcConfig)
}

// withExpireRule 追加整桶过期规则，返回配置是否有变化
func withExpireRule(lcConfig *lifecycle.Configuration, days int) bool {
	if days <= 0 {
		return false
	}
	for _, rule := range lcConfig.Rules {
		if rule.Status == "Enabled" && int(rule.Expiration.Days) == days && rule.RuleFilter.Prefix == "" {
			return false
		}
	}

	lcConfig.Rules = append(lcConfig.Rules, lifecycle.Rule{
		ID:     "PostcraftExpireRule",
		Status: "Enabled",
		Expiration: lifecycle.Expiration{
			Days: lifecycle.ExpirationDays(days),
		},
	})
	return true
}
