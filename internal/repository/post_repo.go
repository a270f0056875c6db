package repository

import (
	"Postcraft/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// newestFirst timestamp 在部分数据库中是关键字，交给 gorm 加引号
var newestFirst = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "timestamp"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error)
	GetTotals(ctx context.Context) (*model.PostTotals, error)
	CountByStatusPrefix(ctx context.Context, prefix string) (int64, error)
	CountByPlatform(ctx context.Context, platform string) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// ListPosts 全部记录，最新的在前
func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Clauses(newestFirst).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Clauses(newestFirst).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) GetTotals(ctx context.Context) (*model.PostTotals, error) {
	var totals model.PostTotals
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(impressions), 0) AS impressions, " +
			"COALESCE(SUM(clicks), 0) AS clicks, " +
			"COALESCE(SUM(engagement), 0) AS engagement").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *PostRepoImpl) CountByStatusPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("status LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}

// CountByPlatform platforms 字段为逗号拼接，按子串匹配
func (s *PostRepoImpl) CountByPlatform(ctx context.Context, platform string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("platforms LIKE ?", "%"+platform+"%").Count(&count).Error
	return count, err
}
