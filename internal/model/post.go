package model

import (
	"time"
)

// Post 一次发布(或排期)记录，创建后不再修改
type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Platforms     string    `gorm:"type:varchar(100);not null" json:"platforms"`
	ImageURL      string    `gorm:"type:varchar(300)" json:"image_url"`
	Caption       string    `gorm:"type:text" json:"caption"`
	Status        string    `gorm:"type:varchar(50);not null" json:"status"` // Published / Failed / Scheduled: <time>
	ScheduledTime *string   `gorm:"type:varchar(50)" json:"scheduled_time"`
	Impressions   int       `gorm:"not null;default:0" json:"impressions"`
	Engagement    int       `gorm:"not null;default:0" json:"engagement"`
	Clicks        int       `gorm:"not null;default:0" json:"clicks"`
	Timestamp     time.Time `gorm:"index:idx_timestamp;autoCreateTime" json:"timestamp"`
}

func (Post) TableName() string {
	return "posts"
}

// PostTotals 仪表盘聚合
type PostTotals struct {
	Impressions int64
	Clicks      int64
	Engagement  int64
}
