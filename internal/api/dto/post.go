package dto

// PostDTO 发布记录
type PostDTO struct {
	ID            uint64  `json:"id"`
	Platforms     string  `json:"platforms"`
	ImageURL      string  `json:"image_url"`
	Caption       string  `json:"caption"`
	Status        string  `json:"status"`
	ScheduledTime *string `json:"scheduled_time"`
	Impressions   int     `json:"impressions"`
	Engagement    int     `json:"engagement"`
	Clicks        int     `json:"clicks"`
	Timestamp     string  `json:"timestamp"`
}
