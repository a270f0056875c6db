package dto

// DashboardStatsDTO 仪表盘统计，数字已格式化
type DashboardStatsDTO struct {
	TotalImpressions string   `json:"total_impressions"`
	EngagementRate   string   `json:"engagement_rate"`
	LinkClicks       string   `json:"link_clicks"`
	ActiveCampaigns  int64    `json:"active_campaigns"`
	TrendLabels      []string `json:"trend_labels"`
	TrendData        []int    `json:"trend_data"`
	LinkedInCount    int64    `json:"li_pct"`
	FacebookCount    int64    `json:"fb_pct"`
	InstagramCount   int64    `json:"ig_pct"`
}

// DashboardDTO 页面渲染用
type DashboardDTO struct {
	Stats *DashboardStatsDTO
	Posts []*PostDTO
}
