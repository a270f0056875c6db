package consts

const (
	DashboardStatsKey = "dashboard:stats"
)
