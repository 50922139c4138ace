package dto

// DashboardStatsDTO 创作者总量指标与环比变化
type DashboardStatsDTO struct {
	TotalReads      int64   `json:"total_reads"`
	ReadsChange     float64 `json:"reads_change"`
	TotalLikes      int64   `json:"total_likes"`
	LikesChange     float64 `json:"likes_change"`
	TotalComments   int64   `json:"total_comments"`
	CommentsChange  float64 `json:"comments_change"`
	TotalFollowers  int64   `json:"total_followers"`
	FollowersChange float64 `json:"followers_change"`
	TotalEarnings   float64 `json:"total_earnings"`
	EarningsChange  float64 `json:"earnings_change"`
}

// TopStoryDTO 窗口内单部作品的表现
type TopStoryDTO struct {
	StoryID  uint64  `json:"story_id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	CoverURL string  `json:"cover_url"`
	Reads    int64   `json:"reads"`
	Likes    int64   `json:"likes"`
	Comments int64   `json:"comments"`
	Earnings float64 `json:"earnings"`
}

// ChartPointDTO 月度图表数据点，Month 形如 2026-08
type ChartPointDTO struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}

// EngagementPointDTO 互动图表数据点，点赞与评论并列
type EngagementPointDTO struct {
	Month    string `json:"month"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

// DashboardOverviewDTO 概览页组合载荷
type DashboardOverviewDTO struct {
	Stats           *DashboardStatsDTO    `json:"stats"`
	TopStories      []*TopStoryDTO        `json:"top_stories"`
	ReadsChart      []*ChartPointDTO      `json:"reads_chart"`
	EngagementChart []*EngagementPointDTO `json:"engagement_chart"`
}
