package dto

import "time"

// EarningsPointDTO 月度收益数据点，金额已换算为元
type EarningsPointDTO struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// StoryEarningsDTO 单部作品在窗口内的收益
type StoryEarningsDTO struct {
	StoryID  uint64  `json:"story_id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Earnings float64 `json:"earnings"`
}

// TransactionDTO 单笔已入账捐赠
type TransactionDTO struct {
	DonorName  string    `json:"donor_name"`
	StoryTitle string    `json:"story_title"`
	StorySlug  string    `json:"story_slug"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// EarningsReportDTO 收益页完整载荷
type EarningsReportDTO struct {
	TotalEarnings     float64             `json:"total_earnings"`
	ThisMonthEarnings float64             `json:"this_month_earnings"`
	LastMonthEarnings float64             `json:"last_month_earnings"`
	MonthlyChange     float64             `json:"monthly_change"`
	Breakdown         []*StoryEarningsDTO `json:"breakdown"`
	Chart             []*EarningsPointDTO `json:"chart"`
	Transactions      []*TransactionDTO   `json:"transactions"`
	Pagination        *PaginationDTO      `json:"pagination"`
}
