package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats 获取创作者总量指标与环比变化
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// GetOverview 获取概览页组合载荷
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))

	overview, err := h.dashboardService.GetOverview(c.Request.Context(), userID, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

// GetTopStories 获取窗口内作品榜单
func (h *DashboardHandler) GetTopStories(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))
	sortBy := service.ParseSortBy(c.DefaultQuery("sort", "reads"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	stories, err := h.dashboardService.GetTopStories(c.Request.Context(), userID, limit, sortBy, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}

// GetReadsChart 阅读量月度图表，固定尾部 7 个自然月
func (h *DashboardHandler) GetReadsChart(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))

	chart, err := h.dashboardService.GetReadsChartData(c.Request.Context(), userID, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, chart)
}

// GetEngagementChart 互动月度图表
func (h *DashboardHandler) GetEngagementChart(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))

	chart, err := h.dashboardService.GetEngagementChartData(c.Request.Context(), userID, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, chart)
}

// GetEarningsChart 收益月度图表
func (h *DashboardHandler) GetEarningsChart(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))

	chart, err := h.dashboardService.GetEarningsChartData(c.Request.Context(), userID, rng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, chart)
}
