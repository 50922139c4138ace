package handler

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	dashboardService service.DashboardService
}

func NewEarningsHandler(dashboardService service.DashboardService) *EarningsHandler {
	return &EarningsHandler{
		dashboardService: dashboardService,
	}
}

// GetEarnings 获取收益页完整载荷，含分页捐赠流水
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rng := service.ParseTimeRange(c.DefaultQuery("range", "30days"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	report, err := h.dashboardService.GetEarningsData(c.Request.Context(), userID, rng, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
