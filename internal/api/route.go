package api

import (
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.Use(middleware.AuthMiddleware())
			{
				dashboardGroup.GET("/stats", group.DashboardHandler.GetStats)
				dashboardGroup.GET("/overview", group.DashboardHandler.GetOverview)
				dashboardGroup.GET("/top-stories", group.DashboardHandler.GetTopStories)
				dashboardGroup.GET("/charts/reads", group.DashboardHandler.GetReadsChart)
				dashboardGroup.GET("/charts/engagement", group.DashboardHandler.GetEngagementChart)
				dashboardGroup.GET("/charts/earnings", group.DashboardHandler.GetEarningsChart)
			}
		}

		earningsGroup := apiGroup.Group("/earnings")
		{
			earningsGroup.Use(middleware.AuthMiddleware())
			{
				earningsGroup.GET("", group.EarningsHandler.GetEarnings)
			}
		}
	}

	return r
}
