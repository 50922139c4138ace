package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/job"
	"Inkstone/internal/pkg/cron"
	"Inkstone/internal/pkg/kafka"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	storyRepo := repository.NewStoryRepo(db)
	chapterRepo := repository.NewChapterRepo(db)
	viewRepo := repository.NewViewRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	donationRepo := repository.NewDonationRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	storyMetricRepo := repository.NewStoryMetricRepo(db)

	viewService := service.NewViewService(viewRepo, chapterRepo)
	dashboardService := service.NewDashboardService(
		storyRepo,
		chapterRepo,
		viewRepo,
		engagementRepo,
		donationRepo,
		userFollowRepo,
		viewService,
	)
	storyMetricService := service.NewStoryMetricService(
		storyMetricRepo,
		storyRepo,
		engagementRepo,
		donationRepo,
		userFollowRepo,
		viewService,
	)

	handlers := &api.HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		EarningsHandler:  handler.NewEarningsHandler(dashboardService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, viewRepo, donationRepo)
	if err != nil {
		return nil, err
	}

	storyMetricJob := job.NewStoryMetricJob(storyMetricService)
	cronMgr := cron.NewCronManager(storyMetricJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
