package job

import (
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/pkg/redis"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StoryMetricJob 每日把有新动态的创作者指标固化为快照
type StoryMetricJob struct {
	storyMetricSvc service.StoryMetricService
}

func NewStoryMetricJob(storyMetricSvc service.StoryMetricService) *StoryMetricJob {
	return &StoryMetricJob{
		storyMetricSvc: storyMetricSvc,
	}
}

func (s *StoryMetricJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockKey := consts.CreatorMetricDailyLock + "daily"
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, lockKey, lockValue, time.Minute*10, 3)
	if err != nil {
		log.ErrorContext(ctx, "acquire metric job lock error", "err", err)
		return
	}
	if !lock {
		return
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	// 抢占式改名，避免与消费者的新写入互相干扰
	processingKey := consts.CreatorDirtyKey + ":processing"
	err = redis.Rename(ctx, consts.CreatorDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	set, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert set to int slice error", "err", err)
		return
	}

	for _, userID := range set {
		err = s.storyMetricSvc.SyncCreatorDailyMetric(ctx, userID)
		if err != nil {
			log.ErrorContext(ctx, "sync creator metric error", "err", err, "userID", userID)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	log.InfoContext(ctx, "sync creator metrics success", "count", len(set))
}
