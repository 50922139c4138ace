package repository

import (
	"Inkstone/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ViewRepo interface {
	CreateStoryView(ctx context.Context, view *model.StoryView) error
	CreateChapterView(ctx context.Context, view *model.ChapterView) error

	// CountStoryViewsByStory 按作品分组统计窗口内的阅读事件，单次查询
	CountStoryViewsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error)
	// CountChapterViewsByChapter 按章节分组统计窗口内的阅读事件，单次查询
	CountChapterViewsByChapter(ctx context.Context, chapterIDs []uint64, start, end time.Time) (map[uint64]int64, error)

	CountStoryViews(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error)
	CountChapterViews(ctx context.Context, chapterIDs []uint64, start, end time.Time) (int64, error)
}

type viewRepoImpl struct {
	db *gorm.DB
}

func NewViewRepo(db *gorm.DB) ViewRepo {
	return &viewRepoImpl{db: db}
}

type idCountRow struct {
	ID  uint64
	Cnt int64
}

func (r *viewRepoImpl) CreateStoryView(ctx context.Context, view *model.StoryView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *viewRepoImpl) CreateChapterView(ctx context.Context, view *model.ChapterView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *viewRepoImpl) CountStoryViewsByStory(ctx context.Context, storyIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	if len(storyIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	rows := make([]*idCountRow, 0, len(storyIDs))
	err := r.db.WithContext(ctx).Model(&model.StoryView{}).
		Select("story_id AS id, COUNT(*) AS cnt").
		Where("story_id IN ?", storyIDs).
		Where("viewed_at >= ? AND viewed_at < ?", start, end).
		Group("story_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *viewRepoImpl) CountChapterViewsByChapter(ctx context.Context, chapterIDs []uint64, start, end time.Time) (map[uint64]int64, error) {
	if len(chapterIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	rows := make([]*idCountRow, 0, len(chapterIDs))
	err := r.db.WithContext(ctx).Model(&model.ChapterView{}).
		Select("chapter_id AS id, COUNT(*) AS cnt").
		Where("chapter_id IN ?", chapterIDs).
		Where("viewed_at >= ? AND viewed_at < ?", start, end).
		Group("chapter_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *viewRepoImpl) CountStoryViews(ctx context.Context, storyIDs []uint64, start, end time.Time) (int64, error) {
	if len(storyIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StoryView{}).
		Where("story_id IN ?", storyIDs).
		Where("viewed_at >= ? AND viewed_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *viewRepoImpl) CountChapterViews(ctx context.Context, chapterIDs []uint64, start, end time.Time) (int64, error) {
	if len(chapterIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChapterView{}).
		Where("chapter_id IN ?", chapterIDs).
		Where("viewed_at >= ? AND viewed_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func toCountMap(rows []*idCountRow) map[uint64]int64 {
	result := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Cnt
	}
	return result
}
