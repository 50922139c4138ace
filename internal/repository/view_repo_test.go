package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestCountStoryViewsByStory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepo(db)

	mock.ExpectQuery("SELECT story_id AS id, COUNT\\(\\*\\) AS cnt FROM `story_views`").
		WithArgs(uint64(1), uint64(2), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cnt"}).AddRow(1, 3))

	counts, err := repo.CountStoryViewsByStory(context.Background(), []uint64{1, 2}, time.Now().AddDate(0, 0, -30), time.Now())

	require.NoError(t, err)
	// 无事件的作品不出现在分组结果中，稠密化由上层完成
	assert.Equal(t, map[uint64]int64{1: 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountChapterViewsByChapter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepo(db)

	mock.ExpectQuery("SELECT chapter_id AS id, COUNT\\(\\*\\) AS cnt FROM `chapter_views`").
		WithArgs(uint64(10), uint64(11), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cnt"}).AddRow(10, 1).AddRow(11, 4))

	counts, err := repo.CountChapterViewsByChapter(context.Background(), []uint64{10, 11}, time.Now().AddDate(0, 0, -7), time.Now())

	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{10: 1, 11: 4}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountStoryViewsEmptyIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepo(db)

	// 空 ID 集合不触发任何 SQL
	counts, err := repo.CountStoryViewsByStory(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, counts)

	total, err := repo.CountStoryViews(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountStoryViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewViewRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `story_views`").
		WithArgs(uint64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))

	total, err := repo.CountStoryViews(context.Background(), []uint64{1}, time.Now().AddDate(0, -1, 0), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
