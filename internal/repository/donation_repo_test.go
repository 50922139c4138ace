package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCollectedCents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepo(db)

	// 求和语句必须带 collected 状态过滤
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount_cents\\), 0\\) FROM `donations`").
		WithArgs(uint64(1), "collected", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(1800))

	sum, err := repo.SumCollectedCents(context.Background(), []uint64{1}, time.Now().AddDate(0, 0, -30), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(1800), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumCollectedCentsByStory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepo(db)

	mock.ExpectQuery("SELECT story_id AS id, COALESCE\\(SUM\\(amount_cents\\), 0\\) AS sum FROM `donations`").
		WithArgs(uint64(1), uint64(2), "collected", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sum"}).AddRow(1, 800))

	sums, err := repo.SumCollectedCentsByStory(context.Background(), []uint64{1, 2}, time.Now().AddDate(0, 0, -30), time.Now())

	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{1: 800}, sums)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumCollectedCentsEmptyIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepo(db)

	sum, err := repo.SumCollectedCents(context.Background(), nil, time.Now(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusByPaymentRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `donations` SET").
		WithArgs("collected", sqlmock.AnyArg(), "pay_123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatusByPaymentRef(context.Background(), "pay_123", "collected")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
