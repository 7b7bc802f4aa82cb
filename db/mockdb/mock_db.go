package mockdb

import (
	"context"

	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) UpsertMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) ListMatchesByWeek(ctx context.Context, week int) ([]model.Match, error) {
	args := db.Called(ctx, week)

	var r []model.Match
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Match)
	}
	return r, args.Error(1)
}

func (db *DB) Weeks(ctx context.Context) ([]int, error) {
	args := db.Called(ctx)

	var r []int
	if args.Get(0) != nil {
		r = args.Get(0).([]int)
	}
	return r, args.Error(1)
}

func (db *DB) Close() error {
	args := db.Called()
	return args.Error(0)
}
