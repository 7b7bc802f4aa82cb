package db

import (
	"context"

	"github.com/Alexanderh2004/survivor-automation/model"
)

// DB is the match cache backing the week views. It is supplementary to the
// room state file: losing it never loses lifecycle state, only display
// metadata.
type DB interface {
	// UpsertMatch inserts the match, or replaces the existing row carrying
	// the same external ID.
	UpsertMatch(ctx context.Context, m *model.Match) error
	// ListMatchesByWeek returns all matches for a week, ordered by kickoff
	// instant ascending.
	ListMatchesByWeek(ctx context.Context, week int) ([]model.Match, error)
	// Weeks lists the distinct week numbers present, ascending.
	Weeks(ctx context.Context) ([]int, error)
	Close() error
}
