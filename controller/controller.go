package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Alexanderh2004/survivor-automation/db"
	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/Alexanderh2004/survivor-automation/store"
	"github.com/itbasis/go-clock"
)

// C encapsulates the scheduling and reconciliation workflows without
// worrying about the CLI or web layers.
type C interface {
	// CreateRooms runs the scheduling workflow: one league, its matches,
	// and one survivor room per requested room, recording each new room in
	// the state store.
	CreateRooms(ctx context.Context, opts CreateOptions) (*Summary, error)
	// ApplyResults runs the reconciliation workflow over every room in the
	// state store, resolving the ones whose readiness gate has passed.
	ApplyResults(ctx context.Context, pick ResultPicker) (*Summary, error)

	ListRooms(ctx context.Context) ([]RoomStatus, error)
	MatchesByWeek(ctx context.Context, week int) ([]model.Match, error)
	Weeks(ctx context.Context) ([]int, error)
}

type controller struct {
	clock  clock.Clock
	client fantasy.Client
	rooms  *store.Rooms
	db     db.DB
	teams  *model.TeamIndex
	gameID string
}

func New(clock clock.Clock, client fantasy.Client, rooms *store.Rooms, matchDB db.DB, teams *model.TeamIndex, gameID string) (C, error) {
	if gameID == "" {
		return nil, errors.New("gameID must be provided")
	}
	c := &controller{
		clock:  clock,
		client: client,
		rooms:  rooms,
		db:     matchDB,
		teams:  teams,
		gameID: gameID,
	}
	return c, nil
}

// Room lifecycle states as derived from the store and the clock.
const (
	StateCreated  = "created"
	StateDue      = "due"
	StateFinished = "finished"
)

// RoomStatus is a room plus its current lifecycle state, for display.
type RoomStatus struct {
	Room  model.Room
	State string
}

func (c *controller) ListRooms(ctx context.Context) ([]RoomStatus, error) {
	rooms, err := c.rooms.Load()
	if err != nil {
		return nil, err
	}

	cutoff := c.clock.Now().UTC().Add(-resultsSafetyMargin).Unix()
	out := make([]RoomStatus, 0, len(rooms))
	for _, id := range sortedIDs(rooms) {
		room := rooms[id]
		state := StateCreated
		switch {
		case room.Finished:
			state = StateFinished
		case room.StartTimeEpoch <= cutoff:
			state = StateDue
		}
		out = append(out, RoomStatus{Room: room, State: state})
	}
	return out, nil
}

func (c *controller) MatchesByWeek(ctx context.Context, week int) ([]model.Match, error) {
	if week < 1 {
		return nil, fmt.Errorf("week must be positive, got %d", week)
	}
	return c.db.ListMatchesByWeek(ctx, week)
}

func (c *controller) Weeks(ctx context.Context) ([]int, error) {
	return c.db.Weeks(ctx)
}

// Summary aggregates per-entity outcomes of one workflow run. The caller
// turns a non-empty failure list into a non-zero exit status.
type Summary struct {
	Created  int // rooms created by scheduling
	Applied  int // rooms fully resolved by reconciliation
	Skipped  int // rooms already finished or not yet due
	Failures []Failure
}

// Failure records one entity that could not be processed, with enough
// context to retry it manually.
type Failure struct {
	Entity string
	Err    error
}

func (s *Summary) Failed() bool {
	return len(s.Failures) > 0
}

func (s *Summary) String() string {
	return fmt.Sprintf("created=%d applied=%d skipped=%d failed=%d",
		s.Created, s.Applied, s.Skipped, len(s.Failures))
}

func sortedIDs(rooms map[string]model.Room) []string {
	ids := make([]string, 0, len(rooms))
	for id := range rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// resultsSafetyMargin is the readiness gate: a room is not eligible for
// reconciliation until a full hour after its first kickoff.
const resultsSafetyMargin = time.Hour
