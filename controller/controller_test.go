package controller

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Alexanderh2004/survivor-automation/db"
	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/Alexanderh2004/survivor-automation/store"
	"github.com/Alexanderh2004/survivor-automation/testutils"
	"github.com/itbasis/go-clock"
)

// testNow keeps every test on the same instant so readiness-gate math is
// easy to follow.
var testNow = time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	clock *clock.Mock
	fake  *testutils.FakeFantasyServer
	rooms *store.Rooms
	db    db.DB
	ctrl  C
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fake := testutils.NewFakeFantasyServer()
	t.Cleanup(fake.Close)

	client := fantasy.NewForTest(fake.URL(), fantasy.Credentials{Token: "tok"})
	rooms := store.NewRooms(filepath.Join(t.TempDir(), "created_rooms.json"))

	matchDB, err := db.New(context.Background(), filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("error opening match cache: %v", err)
	}
	t.Cleanup(func() { matchDB.Close() })

	mock := clock.NewMock()
	mock.Set(testNow)

	ctrl, err := New(mock, client, rooms, matchDB, testutils.NewTeamIndex(t), "game-1")
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	return &testEnv{clock: mock, fake: fake, rooms: rooms, db: matchDB, ctrl: ctrl}
}

// seedRoom writes a room straight into the state store.
func (e *testEnv) seedRoom(t *testing.T, room model.Room) {
	t.Helper()

	rooms, err := e.rooms.Load()
	if err != nil {
		t.Fatalf("error loading rooms: %v", err)
	}
	rooms[room.ID] = room
	if err := e.rooms.Save(rooms); err != nil {
		t.Fatalf("error saving rooms: %v", err)
	}
}

func (e *testEnv) loadRoom(t *testing.T, id string) model.Room {
	t.Helper()

	rooms, err := e.rooms.Load()
	if err != nil {
		t.Fatalf("error loading rooms: %v", err)
	}
	room, ok := rooms[id]
	if !ok {
		t.Fatalf("room %s not in the state store", id)
	}
	return room
}
