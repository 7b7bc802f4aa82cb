package fantasy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/Alexanderh2004/survivor-automation/testutils"
)

func TestToken_preIssued(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Token: "pre-issued"})

	token, err := c.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "pre-issued" {
		t.Errorf("expected pre-issued, got %s", token)
	}
	if fake.Logins() != 0 {
		t.Errorf("a pre-issued token should skip login, got %d logins", fake.Logins())
	}
}

func TestToken_login(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Username: "admin", Password: "hunter2"})

	token, err := c.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "fake-token" {
		t.Errorf("expected fake-token, got %s", token)
	}

	// A second call reuses the cached token.
	if _, err := c.Token(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.Logins() != 1 {
		t.Errorf("expected 1 login, got %d", fake.Logins())
	}
}

func TestToken_loginRejected(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()
	fake.FailWith("/auth/login/", http.StatusUnauthorized)

	c := NewForTest(fake.URL(), Credentials{Username: "admin", Password: "wrong"})

	_, err := c.Token(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Errorf("expected an AuthError, got %v", err)
	}
}

func TestToken_missingFromResponse(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"detail": "ok but no token"}`))
	}))
	defer s.Close()

	c := NewForTest(s.URL, Credentials{Username: "admin", Password: "hunter2"})

	_, err := c.Token(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
}

func TestCreateLeague(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	id, err := c.CreateLeague(context.Background(), &LeagueRequest{
		GameID:    "game-1",
		ShortName: "NFL-1",
		Name:      "NFL 1",
		BadgeURL:  "https://example.com/logo.svg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "league-1" {
		t.Errorf("expected league-1, got %s", id)
	}

	leagues := fake.Leagues()
	if len(leagues) != 1 {
		t.Fatalf("expected 1 league, got %d", len(leagues))
	}
	if leagues[0]["game_id"] != "game-1" {
		t.Errorf("expected game_id game-1, got %v", leagues[0]["game_id"])
	}
	if leagues[0]["short_name"] != "NFL-1" {
		t.Errorf("expected short_name NFL-1, got %v", leagues[0]["short_name"])
	}
}

func TestCreateRoom_publicDropsPassword(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	password := "should-be-discarded"
	id, err := c.CreateRoom(context.Background(), &RoomRequest{
		Name:       "SURVIVOR NFL 1",
		Permission: "public",
		Password:   &password,
		LeagueID:   "league-1",
		StartWeek:  1,
		EndWeek:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "room-1" {
		t.Errorf("expected room-1, got %s", id)
	}

	rooms := fake.Rooms()
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0]["permission"] != "PUBLIC" {
		t.Errorf("expected permission PUBLIC, got %v", rooms[0]["permission"])
	}
	if rooms[0]["password"] != nil {
		t.Errorf("expected password null, got %v", rooms[0]["password"])
	}
}

func TestCreateRoom_privateKeepsPassword(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	password := "s3cret"
	_, err := c.CreateRoom(context.Background(), &RoomRequest{
		Name:       "SURVIVOR NFL 1",
		Permission: "PRIVATE",
		Password:   &password,
		LeagueID:   "league-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rooms := fake.Rooms()
	if rooms[0]["password"] != "s3cret" {
		t.Errorf("expected password kept for private rooms, got %v", rooms[0]["password"])
	}
}

func TestCreateMatch_remoteError(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()
	fake.FailWith("/matches/", http.StatusBadRequest)

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	_, err := c.CreateMatch(context.Background(), &MatchRequest{ExternalID: "abc"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" {
		t.Error("expected the response body to be kept for manual retry")
	}
}

func TestSubmitWeekResults(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	results := []model.MatchResult{
		{MatchID: "match-1", Team: model.SideHome},
		{MatchID: "match-2", Team: model.SideAway},
	}
	if err := c.SubmitWeekResults(context.Background(), 2, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subs := fake.ResultSubmissions()
	if len(subs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(subs))
	}
	if subs[0].Week != 2 {
		t.Errorf("expected week 2, got %d", subs[0].Week)
	}
	if len(subs[0].Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(subs[0].Results))
	}
	if subs[0].Results[0].MatchID != "match-1" || subs[0].Results[0].Team != "home" {
		t.Errorf("unexpected first result: %+v", subs[0].Results[0])
	}
	if subs[0].Results[1].Team != "away" {
		t.Errorf("expected away, got %s", subs[0].Results[1].Team)
	}
}

func TestSubmitWeekResults_remoteError(t *testing.T) {
	fake := testutils.NewFakeFantasyServer()
	defer fake.Close()
	fake.FailWith("/matches/results/", http.StatusInternalServerError)

	c := NewForTest(fake.URL(), Credentials{Token: "tok"})

	err := c.SubmitWeekResults(context.Background(), 1, []model.MatchResult{{MatchID: "m", Team: model.SideHome}})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %v", err)
	}
}
