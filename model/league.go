package model

import (
	"strings"
	"time"
)

// Side identifies the winning side of a match on the results wire.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// ParseSide validates a user-supplied winning-side value.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "home":
		return SideHome, nil
	case "away":
		return SideAway, nil
	default:
		return "", &ParseError{Input: s, Reason: "want home or away"}
	}
}

// Match is one scheduled game. ID is assigned by the backend on creation and
// is empty until then; ExternalID is computed locally and stays stable
// across runs.
type Match struct {
	ID         string
	ExternalID string
	HomeID     string
	AwayID     string
	HomeCode   string
	AwayCode   string
	Season     string
	Week       int
	Kickoff    time.Time // always UTC
}

// League groups the matches a room plays through. Weeks holds the remote
// match IDs in schedule order, one inner slice per week.
type League struct {
	ID    string
	Weeks [][]string
}

// Room is the unit of lifecycle state. The JSON field names match the
// created_rooms.json state file and must not change.
type Room struct {
	ID             string     `json:"id"`
	LeagueID       string     `json:"league_id"`
	StartTimeEpoch int64      `json:"start_time_epoch"`
	Weeks          [][]string `json:"weeks"`
	Finished       bool       `json:"finished"`
}

// MatchResult pairs a match with its winning side for a results submission.
// It is built at submission time and never persisted on its own.
type MatchResult struct {
	MatchID string `json:"match_id"`
	Team    Side   `json:"team"`
}
