package fantasy

import (
	"strings"

	"github.com/Alexanderh2004/survivor-automation/model"
)

const (
	PermissionPublic  = "PUBLIC"
	PermissionPrivate = "PRIVATE"
)

// LeagueRequest creates a match-group that rooms reference to bound their
// active weeks.
type LeagueRequest struct {
	GameID    string `json:"game_id"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	BadgeURL  string `json:"badge_url"`
}

// MatchRequest creates one match in a league. StartTime must already be in
// the wire format produced by model.FormatKickoff.
type MatchRequest struct {
	ExternalID string `json:"external_id"`
	LeagueID   string `json:"league_id"`
	HomeID     string `json:"home_id"`
	AwayID     string `json:"away_id"`
	Season     string `json:"season"`
	Week       int    `json:"week"`
	StartTime  string `json:"start_time"`
}

// RoomRequest creates a survivor-pool room. Password is a pointer because
// the backend distinguishes null from empty: a PUBLIC room must submit null,
// a PRIVATE room must carry a real password.
type RoomRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	PlayerLimit       int     `json:"player_limit"`
	Coins             int     `json:"coins"`
	Permission        string  `json:"permission"`
	Password          *string `json:"password"`
	ImageURL          string  `json:"image_url"`
	PrizeType         string  `json:"prize_type"`
	Percentage        int     `json:"percentage"`
	FixedAmount       int     `json:"fixed_amount"`
	RewardDescription string  `json:"reward_description"`
	TopWinners        int     `json:"top_winners"`
	LeagueID          string  `json:"league_id"`
	StartWeek         int     `json:"start_week"`
	EndWeek           int     `json:"end_week"`
}

// Normalize upper-cases the permission and drops the password for PUBLIC
// rooms regardless of what the caller supplied.
func (r *RoomRequest) Normalize() {
	r.Permission = strings.ToUpper(r.Permission)
	if r.Permission == PermissionPublic {
		r.Password = nil
	}
}

type resultsRequest struct {
	Results []model.MatchResult `json:"results"`
}
