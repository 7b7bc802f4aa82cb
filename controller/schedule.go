package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
)

const (
	weeksPerLeague = 3
	matchesPerWeek = 3

	nflLogoURL = "https://upload.wikimedia.org/wikipedia/en/a/a2/National_Football_League_logo.svg"
)

// defaultDelays staggers the batch so rooms become due one after another.
var defaultDelays = []time.Duration{
	15 * time.Minute,
	30 * time.Minute,
	45 * time.Minute,
	60 * time.Minute,
}

// CreateOptions controls one scheduling run.
type CreateOptions struct {
	// Count is how many rooms to create. Zero means one per default delay.
	Count int
	// Delays offset each room's kickoff from now, cycling when Count is
	// larger than the list. Ignored when Kickoff is set.
	Delays []time.Duration
	// Kickoff pins every room of the batch to an explicit instant.
	Kickoff time.Time
	// Season labels the created matches, e.g. "2025".
	Season string
}

func (o *CreateOptions) withDefaults() CreateOptions {
	opts := *o
	if len(opts.Delays) == 0 {
		opts.Delays = defaultDelays
	}
	if opts.Count <= 0 {
		opts.Count = len(opts.Delays)
	}
	if opts.Season == "" {
		opts.Season = "2025"
	}
	return opts
}

func (c *controller) CreateRooms(ctx context.Context, options CreateOptions) (*Summary, error) {
	opts := options.withDefaults()

	// Fail before any entity is created if no token can be obtained.
	if _, err := c.client.Token(ctx); err != nil {
		return nil, err
	}

	rooms, err := c.rooms.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for n := 1; n <= opts.Count; n++ {
		kickoff := opts.Kickoff
		if kickoff.IsZero() {
			kickoff = c.clock.Now().UTC().Add(opts.Delays[(n-1)%len(opts.Delays)])
		}

		room, err := c.createRoom(ctx, n, kickoff, opts.Season)
		if err != nil {
			log.Printf("error creating room %d: %v", n, err)
			summary.Failures = append(summary.Failures, Failure{Entity: fmt.Sprintf("room %d", n), Err: err})
			continue
		}

		rooms[room.ID] = *room
		summary.Created++
		log.Printf("created room %s for league %s starting at %d (epoch)", room.ID, room.LeagueID, room.StartTimeEpoch)
	}

	if err := c.rooms.Save(rooms); err != nil {
		return summary, err
	}
	return summary, nil
}

// createRoom builds one room end to end: league, matches, then the room
// itself. Any remote failure aborts this room without retrying.
func (c *controller) createRoom(ctx context.Context, n int, kickoff time.Time, season string) (*model.Room, error) {
	league, err := c.createLeague(ctx, n, kickoff, season)
	if err != nil {
		return nil, err
	}

	roomID, err := c.client.CreateRoom(ctx, &fantasy.RoomRequest{
		Name:              fmt.Sprintf("SURVIVOR NFL %d", n),
		Description:       fmt.Sprintf("Sala NFL %s", league.ID),
		PlayerLimit:       20,
		Coins:             10,
		Permission:        fantasy.PermissionPublic,
		ImageURL:          nflLogoURL,
		PrizeType:         "money_fixed",
		Percentage:        100,
		FixedAmount:       100,
		RewardDescription: "Premio $100 al ganador",
		TopWinners:        1,
		LeagueID:          league.ID,
		StartWeek:         1,
		EndWeek:           weeksPerLeague,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	return &model.Room{
		ID:             roomID,
		LeagueID:       league.ID,
		StartTimeEpoch: kickoff.Unix(),
		Weeks:          league.Weeks,
	}, nil
}

func (c *controller) createLeague(ctx context.Context, n int, kickoff time.Time, season string) (*model.League, error) {
	id, err := c.client.CreateLeague(ctx, &fantasy.LeagueRequest{
		GameID:    c.gameID,
		ShortName: fmt.Sprintf("NFL-%d", n),
		Name:      fmt.Sprintf("NFL %d", n),
		BadgeURL:  nflLogoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating league: %w", err)
	}

	league := &model.League{ID: id}
	for week := 1; week <= weeksPerLeague; week++ {
		matchIDs := make([]string, 0, matchesPerWeek)
		for slot := 0; slot < matchesPerWeek; slot++ {
			m, err := c.createMatch(ctx, league.ID, season, week, slot, kickoff)
			if err != nil {
				return nil, fmt.Errorf("error creating match %d of week %d: %w", slot+1, week, err)
			}
			matchIDs = append(matchIDs, m.ID)
		}
		league.Weeks = append(league.Weeks, matchIDs)
	}
	return league, nil
}

func (c *controller) createMatch(ctx context.Context, leagueID, season string, week, slot int, kickoff time.Time) (*model.Match, error) {
	// Home and away come from consecutive roster positions so every match
	// of the schedule uses a distinct pair of teams.
	home, err := c.teams.At(2 * (week*matchesPerWeek + slot))
	if err != nil {
		return nil, err
	}
	away, err := c.teams.At(2*(week*matchesPerWeek+slot) + 1)
	if err != nil {
		return nil, err
	}

	m := &model.Match{
		ExternalID: model.ExternalID(home.Code, away.Code, kickoff),
		HomeID:     home.ID,
		AwayID:     away.ID,
		HomeCode:   home.Code,
		AwayCode:   away.Code,
		Season:     season,
		Week:       week,
		Kickoff:    kickoff.UTC(),
	}

	id, err := c.client.CreateMatch(ctx, &fantasy.MatchRequest{
		ExternalID: m.ExternalID,
		LeagueID:   leagueID,
		HomeID:     home.ID,
		AwayID:     away.ID,
		Season:     season,
		Week:       week,
		StartTime:  model.FormatKickoff(kickoff),
	})
	if err != nil {
		return nil, err
	}
	m.ID = id

	// The cache is supplementary; a caching failure must not abort the room.
	if err := c.db.UpsertMatch(ctx, m); err != nil {
		log.Printf("error caching match %s: %v", m.ExternalID, err)
	}
	return m, nil
}
