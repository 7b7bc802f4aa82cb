package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
)

// ResultPicker decides the winning side for a match when a week's results
// are submitted. Real outcomes come from an external source; the default
// just declares the home side the winner.
type ResultPicker func(matchID string) model.Side

// HomeWins is the default picker.
func HomeWins(string) model.Side {
	return model.SideHome
}

// FixedWinner picks the same side for every match.
func FixedWinner(side model.Side) ResultPicker {
	return func(string) model.Side { return side }
}

func (c *controller) ApplyResults(ctx context.Context, pick ResultPicker) (*Summary, error) {
	if pick == nil {
		pick = HomeWins
	}

	rooms, err := c.rooms.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	cutoff := c.clock.Now().UTC().Add(-resultsSafetyMargin).Unix()
	for _, id := range sortedIDs(rooms) {
		room := rooms[id]
		if room.Finished {
			log.Printf("room %s already finished, skipping", id)
			summary.Skipped++
			continue
		}
		if room.StartTimeEpoch > cutoff {
			log.Printf("room %s not due yet, skipping", id)
			summary.Skipped++
			continue
		}

		if err := c.applyRoomResults(ctx, &room, pick); err != nil {
			var authErr *fantasy.AuthError
			if errors.As(err, &authErr) {
				// No room can succeed without a token.
				return summary, err
			}
			// The room stays due and is retried on the next invocation.
			log.Printf("error applying results for room %s: %v", id, err)
			summary.Failures = append(summary.Failures, Failure{Entity: "room " + id, Err: err})
			continue
		}

		room.Finished = true
		rooms[id] = room
		summary.Applied++
		log.Printf("applied results for room %s", id)
	}

	if err := c.rooms.Save(rooms); err != nil {
		return summary, err
	}
	return summary, nil
}

// applyRoomResults submits one results request per week, in order. A failed
// week leaves the room unfinished so the whole room is reprocessed later;
// the backend applies each week atomically, so resubmitting an already
// applied week is safe.
func (c *controller) applyRoomResults(ctx context.Context, room *model.Room, pick ResultPicker) error {
	for i, week := range room.Weeks {
		results := make([]model.MatchResult, 0, len(week))
		for _, matchID := range week {
			results = append(results, model.MatchResult{MatchID: matchID, Team: pick(matchID)})
		}
		if err := c.client.SubmitWeekResults(ctx, i+1, results); err != nil {
			return fmt.Errorf("week %d: %w", i+1, err)
		}
	}
	return nil
}
