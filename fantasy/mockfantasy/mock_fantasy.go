package mockfantasy

import (
	"context"

	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) Token(ctx context.Context) (string, error) {
	args := c.Called(ctx)
	return args.String(0), args.Error(1)
}

func (c *Client) CreateLeague(ctx context.Context, req *fantasy.LeagueRequest) (string, error) {
	args := c.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (c *Client) CreateMatch(ctx context.Context, req *fantasy.MatchRequest) (string, error) {
	args := c.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (c *Client) CreateRoom(ctx context.Context, req *fantasy.RoomRequest) (string, error) {
	args := c.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (c *Client) SubmitWeekResults(ctx context.Context, week int, results []model.MatchResult) error {
	args := c.Called(ctx, week, results)
	return args.Error(0)
}
