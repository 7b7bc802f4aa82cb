package fantasy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Alexanderh2004/survivor-automation/model"
)

// Client is the boundary to the sports-fantasy backend. Every call carries a
// bearer token; Token is exposed so callers can fail fast before doing any
// other work.
type Client interface {
	Token(ctx context.Context) (string, error)
	CreateLeague(ctx context.Context, req *LeagueRequest) (string, error)
	CreateMatch(ctx context.Context, req *MatchRequest) (string, error)
	CreateRoom(ctx context.Context, req *RoomRequest) (string, error)
	SubmitWeekResults(ctx context.Context, week int, results []model.MatchResult) error
}

// Credentials holds either a pre-issued token or a username/password pair.
// A token takes precedence and skips the login round-trip entirely.
type Credentials struct {
	Token    string
	Username string
	Password string
}

type client struct {
	url        string
	creds      Credentials
	token      string // cached after a successful login
	httpClient *http.Client
}

func New(baseURL string, creds Credentials) (Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL must be provided")
	}
	c := &client{
		url:   strings.TrimRight(baseURL, "/"),
		creds: creds,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(baseURL string, creds Credentials) Client {
	return &client{
		url:        strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *client) Token(ctx context.Context) (string, error) {
	if c.creds.Token != "" {
		return c.creds.Token, nil
	}
	if c.token != "" {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("username", c.creds.Username)
	form.Set("password", c.creds.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/auth/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{Err: &APIError{StatusCode: resp.StatusCode, Body: string(body)}}
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		Access      string `json:"access"`
		Token       string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &AuthError{Err: fmt.Errorf("error parsing login response: %w", err)}
	}

	token := parsed.AccessToken
	if token == "" {
		token = parsed.Access
	}
	if token == "" {
		token = parsed.Token
	}
	if token == "" {
		return "", &AuthError{Err: ErrNoToken}
	}
	c.token = token
	return token, nil
}

func (c *client) CreateLeague(ctx context.Context, req *LeagueRequest) (string, error) {
	return c.createEntity(ctx, "/leagues/", req)
}

func (c *client) CreateMatch(ctx context.Context, req *MatchRequest) (string, error) {
	return c.createEntity(ctx, "/matches/", req)
}

func (c *client) CreateRoom(ctx context.Context, req *RoomRequest) (string, error) {
	req.Normalize()
	return c.createEntity(ctx, "/rooms/", req)
}

func (c *client) SubmitWeekResults(ctx context.Context, week int, results []model.MatchResult) error {
	payload := resultsRequest{Results: results}
	body, err := json.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}

	u := c.url + "/matches/results/?week=" + strconv.Itoa(week)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating results request: %w", err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending results request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

// createEntity POSTs a JSON payload and returns the id field of the response.
func (c *client) createEntity(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshaling request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request for %s: %w", path, err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("error parsing response from %s: %w", path, err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("response from %s did not include an id", path)
	}
	return parsed.ID, nil
}

func (c *client) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return nil
}
