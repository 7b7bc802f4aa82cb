package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries every setting the workflows need. It is built once at
// process entry and handed to component constructors; nothing reads the
// environment after Load returns.
type Config struct {
	BaseURL string
	GameID  string

	// Either a pre-issued token or a username/password pair must be set.
	APIToken string
	Username string
	Password string

	DefaultTZ string
	RoomsFile string
	TeamsFile string
	MatchDB   string
	Port      int
}

// MissingKeysError lists every required setting that was absent, so one
// failed run reports the whole problem at once.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Keys, ", "))
}

// Load builds a Config from the environment, applying defaults for the
// optional settings. It does not validate; call Validate before using it.
func Load() (*Config, error) {
	port := 3000
	if p := os.Getenv("PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("error parsing PORT: %w", err)
		}
		port = n
	}

	return &Config{
		BaseURL:   strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		GameID:    os.Getenv("GAME_ID"),
		APIToken:  os.Getenv("API_TOKEN"),
		Username:  os.Getenv("FS_USERNAME"),
		Password:  os.Getenv("FS_PASSWORD"),
		DefaultTZ: getEnv("DEFAULT_TZ", "UTC"),
		RoomsFile: getEnv("ROOMS_FILE", "created_rooms.json"),
		TeamsFile: getEnv("TEAMS_FILE", "data/teams.json"),
		MatchDB:   getEnv("MATCH_DB", "matches.db"),
		Port:      port,
	}, nil
}

// Validate checks the required settings before any network activity and
// reports every missing key in a single error.
func (c *Config) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}
	if c.APIToken == "" && (c.Username == "" || c.Password == "") {
		missing = append(missing, "API_TOKEN or FS_USERNAME/FS_PASSWORD")
	}
	if c.GameID == "" {
		missing = append(missing, "GAME_ID")
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
