package config

import (
	"errors"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASE_URL", "GAME_ID", "API_TOKEN", "FS_USERNAME", "FS_PASSWORD",
		"DEFAULT_TZ", "ROOMS_FILE", "TEAMS_FILE", "MATCH_DB", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultTZ != "UTC" {
		t.Errorf("expected default tz UTC, got %s", cfg.DefaultTZ)
	}
	if cfg.RoomsFile != "created_rooms.json" {
		t.Errorf("expected default rooms file, got %s", cfg.RoomsFile)
	}
	if cfg.TeamsFile != "data/teams.json" {
		t.Errorf("expected default teams file, got %s", cfg.TeamsFile)
	}
	if cfg.MatchDB != "matches.db" {
		t.Errorf("expected default match db, got %s", cfg.MatchDB)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
}

func TestLoad_trailingSlash(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "https://api.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("expected trailing slash stripped, got %s", cfg.BaseURL)
	}
}

func TestLoad_badPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a bad port")
	}
}

func TestValidate_missingEverything(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}

	var missing *MissingKeysError
	if !errors.As(err, &missing) {
		t.Fatalf("expected a MissingKeysError, got %v", err)
	}

	// Every missing key is reported in one pass.
	if len(missing.Keys) != 3 {
		t.Errorf("expected 3 missing keys, got %d: %v", len(missing.Keys), missing.Keys)
	}
	for _, want := range []string{"BASE_URL", "API_TOKEN or FS_USERNAME/FS_PASSWORD", "GAME_ID"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestValidate_credentialAlternatives(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{name: "token only", cfg: Config{BaseURL: "u", GameID: "g", APIToken: "tok"}, valid: true},
		{name: "username and password", cfg: Config{BaseURL: "u", GameID: "g", Username: "a", Password: "b"}, valid: true},
		{name: "username without password", cfg: Config{BaseURL: "u", GameID: "g", Username: "a"}, valid: false},
		{name: "password without username", cfg: Config{BaseURL: "u", GameID: "g", Password: "b"}, valid: false},
		{name: "nothing", cfg: Config{BaseURL: "u", GameID: "g"}, valid: false},
	}

	for _, tc := range tests {
		err := tc.cfg.Validate()
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
