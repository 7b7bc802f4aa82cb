package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Team is one row of the reference dataset. Teams are loaded once per run
// and never mutated.
type Team struct {
	ID   string
	Code string
	Name string
}

// teamRecord matches the layout of data/teams.json.
type teamRecord struct {
	PK     string `json:"pk"`
	Fields struct {
		ShortCode string `json:"short_code"`
		Name      string `json:"name"`
	} `json:"fields"`
}

// TeamIndex resolves short codes and full names to backend team IDs.
// Roster preserves dataset order; match scheduling picks teams by position.
type TeamIndex struct {
	Roster []Team

	byCode map[string]string
	byName map[string]string
}

// LoadTeams reads the reference dataset and builds the lookup index.
func LoadTeams(path string) (*TeamIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}
	defer f.Close()

	var records []teamRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, &DataError{Path: path, Err: fmt.Errorf("decoding teams: %w", err)}
	}

	idx := &TeamIndex{
		byCode: make(map[string]string, len(records)),
		byName: make(map[string]string, len(records)),
	}
	for i, r := range records {
		if r.PK == "" || r.Fields.ShortCode == "" {
			return nil, &DataError{Path: path, Err: fmt.Errorf("record %d is missing pk or short_code", i)}
		}
		t := Team{ID: r.PK, Code: strings.ToUpper(r.Fields.ShortCode), Name: r.Fields.Name}
		idx.Roster = append(idx.Roster, t)
		idx.byCode[t.Code] = t.ID
		if t.Name != "" {
			idx.byName[t.Name] = t.ID
		}
	}
	return idx, nil
}

// ByCode looks up a backend team ID by short code, case-insensitively.
// A miss is reported through ok, not an error; callers decide how to fail.
func (idx *TeamIndex) ByCode(code string) (string, bool) {
	id, ok := idx.byCode[strings.ToUpper(code)]
	return id, ok
}

// ByName looks up a backend team ID by full name.
func (idx *TeamIndex) ByName(name string) (string, bool) {
	id, ok := idx.byName[name]
	return id, ok
}

// At returns the roster entry at position i.
func (idx *TeamIndex) At(i int) (Team, error) {
	if i < 0 || i >= len(idx.Roster) {
		return Team{}, fmt.Errorf("roster position %d out of range, have %d teams", i, len(idx.Roster))
	}
	return idx.Roster[i], nil
}

func (idx *TeamIndex) Len() int {
	return len(idx.Roster)
}
