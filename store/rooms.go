// Package store persists room lifecycle state in a flat JSON file. The file
// is the system of record for "have I already done this": it is read fully
// at the start of a workflow run and replaced wholesale at the end.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Alexanderh2004/survivor-automation/model"
)

type Rooms struct {
	Path string
}

func NewRooms(path string) *Rooms {
	return &Rooms{Path: path}
}

// Load reads the whole state file into memory. A missing or empty file is a
// valid first-run state and yields an empty map.
func (s *Rooms) Load() (map[string]model.Room, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]model.Room{}, nil
		}
		return nil, &model.DataError{Path: s.Path, Err: err}
	}
	if len(data) == 0 {
		return map[string]model.Room{}, nil
	}

	rooms := map[string]model.Room{}
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, &model.DataError{Path: s.Path, Err: fmt.Errorf("decoding rooms: %w", err)}
	}
	return rooms, nil
}

// Save replaces the state file with the given mapping. It writes a temp file
// in the same directory and renames it over the target so readers never see
// a partially written file.
func (s *Rooms) Save(rooms map[string]model.Room) error {
	data, err := json.MarshalIndent(rooms, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding rooms: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp state file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing state file: %w", err)
	}
	return nil
}
