package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alexanderh2004/survivor-automation/model"
)

// teamCodes is a full 32-team roster in the order scheduling walks it.
var teamCodes = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS",
}

// TeamsFile writes a reference dataset into a temp dir and returns its path.
func TeamsFile(t *testing.T) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("[")
	for i, code := range teamCodes {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"pk": "%d", "fields": {"short_code": %q, "name": "%s Football Team"}}`, i+1, code, code)
	}
	b.WriteString("]")

	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("error writing teams file: %v", err)
	}
	return path
}

// NewTeamIndex loads a full test roster.
func NewTeamIndex(t *testing.T) *model.TeamIndex {
	t.Helper()

	idx, err := model.LoadTeams(TeamsFile(t))
	if err != nil {
		t.Fatalf("error loading test teams: %v", err)
	}
	return idx
}
