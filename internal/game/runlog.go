package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Run end causes.
const (
	CauseQuit     = "quit"
	CauseDefeated = "defeated"
)

// RunRecord is one line of runs.jsonl.
type RunRecord struct {
	RunID   string    `json:"run_id"`
	Seed    int32     `json:"seed"`
	Zone    string    `json:"zone"`
	Turns   int       `json:"turns"`
	Kills   int       `json:"kills"`
	Cause   string    `json:"cause"`
	EndedAt time.Time `json:"ended_at"`
}

// saveRunLog appends rec as a single JSON line to runs.jsonl under dir, or
// under the default data directory when dir is empty.
func saveRunLog(dir string, rec RunRecord) error {
	if dir == "" {
		d, err := runLogDir()
		if err != nil {
			return err
		}
		dir = d
	}
	if rec.EndedAt.IsZero() {
		rec.EndedAt = time.Now().UTC()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/cinder-roguelike, defaulting to
// ~/.local/share/cinder-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cinder-roguelike"), nil
}
