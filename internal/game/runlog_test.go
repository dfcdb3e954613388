package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "cinder-roguelike")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "cinder-roguelike")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	rec := RunRecord{RunID: "abc", Seed: 7, Zone: "demo", Turns: 42, Kills: 2, Cause: CauseDefeated}
	if err := saveRunLog("", rec); err != nil {
		t.Fatalf("saveRunLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "cinder-roguelike", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("log entry should end with newline; got: %q", data)
	}
	var got RunRecord
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RunID != "abc" || got.Turns != 42 || got.Cause != CauseDefeated || got.EndedAt.IsZero() {
		t.Errorf("record = %+v", got)
	}
}

func TestSaveRunLogExplicitDirAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	for i := range 3 {
		if err := saveRunLog(dir, RunRecord{RunID: "r", Turns: i}); err != nil {
			t.Fatalf("saveRunLog: %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}
