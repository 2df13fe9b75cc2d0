package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestOptionsApply(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		changed []string
		check   func(t *testing.T, cfg config.Config)
		wantErr bool
	}{
		{
			name: "nothing set",
			check: func(t *testing.T, cfg config.Config) {
				if cfg != config.DefaultConfig() {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "preset",
			opts: options{preset: "large"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.GameID() != "2048_5x5_4096" {
					t.Errorf("GameID = %q", cfg.GameID())
				}
			},
		},
		{
			name:    "flags beat the preset",
			opts:    options{preset: "large", size: 6},
			changed: []string{"size"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Board.Size != 6 || cfg.Board.WinTarget != 4096 {
					t.Errorf("board = %+v", cfg.Board)
				}
			},
		},
		{
			name: "unset flags are ignored",
			opts: options{size: 9, dbPath: "/tmp/other.db"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Board.Size != 4 || cfg.Storage.Path != config.DefaultConfig().Storage.Path {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name:    "storage and log",
			opts:    options{dbPath: "/tmp/s.db", logLevel: "debug", logFile: "/tmp/t.log"},
			changed: []string{"db", "log-level", "log-file"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Storage.Path != "/tmp/s.db" || cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/t.log" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{name: "unknown preset", opts: options{preset: "huge"}, wantErr: true},
		{name: "bad target", opts: options{target: 1000}, changed: []string{"target"}, wantErr: true},
		{name: "bad log level", opts: options{logLevel: "loud"}, changed: []string{"log-level"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := tt.opts.apply(&cfg, changedSet(tt.changed...))
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "2048", 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty output:\n%s", buf.String())
	}

	for _, rec := range []storage.GameRecord{
		{GameID: "2048", Score: 2400, MaxTile: 256, Moves: 210, Outcome: storage.OutcomeLost},
		{GameID: "2048", Score: 21000, MaxTile: 2048, Moves: 990, Outcome: storage.OutcomeWon},
	} {
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatal(err)
		}
	}

	buf.Reset()
	if err := printScores(&buf, store, "2048", 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"High Scores - Classic 4x4", "21000", "won", "2400", "Best: 21000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "21000") > strings.Index(out, "2400 ") {
		t.Error("scores should be listed best first")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "size: 4") {
		t.Errorf("output:\n%s", buf.String())
	}

	err := writeConfig(failingWriter{}, config.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v, want the write error", err)
	}
}
