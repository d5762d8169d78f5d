package cli

import (
	"context"
	"io"
	"testing"

	"github.com/matzehuels/superperm/pkg/cache"
	"github.com/matzehuels/superperm/pkg/errors"
	reportio "github.com/matzehuels/superperm/pkg/io"
)

func TestSolveThreeSymbols(t *testing.T) {
	var seen []reportio.Milestone
	rep, err := solve(context.Background(), 3, func(m reportio.Milestone) {
		seen = append(seen, m)
	})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !rep.Complete {
		t.Error("report should be complete")
	}
	if rep.Length != 9 {
		t.Errorf("Length = %d, want 9", rep.Length)
	}
	if err := rep.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	want := []int{1, 2, 4, 5, 6}
	if len(seen) != len(want) {
		t.Fatalf("got %d milestones, want %d", len(seen), len(want))
	}
	for i, m := range seen {
		if m.Goal != i+2 || m.Distance != want[i] {
			t.Errorf("milestone %d = goal %d distance %d, want goal %d distance %d", i, m.Goal, m.Distance, i+2, want[i])
		}
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := solve(ctx, 4, nil)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if rep == nil || rep.Complete {
		t.Errorf("cancelled solve should return a partial report, got %+v", rep)
	}
}

func TestLoadCachedReport(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := reportKeyer().ReportKey(3)

	if _, ok := loadCachedReport(ctx, store, key); ok {
		t.Error("empty cache should miss")
	}

	rep, err := solve(ctx, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.SetJSON(ctx, store, key, rep, 0); err != nil {
		t.Fatal(err)
	}
	got, ok := loadCachedReport(ctx, store, key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.RunID != rep.RunID || got.Length != 9 {
		t.Errorf("cached report = %+v, want %+v", got, rep)
	}

	partial := reportio.NewReport(3)
	partial.Record(reportio.Milestone{Goal: 2, Distance: 1})
	if err := cache.SetJSON(ctx, store, key, partial, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok := loadCachedReport(ctx, store, key); ok {
		t.Error("partial report should not be served from cache")
	}
}

func TestSolveOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts solveOptions
		code errors.Code
	}{
		{"ok", solveOptions{symbols: 4, format: "table"}, ""},
		{"too few symbols", solveOptions{symbols: 1, format: "table"}, errors.ErrCodeInvalidSymbols},
		{"too many symbols", solveOptions{symbols: 9, format: "table"}, errors.ErrCodeInvalidSymbols},
		{"bad format", solveOptions{symbols: 4, format: "xml"}, errors.ErrCodeInvalidFormat},
		{"bad report path", solveOptions{symbols: 4, format: "json", report: "../out.json"}, errors.ErrCodeInvalidPath},
		{"negative tail", solveOptions{symbols: 4, format: "json", tail: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRootCommandRejectsBadInput(t *testing.T) {
	t.Setenv(symbolsEnv, "")
	cfg := writeConfig(t, "")

	tests := []struct {
		args []string
		code errors.Code
	}{
		{[]string{"solve", "-n", "9"}, errors.ErrCodeInvalidSymbols},
		{[]string{"expand", "-n", "4", "3"}, errors.ErrCodeInvalidInput},
		{[]string{"table", "-n", "1"}, errors.ErrCodeInvalidSymbols},
		{[]string{"check", "aaaa"}, errors.ErrCodeInvalidSymbols},
	}
	for _, tt := range tests {
		c := New(io.Discard, LogInfo)
		root := c.RootCommand()
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		root.SetArgs(append([]string{"--config", cfg}, tt.args...))

		err := root.ExecuteContext(context.Background())
		if !errors.Is(err, tt.code) {
			t.Errorf("%v: err = %v, want %s", tt.args, err, tt.code)
		}
	}
}
