package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/renraku-cli/renraku/pkg/record"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func load(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p, dir
}

func TestPutGetRoundTrip(t *testing.T) {
	p, _ := load(t)

	rec := record.Record{MensGo: "8:00", MensBalls: "3"}
	if err := p.Put("2024-01-05", rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := p.Get("2024-01-05")
	if !ok {
		t.Fatalf("expected record")
	}
	if got != rec {
		t.Fatalf("expected %#v, got %#v", rec, got)
	}
}

func TestPutEmptyDeletes(t *testing.T) {
	p, _ := load(t)

	if err := p.Put("2024-01-05", record.Record{WomensReturn: "17:00"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := p.Put("2024-01-05", record.Record{MensGo: "   "}); err != nil {
		t.Fatalf("put empty: %v", err)
	}
	if _, ok := p.Get("2024-01-05"); ok {
		t.Fatalf("empty record must delete the key")
	}
	if keys := p.Keys(context.Background()); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestPutIdempotent(t *testing.T) {
	p, _ := load(t)

	rec := record.Record{OthersGo: "9:30"}
	for i := 0; i < 2; i++ {
		if err := p.Put("2024-03-01", rec); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}
	all := p.All(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
	if all["2024-03-01"] != rec {
		t.Fatalf("unexpected stored record: %#v", all["2024-03-01"])
	}
}

func TestPutTrims(t *testing.T) {
	p, _ := load(t)

	if err := p.Put("2024-01-05", record.Record{MensGo: " 8:00 "}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ := p.Get("2024-01-05")
	if got.MensGo != "8:00" {
		t.Fatalf("expected trimmed value, got %q", got.MensGo)
	}
}

func TestReloadSeesSavedState(t *testing.T) {
	p, dir := load(t)

	rec := record.Record{Unneeded: "傘"}
	if err := p.Put("2024-02-29", rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A fresh load simulates a restart: only the saved state survives.
	p2, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := p2.Get("2024-02-29")
	if !ok || got != rec {
		t.Fatalf("expected %#v after reload, got %#v (ok=%v)", rec, got, ok)
	}
}

func TestCorruptDocumentIsEmptyStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, documentKey), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load must not fail on corrupt data: %v", err)
	}
	if all := p.All(context.Background()); len(all) != 0 {
		t.Fatalf("expected empty store, got %v", all)
	}
}

func TestLegacyKeysNormalizedOnLoad(t *testing.T) {
	dir := t.TempDir()
	doc := `{"2024-0-5":{"mensGo":"8:00"},"what":{"mensGo":"x"},"2024-01-06":{}}`
	if err := os.WriteFile(filepath.Join(dir, documentKey), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := p.Get("2024-01-05")
	if !ok || got.MensGo != "8:00" {
		t.Fatalf("legacy key not migrated: %#v (ok=%v)", got, ok)
	}
	keys := p.Keys(context.Background())
	if len(keys) != 1 {
		t.Fatalf("unrecognized and empty entries must be dropped, got %v", keys)
	}
}
