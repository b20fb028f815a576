package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func service(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return &Service{Persistence: p}
}

func TestSaveAndDay(t *testing.T) {
	svc := service(t)
	ctx := context.Background()
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)

	rec := record.Record{MensGo: "8:00"}
	if err := svc.Save(ctx, date, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := svc.Day(date)
	if !ok || got != rec {
		t.Fatalf("expected %#v, got %#v (ok=%v)", rec, got, ok)
	}
}

func TestSaveEmptyDeletes(t *testing.T) {
	svc := service(t)
	ctx := context.Background()
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)

	if err := svc.Save(ctx, date, record.Record{WomensBalls: "2"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Save(ctx, date, record.Record{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if _, ok := svc.Day(date); ok {
		t.Fatalf("saving an empty record must delete the day")
	}
}

func TestSaveZeroDateIsNoop(t *testing.T) {
	svc := service(t)
	if err := svc.Save(context.Background(), time.Time{}, record.Record{MensGo: "8:00"}); err != nil {
		t.Fatalf("zero-date save must be a no-op, got %v", err)
	}
	days, err := svc.Days(context.Background())
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected no stored days, got %v", days)
	}
}

func TestDaysSorted(t *testing.T) {
	svc := service(t)
	ctx := context.Background()
	for _, d := range []time.Time{
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
	} {
		if err := svc.Save(ctx, d, record.Record{MensGo: "8:00"}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	days, err := svc.Days(ctx)
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Fatalf("days not sorted: %v", days)
		}
	}
}

func TestShareUsesLiveValuesNotSaved(t *testing.T) {
	svc := service(t)
	ctx := context.Background()
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)

	saved := record.Record{MensGo: "8:00"}
	if err := svc.Save(ctx, date, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	edited := record.Record{MensGo: "9:00"}
	text := svc.ShareText(date, edited)
	if !strings.Contains(text, "行き：9:00") {
		t.Fatalf("share must reflect live edits, got %q", text)
	}

	// What is persisted is still the saved value.
	got, _ := svc.Day(date)
	if got != saved {
		t.Fatalf("persisted record changed by share: %#v", got)
	}
}

func TestShareZeroDateIsNoop(t *testing.T) {
	svc := service(t)
	if text := svc.ShareText(time.Time{}, record.Record{MensGo: "8:00"}); text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
	if u := svc.ShareURL(time.Time{}, record.Record{MensGo: "8:00"}); u != "" {
		t.Fatalf("expected empty URL, got %q", u)
	}
}
