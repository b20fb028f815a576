// Package app provides high-level operations over the day-record store so
// the TUI and the CLI share one controller instead of ambient state.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/renraku-cli/renraku/pkg/datekey"
	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/share"
	"github.com/renraku-cli/renraku/pkg/store"
)

// Service wraps persistence and formatting for day records.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Day returns the stored record for the date, or a zero record when none
// exists, along with whether one was stored.
func (s *Service) Day(date time.Time) (record.Record, bool) {
	if s.Persistence == nil || date.IsZero() {
		return record.Record{}, false
	}
	return s.Persistence.Get(datekey.ForDate(date))
}

// HasRecord reports whether a record is stored under the given key.
func (s *Service) HasRecord(key string) bool {
	if s.Persistence == nil {
		return false
	}
	_, ok := s.Persistence.Get(key)
	return ok
}

// Save trims and stores the record for the date; an empty record deletes
// the stored day. Saving with the zero date is a guarded no-op, matching
// the no-selection case in the editor.
func (s *Service) Save(ctx context.Context, date time.Time, rec record.Record) error {
	if date.IsZero() {
		return nil
	}
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Put(datekey.ForDate(date), rec)
}

// Days lists every stored date in ascending order.
func (s *Service) Days(ctx context.Context) ([]time.Time, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	keys := s.Persistence.Keys(ctx)
	days := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		d, err := datekey.Parse(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

// ShareText formats the share message from the values handed in, which may
// differ from what is persisted: sharing reflects the live fields, not the
// saved state. The zero date yields "" (no selection, no-op).
func (s *Service) ShareText(date time.Time, rec record.Record) string {
	if date.IsZero() {
		return ""
	}
	return share.Format(date, rec)
}

// ShareURL builds the LINE deep link for the live field values, or "" when
// no date is selected.
func (s *Service) ShareURL(date time.Time, rec record.Record) string {
	text := s.ShareText(date, rec)
	if text == "" {
		return ""
	}
	return share.URL(text)
}

// Refresh re-reads the persisted document, used after a Watch notification.
func (s *Service) Refresh() error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Reload()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
