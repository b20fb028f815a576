package set

import (
	"context"
	"errors"
	"time"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/printers"
	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/store"
)

type Set struct {
	Persistence store.Persistence
	On          time.Time
	Record      record.Record
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	if s.On.IsZero() {
		return errors.New("a date is required, use --on")
	}
	svc := &app.Service{Persistence: s.Persistence}

	if err := svc.Save(ctx, s.On, s.Record); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if rec, ok := svc.Day(s.On); ok {
		pp.Day(s.On, rec)
	} else {
		pp.NoDay(s.On)
	}
	return nil
}
