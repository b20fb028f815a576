package list

import (
	"context"
	"errors"
	"time"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/printers"
	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/store"
)

type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	svc := &app.Service{Persistence: l.Persistence}

	days, err := svc.Days(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.List(days, func(d time.Time) (record.Record, bool) {
		return svc.Day(d)
	})
	return nil
}
