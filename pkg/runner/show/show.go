package show

import (
	"context"
	"errors"
	"time"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/printers"
	"github.com/renraku-cli/renraku/pkg/store"
)

type Show struct {
	Persistence store.Persistence
	On          time.Time
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	svc := &app.Service{Persistence: s.Persistence}

	on := s.On
	if on.IsZero() {
		on = time.Now()
	}

	pp := printers.PrettyPrint{}
	pp.Month(on.Year(), int(on.Month())-1, time.Now(), svc.HasRecord)

	if rec, ok := svc.Day(on); ok {
		pp.Day(on, rec)
	} else {
		pp.NoDay(on)
	}
	return nil
}
