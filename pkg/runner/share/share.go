package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/record"
	sharepkg "github.com/renraku-cli/renraku/pkg/share"
	"github.com/renraku-cli/renraku/pkg/store"
)

type Share struct {
	Persistence store.Persistence
	On          time.Time
	Record      record.Record
	Print       bool
	Out         io.Writer
}

func (s *Share) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not share, no persistence")
	}
	if s.On.IsZero() {
		return errors.New("a date is required, use --on")
	}
	svc := &app.Service{Persistence: s.Persistence}

	text := svc.ShareText(s.On, s.Record)
	url := svc.ShareURL(s.On, s.Record)

	if s.Print {
		out := s.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, text)
		fmt.Fprintln(out, url)
		return nil
	}
	return sharepkg.Open(url)
}
