package ui

import (
	"context"
	"errors"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/store"
	"github.com/renraku-cli/renraku/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	return tui.Run(ctx, &app.Service{Persistence: u.Persistence})
}
