package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/renraku-cli/renraku/pkg/commands/options"
	"github.com/renraku-cli/renraku/pkg/runner/show"
	"github.com/renraku-cli/renraku/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the month grid and one day's record",
		Example: `
renraku show
renraku show --on="2024-1-5"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{Persistence: p}
			if on != nil {
				s.On = *on
			} else {
				s.On = time.Now()
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
