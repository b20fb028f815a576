package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/commands/options"
	"github.com/renraku-cli/renraku/pkg/runner/share"
	"github.com/renraku-cli/renraku/pkg/store"
)

func addShare(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	fo := &options.FieldOptions{}
	printOnly := false

	cmd := &cobra.Command{
		Use:   "share",
		Short: "open LINE with the day's summary",
		Long: "Open LINE's share sheet pre-filled with the day's summary. Field flags\n" +
			"override the stored values for this share only, without saving them.",
		Example: `
renraku share --on="2024-1-5"
renraku share --on="2024-1-5" --men-go="9:00" --print
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			if on == nil {
				return errors.New("a date is required, use --on")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			svc := &app.Service{Persistence: p}
			base, _ := svc.Day(*on)
			rec := fo.Overlay(cmd, base)

			s := share.Share{Persistence: p, On: *on, Record: rec, Print: printOnly}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddFieldArgs(cmd, fo)
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the message and URL instead of opening LINE.")

	topLevel.AddCommand(cmd)
}
