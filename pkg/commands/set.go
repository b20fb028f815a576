package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/renraku-cli/renraku/pkg/app"
	"github.com/renraku-cli/renraku/pkg/commands/options"
	"github.com/renraku-cli/renraku/pkg/record"
	"github.com/renraku-cli/renraku/pkg/runner/set"
	"github.com/renraku-cli/renraku/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	fo := &options.FieldOptions{}
	clearDay := false

	cmd := &cobra.Command{
		Use:   "set",
		Short: "save a day's record",
		Long: "Save a day's record. Field flags overlay whatever is already stored,\n" +
			"so setting one field keeps the rest. Saving with every field blank, or\n" +
			"with --clear, deletes the day.",
		Example: `
renraku set --on="2024-1-5" --men-go="8:00" --men-balls=3
renraku set --on="2024-1-5" --clear
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
			if clearDay {
				rec = record.Record{}
			}

			s := set.Set{Persistence: p, On: *on, Record: rec}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddFieldArgs(cmd, fo)
	cmd.Flags().BoolVar(&clearDay, "clear", false, "Delete the day's record.")

	topLevel.AddCommand(cmd)
}
