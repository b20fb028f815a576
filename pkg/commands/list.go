package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/renraku-cli/renraku/pkg/runner/list"
	"github.com/renraku-cli/renraku/pkg/store"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list every day with a stored record",
		Example: `
renraku list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := list.List{Persistence: p}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
