package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"twocheck/internal/queries"
	"twocheck/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list <queries.json>",
		Short: "List the word pairs of a queries file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := queries.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Print(console.RenderQueries(qs))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
