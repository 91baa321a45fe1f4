package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"twocheck/internal/checker"
	"twocheck/internal/config"
	"twocheck/internal/queries"
	"twocheck/internal/ui/console"
)

func init() {
	var auto bool
	cmd := &cobra.Command{
		Use:   "check <queries.json>",
		Short: "Run every word-pair query and pause on misses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := queries.Load(args[0])
			if err != nil {
				return err
			}
			c := checker.New(config.Get().Search)
			r := console.NewReporter(!auto)
			if err := c.Run(qs, r); err != nil {
				return err
			}
			fmt.Print(r.Summary())

			return nil
		},
	}
	cmd.Flags().BoolVar(&auto, "auto", false, "do not pause on misses; report them in the summary only")
	rootCmd.AddCommand(cmd)
}
