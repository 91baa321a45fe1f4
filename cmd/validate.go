package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"twocheck/internal/logging"
	"twocheck/internal/queries"
)

var validateCmd = &cobra.Command{
	Use:   "validate <queries.json>",
	Short: "Validate a queries file against the JSON Schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := queries.Load(args[0])
		if err != nil {
			return err
		}
		logging.Success(fmt.Sprintf("%s is valid (%d queries)", args[0], len(qs)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
