package cmd

import (
	"github.com/spf13/cobra"
)

// practiceCmd is an explicit alias for the root behavior, so
// "practik practice" reads naturally in scripts and docs.
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
