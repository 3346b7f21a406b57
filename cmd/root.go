package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "practik",
	Short: "Adaptive math practice in the terminal",
	Long:  "Practik is a terminal client for adaptive math practice: pick a skill, answer questions, and the difficulty adjusts to you.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "Practice service URL (overrides PRACTIK_API_URL)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides PRACTIK_USER)")
	rootCmd.PersistentFlags().String("grade", "", "Practice track, junior or middle (overrides PRACTIK_GRADE)")
	rootCmd.PersistentFlags().String("db", "", "Path to the local attempt log (overrides PRACTIK_DB)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
