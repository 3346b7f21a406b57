package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amehta/practik/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local practice statistics per skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open attempt log: %w", err)
		}
		defer st.Close()

		stats, err := st.StatsBySkill(context.Background())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SKILL\tATTEMPTS\tCORRECT\tACCURACY\tAVG TIME")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%.1fs\n",
				s.SkillID, s.Attempts, s.Correct, s.Accuracy()*100, s.AvgTimeSecs)
		}
		return w.Flush()
	},
}
