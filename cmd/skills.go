package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amehta/practik/internal/api"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills available for a grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
		defer cancel()

		list, err := client.Skills(ctx, cfg.Grade)
		if err != nil {
			return fmt.Errorf("fetch skills: %w", err)
		}

		if len(list) == 0 {
			fmt.Printf("No skills available for grade %s.\n", cfg.Grade)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTOPIC")
		for _, sk := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", sk.ID, sk.Name, sk.TopicKey)
		}
		return w.Flush()
	},
}
