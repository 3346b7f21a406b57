package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amehta/practik/internal/api"
	"github.com/amehta/practik/internal/app"
	"github.com/amehta/practik/internal/config"
	"github.com/amehta/practik/internal/store"
)

// loadConfig resolves configuration from the environment and applies
// flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := cmd.Flags().GetString("user"); v != "" {
		cfg.UserID = v
	}
	if v, _ := cmd.Flags().GetString("grade"); v != "" {
		cfg.Grade = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}

	return cfg, nil
}

// runApp resolves configuration, opens the local attempt log, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	// The attempt log is optional; practice works without it.
	var st *store.Store
	if err := config.EnsureDir(cfg.DBPath); err != nil {
		fmt.Fprintln(os.Stderr, "local attempt log unavailable:", err)
	} else if st, err = store.Open(cfg.DBPath); err != nil {
		fmt.Fprintln(os.Stderr, "local attempt log unavailable:", err)
		st = nil
	} else {
		defer st.Close()
	}

	return app.Run(cfg, client, st)
}
