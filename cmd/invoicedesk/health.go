package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the backend liveness endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		status, err := a.gw.Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("backend %s: %s", a.cfg.API.BaseURL, status.Status)
		if status.Database != "" {
			fmt.Printf(" (database %s)", status.Database)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
