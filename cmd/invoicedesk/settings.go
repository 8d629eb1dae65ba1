package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted preferences",
}

var darkModeCmd = &cobra.Command{
	Use:       "dark-mode [on|off]",
	Short:     "Show or set the dark-mode preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if err := a.prefs.SetDarkMode(args[0] == "on"); err != nil {
				return fmt.Errorf("saving settings: %w", err)
			}
		}
		if a.prefs.DarkMode() {
			fmt.Println("dark mode: on")
		} else {
			fmt.Println("dark mode: off")
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(darkModeCmd)
	rootCmd.AddCommand(settingsCmd)
}
