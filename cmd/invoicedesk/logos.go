package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicedesk/internal/port"
)

var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "Manage uploaded issuer logos",
}

var logosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored logos",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		logos, err := a.gw.ListLogos(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILENAME\tORIGINAL\tSIZE\tURL")
		for _, l := range logos {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", l.Filename, l.OriginalName, l.Size, l.URL)
		}
		return w.Flush()
	},
}

var logosUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a logo image (png, jpg, jpeg, gif or svg, max 5MB)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		info, err := file.Stat()
		if err != nil {
			return err
		}

		logo, err := a.gw.UploadLogo(cmd.Context(), port.LogoUploadInput{
			Filename: filepath.Base(args[0]),
			Body:     file,
			Size:     info.Size(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded %s as %s (%s)\n", logo.OriginalName, logo.Filename, logo.URL)
		return nil
	},
}

var logosDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a stored logo by its server filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.gw.DeleteLogo(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted " + args[0])
		return nil
	},
}

func init() {
	logosCmd.AddCommand(logosListCmd, logosUploadCmd, logosDeleteCmd)
	rootCmd.AddCommand(logosCmd)
}
