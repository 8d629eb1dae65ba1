package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"invoicedesk/internal/controller"
	"invoicedesk/internal/domain"
	"invoicedesk/internal/spreadsheet"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage the client list",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients, optionally filtered by a free-text query",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewClientController(a.gw, a.notifier)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		query, _ := cmd.Flags().GetString("query")
		ctl.SetQuery(query)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY")
		for _, c := range ctl.Filtered() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				controller.ListKey(c.ID), c.Name, c.Email, c.Phone, c.Company)
		}
		return w.Flush()
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one client in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		c, err := a.gw.GetClient(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Name:\t%s\n", c.Name)
		fmt.Fprintf(w, "Email:\t%s\n", c.Email)
		fmt.Fprintf(w, "Phone:\t%s\n", c.Phone)
		fmt.Fprintf(w, "Company:\t%s\n", c.Company)
		fmt.Fprintf(w, "Billing address:\t%s\n", c.BillingAddress)
		fmt.Fprintf(w, "Actual address:\t%s\n", c.ActualAddress)
		fmt.Fprintf(w, "Notes:\t%s\n", c.Notes)
		return w.Flush()
	},
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewClientController(a.gw, a.notifier)
		ctl.Form.Set(func(c *domain.Client) {
			c.Name, _ = cmd.Flags().GetString("name")
			c.Email, _ = cmd.Flags().GetString("email")
			c.Phone, _ = cmd.Flags().GetString("phone")
			c.Company, _ = cmd.Flags().GetString("company")
			c.BillingAddress, _ = cmd.Flags().GetString("billing-address")
			c.ActualAddress, _ = cmd.Flags().GetString("actual-address")
			c.Notes, _ = cmd.Flags().GetString("notes")
		})
		if errs := ctl.Form.Errors(); !errs.Valid() {
			for field, msg := range errs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
			return domain.ErrValidationFailed
		}
		return ctl.Create(cmd.Context())
	},
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewClientController(a.gw, a.notifier)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		if !ctl.BeginEdit(args[0]) {
			return fmt.Errorf("client %s: %w", args[0], domain.ErrNotFound)
		}
		ctl.Form.Set(func(c *domain.Client) {
			applyIfChanged(cmd, "name", &c.Name)
			applyIfChanged(cmd, "email", &c.Email)
			applyIfChanged(cmd, "phone", &c.Phone)
			applyIfChanged(cmd, "company", &c.Company)
			applyIfChanged(cmd, "billing-address", &c.BillingAddress)
			applyIfChanged(cmd, "actual-address", &c.ActualAddress)
			applyIfChanged(cmd, "notes", &c.Notes)
		})
		if err := ctl.Update(cmd.Context()); err != nil {
			return err
		}
		ctl.CancelEdit()
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewClientController(a.gw, a.notifier)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		return ctl.Delete(cmd.Context(), args[0])
	},
}

var clientsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all clients to a date-stamped spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewClientController(a.gw, a.notifier)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		f, err := spreadsheet.ExportClients(ctl.Clients())
		if err != nil {
			return err
		}
		path := filepath.Join(a.cfg.Export.Dir, spreadsheet.ExportFilename(time.Now()))
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Exported %d clients to %s\n", len(ctl.Clients()), path)
		return nil
	},
}

var clientsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Preview or commit a client spreadsheet import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		rows, err := spreadsheet.ParseClients(file)
		if err != nil {
			return err
		}

		valid := 0
		for _, row := range rows {
			marker := "INVALID"
			if row.Valid {
				marker = "ok"
				valid++
			}
			fmt.Printf("  row %d [%s] %s <%s>\n", row.Row, marker, row.Client.Name, row.Client.Email)
		}
		fmt.Printf("%d rows parsed, %d valid\n", len(rows), valid)

		commit, _ := cmd.Flags().GetBool("commit")
		if !commit {
			fmt.Println("re-run with --commit to create the valid rows")
			return nil
		}

		result := spreadsheet.NewImporter(a.gw).Commit(cmd.Context(), rows)
		fmt.Printf("Imported %d clients, %d failed\n", result.Succeeded, result.Failed)
		for _, msg := range result.Errors {
			fmt.Fprintln(os.Stderr, "  "+msg)
		}
		return nil
	},
}

var clientsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank import template spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		f, err := spreadsheet.TemplateFile()
		if err != nil {
			return err
		}
		path := filepath.Join(a.cfg.Export.Dir, spreadsheet.TemplateFilename)
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("Template written to " + path)
		return nil
	},
}

// applyIfChanged copies a flag value into dst only when the flag was
// set, so update commands leave untouched fields alone.
func applyIfChanged(cmd *cobra.Command, flag string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetString(flag)
	}
}

func init() {
	clientsListCmd.Flags().StringP("query", "q", "", "case-insensitive filter over name/email/company/phone")

	for _, c := range []*cobra.Command{clientsCreateCmd, clientsUpdateCmd} {
		c.Flags().String("name", "", "client name")
		c.Flags().String("email", "", "client email")
		c.Flags().String("phone", "", "phone number")
		c.Flags().String("company", "", "company name")
		c.Flags().String("billing-address", "", "billing address")
		c.Flags().String("actual-address", "", "actual address")
		c.Flags().String("notes", "", "free-form notes")
	}

	clientsImportCmd.Flags().Bool("commit", false, "create the valid rows instead of only previewing")

	clientsCmd.AddCommand(clientsListCmd, clientsShowCmd, clientsCreateCmd,
		clientsUpdateCmd, clientsDeleteCmd, clientsExportCmd, clientsImportCmd,
		clientsTemplateCmd)
	rootCmd.AddCommand(clientsCmd)
}
