package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicedesk/internal/controller"
	"invoicedesk/internal/domain"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices and payments",
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices with derived status and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}

		clients := controller.NewClientController(a.gw, a.notifier)
		if err := clients.Load(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tDATE\tSTATUS\tTOTAL\tPAID")
		for _, inv := range ctl.Invoices() {
			name := "(unknown client)"
			if c, ok := clients.Lookup(inv.For.ID); ok {
				name = c.Name
			}
			status := inv.Status
			if status == "" {
				status = domain.DeriveStatus(inv.AmountPaid.Float64(), inv.Total.Float64())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%.2f\t%s%.2f\n",
				controller.ListKey(inv.ID), inv.InvoiceNumber, name, inv.Date, status,
				inv.Currency.Symbol(), inv.Total.Float64(),
				inv.Currency.Symbol(), inv.AmountPaid.Float64())
		}
		return w.Flush()
	},
}

var invoicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice from flags and repeatable --item entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := fillInvoiceForm(cmd, ctl); err != nil {
			return err
		}
		if errs := ctl.Form.Errors(); !errs.Valid() {
			for field, msg := range errs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
			return domain.ErrValidationFailed
		}
		totals := ctl.Form.Totals()
		fmt.Printf("Subtotal %.2f, item tax %.2f, GST %.2f, total %.2f\n",
			totals.Subtotal, totals.ItemTax, totals.GSTAmount, totals.Total)
		return ctl.Submit(cmd.Context())
	},
}

var invoicesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an invoice; flags not given keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		if !ctl.BeginEdit(args[0]) {
			return fmt.Errorf("invoice %s: %w", args[0], domain.ErrNotFound)
		}
		if err := fillInvoiceForm(cmd, ctl); err != nil {
			return err
		}
		if err := ctl.Submit(cmd.Context()); err != nil {
			return err
		}
		ctl.CancelEdit()
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		return ctl.Delete(cmd.Context(), args[0])
	},
}

var invoicesPayCmd = &cobra.Command{
	Use:   "pay <id> <amount>",
	Short: "Record a payment against an invoice",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		// An unparsable amount becomes NaN so the controller rejects it
		// the same way it rejects any other invalid amount.
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			amount = math.NaN()
		}

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		ctl.Select(args[0])
		return ctl.RecordPayment(cmd.Context(), amount)
	},
}

var invoicesPDFCmd = &cobra.Command{
	Use:   "pdf <id>",
	Short: "Download the rendered PDF for an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewInvoiceController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		path, err := ctl.DownloadPDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println("Saved " + path)
		return nil
	},
}

// fillInvoiceForm applies the shared create/update flags to the
// controller's form. Items replace the existing list whenever at least
// one --item flag is given.
func fillInvoiceForm(cmd *cobra.Command, ctl *controller.InvoiceController) error {
	entries, _ := cmd.Flags().GetStringArray("item")
	items := make([]domain.LineItem, 0, len(entries))
	for _, entry := range entries {
		item, err := parseLineItem(entry)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	ctl.Form.Set(func(inv *domain.Invoice) {
		if cmd.Flags().Changed("client") {
			inv.For.ID, _ = cmd.Flags().GetString("client")
		}
		if cmd.Flags().Changed("date") {
			inv.Date, _ = cmd.Flags().GetString("date")
		}
		if cmd.Flags().Changed("due-date") {
			inv.DueDate, _ = cmd.Flags().GetString("due-date")
		}
		if cmd.Flags().Changed("currency") {
			cur, _ := cmd.Flags().GetString("currency")
			inv.Currency = domain.Currency(cur)
		}
		if cmd.Flags().Changed("gst-rate") {
			rate, _ := cmd.Flags().GetFloat64("gst-rate")
			inv.GSTRate = domain.Number(rate)
		}
		if cmd.Flags().Changed("from-name") {
			inv.From.Name, _ = cmd.Flags().GetString("from-name")
		}
		if cmd.Flags().Changed("from-email") {
			inv.From.Email, _ = cmd.Flags().GetString("from-email")
		}
		if len(items) > 0 {
			inv.Items = items
		}
	})
	return nil
}

// parseLineItem decodes a "description|quantity|unit price|tax" flag
// value. Quantity, price and tax tolerate blanks, which parse as zero
// and surface through form validation rather than a flag error.
func parseLineItem(entry string) (domain.LineItem, error) {
	parts := strings.Split(entry, "|")
	if len(parts) != 4 {
		return domain.LineItem{}, fmt.Errorf("item %q: want description|quantity|price|tax", entry)
	}
	return domain.LineItem{
		Description: strings.TrimSpace(parts[0]),
		Quantity:    parseNumber(parts[1]),
		UnitPrice:   parseNumber(parts[2]),
		Tax:         parseNumber(parts[3]),
	}, nil
}

func parseNumber(s string) domain.Number {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return domain.Number(v)
}

func init() {
	for _, c := range []*cobra.Command{invoicesCreateCmd, invoicesUpdateCmd} {
		c.Flags().String("client", "", "id of the client the invoice is for")
		c.Flags().String("date", "", "issue date (YYYY-MM-DD)")
		c.Flags().String("due-date", "", "due date (YYYY-MM-DD)")
		c.Flags().String("currency", "", "INR, USD or EUR")
		c.Flags().Float64("gst-rate", 0, "GST percentage applied to the subtotal")
		c.Flags().String("from-name", "", "issuer name")
		c.Flags().String("from-email", "", "issuer email")
		c.Flags().StringArray("item", nil, "line item as description|quantity|price|tax (repeatable)")
	}

	invoicesCmd.AddCommand(invoicesListCmd, invoicesCreateCmd, invoicesUpdateCmd,
		invoicesDeleteCmd, invoicesPayCmd, invoicesPDFCmd)
	rootCmd.AddCommand(invoicesCmd)
}
