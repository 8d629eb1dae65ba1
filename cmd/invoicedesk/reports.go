package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicedesk/internal/controller"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Payment report summary and PDF export",
}

var reportsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the aggregate payment report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewReportController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		if err := ctl.Load(cmd.Context()); err != nil {
			return err
		}
		s := ctl.Summary()

		fmt.Printf("Total invoiced:    %.2f\n", s.TotalInvoiced.Float64())
		fmt.Printf("Total paid:        %.2f\n", s.TotalPaid.Float64())
		fmt.Printf("Outstanding:       %.2f\n", s.TotalOutstanding.Float64())
		fmt.Printf("Invoices:          %d (avg %.2f)\n", s.InvoiceCount, s.AverageInvoice.Float64())
		fmt.Printf("Clients:           %d\n", s.ClientCount)
		fmt.Printf("Collection rate:   %.1f%%\n", s.CollectionRate.Float64())
		fmt.Printf("Status:            %d paid / %d partial / %d unpaid\n",
			s.StatusBreakdown.Paid, s.StatusBreakdown.Partial, s.StatusBreakdown.Unpaid)

		if len(s.TopClients) > 0 {
			fmt.Println("\nTop clients:")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, tc := range s.TopClients {
				fmt.Fprintf(w, "  %s\t%s\t%.2f\n", tc.Name, tc.Email, tc.Revenue.Float64())
			}
			w.Flush()
		}
		if len(s.MonthlyData) > 0 {
			fmt.Println("\nMonthly revenue:")
			for _, m := range s.MonthlyData {
				fmt.Printf("  %s  %.2f\n", m.Month, m.Amount.Float64())
			}
		}
		return nil
	},
}

var reportsPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Download the report as a date-stamped PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.drainNotifications()

		ctl := controller.NewReportController(a.gw, a.gw, a.notifier, a.cfg.Export.Dir)
		path, err := ctl.DownloadPDF(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Saved " + path)
		return nil
	},
}

func init() {
	reportsCmd.AddCommand(reportsSummaryCmd, reportsPDFCmd)
	rootCmd.AddCommand(reportsCmd)
}
