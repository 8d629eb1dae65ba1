// Command invoicedesk is a terminal front-end for the invoice
// management backend: client and invoice CRUD, spreadsheet
// import/export, payment recording and report downloads.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"invoicedesk/internal/config"
	"invoicedesk/internal/gateway"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/notify"
	"invoicedesk/internal/settings"
)

var version = "1.0.0"

// app bundles the shared dependencies every command needs.
type app struct {
	cfg      *config.Config
	gw       *gateway.Gateway
	notifier *notify.Notifier
	prefs    *settings.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg.Log)

	gw := gateway.New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout})
	return &app{
		cfg:      cfg,
		gw:       gw,
		notifier: notify.New(),
		prefs:    settings.Load(cfg.Settings.Path),
	}, nil
}

// drainNotifications prints any pending notifications to stderr before
// the process exits; in a long-lived UI they would expire on their own.
func (a *app) drainNotifications() {
	for _, n := range a.notifier.Active() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Level, n.Message)
	}
}

var rootCmd = &cobra.Command{
	Use:     "invoicedesk",
	Short:   "Terminal client for the invoice management API",
	Version: version,
	Long: `invoicedesk manages clients, invoices and payment reports against a
remote invoice API. It mirrors the server's collections in memory,
validates input before submission, and handles spreadsheet
import/export and server-rendered PDF downloads.`,
}

func main() {
	// A .env next to the binary is a convenience for development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
