package main

import (
	"fmt"
	"os"

	"nifty-wallet-tui/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- MAIN --------------------

var opts options

var rootCmd = &cobra.Command{
	Use:   "nifty-wallet-tui",
	Short: "Terminal wallet for reviewing and approving Ethereum transactions",
	Long: `nifty-wallet-tui shows your watched accounts, their balances and tokens,
and lets you review, edit the gas of, approve or reject transactions queued
in a JSON file. Approved transactions are handed to an external signer as a
QR code.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath(), "config file")
	f.StringVar(&opts.queuePath, "queue", "", "JSON file of transactions awaiting approval")
	f.BoolVar(&opts.debug, "debug", false, "start with the debug log panel open")
	f.BoolVar(&opts.notification, "notification", false, "confirmation-only window that exits when the queue is empty")
	f.StringVar(&opts.currency, "currency", "", "fiat currency for conversions (overrides config)")
	f.Float64Var(&opts.rate, "rate", 0, "fiat value of one ETH (overrides config)")
}

func run(opts options) error {
	cfg, err := config.LoadOrCreate(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	m := newModel(cfg, opts)
	m.store.Subscribe(persistAccounts(opts.configPath, func(err error) {
		m.addLog("error", "Saving accounts failed: "+err.Error())
	}))
	defer m.queueCancel()

	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
