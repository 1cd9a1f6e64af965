package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/nabilahcare/klinik_backend/cmd/http"
	systemcmd "github.com/nabilahcare/klinik_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "klinik",
	Short: "Appointment booking and patient records backend for Klinik Nabilah Pulungan.",
	Long: `Klinik backend serves the clinic's booking front end: reservations with
slot-capacity checks, a deduplicated patient directory, a treatment and
product catalog, reporting, and printable patient status documents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
