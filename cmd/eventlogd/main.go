package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eventlogd",
	Short: "eventlogd - structured event logging demo daemon",
	Long: `eventlogd exercises the eventlog library end to end: it emits
heartbeat events as newline-delimited JSON to a configurable sink and
exposes Prometheus metrics about the logging calls.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
