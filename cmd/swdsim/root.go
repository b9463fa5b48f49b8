// The swdsim command runs demo simulations of the SWD debug-interface
// controller.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "swdsim",
	Short: "swdsim simulates an SWD debug-interface controller.",
	Long: `swdsim simulates a debug-interface controller that bridges a ` +
		`byte-wide host bus to an SWD link engine. It can drive scripted ` +
		`or randomized workloads through the controller and record ` +
		`transaction traces.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can provide defaults such as SWDSIM_MONITOR_PORT.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
