// jornadactl is the admin command line for the work log database.
// It talks to the same SQLite file the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "jornadactl",
	Short: "Admin CLI for the work log database",
	Long: `jornadactl inspects and maintains a work log database: summaries,
rate seeding, and exports. It operates directly on the SQLite file.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "jornada.db", "SQLite database path")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
}
