package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "metsgen",
	Short: "Generate METS structure documents from Islandora metadata",
	Long: `metsgen builds a METS document (fileSec and logical structMap) for a
repository object, its members and the collections it belongs to.

Models are resolved through the repository's taxonomy terms, and every
object is identified by an ARK derived from its UUID.

Modes:
  local   read node.json and members.json exported to a directory
  fetch   download node and member documents for one or more node IDs

Configuration:
  Flags override metsgen.yaml in the working directory (or --config).
  METSGEN_USERNAME and METSGEN_PASSWORD (also read from .env) supply
  credentials for fetch without prompting.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Repository unreachable or request failed
  12 - Malformed input document
  13 - Credentials unavailable or prompt cancelled
  14 - Output could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a metsgen.yaml file (default: ./metsgen.yaml if present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
