package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var flags struct {
	configPath string
	locale     string
	logLevel   string
	mruSize    int
	noSplash   bool
}

var rootCmd = &cobra.Command{
	Use:           "deskkit",
	Short:         "Document viewer built on the deskkit action toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deskkit %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", defaultConfigPath(), "path to the TOML config file")
	pf.StringVar(&flags.locale, "locale", "", "UI locale, e.g. en or de (default: system locale)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&flags.mruSize, "mru-size", 0, "number of recent files to keep")
	rootCmd.Flags().BoolVar(&flags.noSplash, "no-splash", false, "skip the splash window")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(actionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "deskkit:", err)
		os.Exit(1)
	}
}
