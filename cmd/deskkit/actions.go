package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"deskkit/internal/actions"
	deskapp "deskkit/internal/app"
	"deskkit/internal/catalog"
	"deskkit/internal/logger"
	"deskkit/internal/recent"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the commands the main window would present",
	Long:  "actions builds every command collection for the configured locale and prints the menu view without opening a window.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := logger.Logger(logger.NoOpLogger{})
		if cfg.LogLevel == "debug" {
			log = logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)
		}

		cat, err := catalog.New(log)
		if err != nil {
			return err
		}
		acts, err := deskapp.BuildActions(cat.Context(cfg.Locale, cfg.Product), cat, cfg)
		if err != nil {
			return err
		}

		files, err := recent.NewStore(cfg.RecentFile, cfg.MRUSize, log).Load()
		if err != nil {
			return fmt.Errorf("load recent files: %w", err)
		}
		acts.Recent.Refresh(files)

		fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\n\n", acts.Context.Locale)
		return printCollections(cmd.OutOrStdout(), map[string]actions.Collection{
			"load":   acts.LoadView(),
			"export": acts.ExportView(),
			"view":   acts.View.Collection(),
			"recent": acts.Recent.Actions(),
		}, []string{"load", "export", "view", "recent"})
	},
}

func printCollections(out io.Writer, groups map[string]actions.Collection, order []string) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tKIND\tVERB\tSTATE\tLABEL")
	for _, name := range order {
		for _, a := range groups[name] {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, a.Kind(), a.Verb(), state(a), a.Label())
		}
	}
	return tw.Flush()
}

func state(a *actions.Action) string {
	switch {
	case a.Hidden():
		return "hidden"
	case !a.Enabled():
		return "disabled"
	}
	return "enabled"
}
