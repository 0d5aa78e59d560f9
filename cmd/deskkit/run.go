package main

import (
	"os"
	"path/filepath"

	deskapp "deskkit/internal/app"
	"deskkit/internal/config"
	"deskkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskkit", "config.toml")
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("locale") {
		cfg.Locale = flags.locale
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("mru-size") {
		cfg.MRUSize = flags.mruSize
	}
	if cmd.Flags().Changed("no-splash") {
		cfg.Splash.Enabled = !flags.noSplash
	}
	return cfg, cfg.Validate()
}

func runGUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs)
	log.Info("Main", "starting", map[string]interface{}{
		"version": version,
		"config":  flags.configPath,
	})

	app.SetMetadata(fyne.AppMetadata{
		ID:      deskapp.AppID,
		Name:    cfg.Product,
		Version: deskapp.AppVersion,
	})
	fyneApp := app.NewWithID(deskapp.AppID)

	application, err := deskapp.NewApplication(fyneApp, cfg, log)
	if err != nil {
		log.Error("Main", err, nil)
		return err
	}

	err = application.Run()
	log.Info("Main", "terminated", nil)
	return err
}
