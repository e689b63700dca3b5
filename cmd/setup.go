package cmd

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/db"
	"github.com/mateconpizza/dejavu/internal/sys/files"
	"github.com/mateconpizza/dejavu/internal/sys/terminal"
	"github.com/mateconpizza/dejavu/internal/ui/color"
	"github.com/mateconpizza/dejavu/internal/ui/printer"
)

func initConfig() {
	config.SetVerbosity(config.App.Flags.Verbose)
}

// loadConfig reads the config file, applies the command line overrides and
// sets the output color.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.App

	p, err := configFilePath()
	if err != nil {
		return err
	}
	cfg.Path.ConfigFile = p

	file := config.Defaults()
	if files.Exists(p) {
		if err := files.YamlRead(p, file); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		slog.Debug("config file not found, using defaults", "path", p)
	}

	if err := config.Validate(file); err != nil {
		return fmt.Errorf("%q: %w", p, err)
	}
	cfg.File = file

	cfg.Path.Database = cmp.Or(cfg.Flags.DBPath, file.DBPath)

	colorStr := cmp.Or(cfg.Flags.ColorStr, file.Color)
	if colorStr != "always" && colorStr != "never" {
		return fmt.Errorf("%w: --color %q: %w", invalidInvocation(cmd), colorStr, config.ErrColorValue)
	}

	// enable global color
	cfg.Flags.Color = colorStr == "always" && !terminal.IsPiped() && !terminal.NoColorEnv(cfg.Env.NoColor)
	color.Enable(cfg.Flags.Color)

	if w, err := terminal.Width(); err == nil {
		printer.FitWidth(w)
	}

	slog.Debug("config loaded", "db", cfg.Path.Database, "driver", file.Driver, "color", cfg.Flags.Color)

	return nil
}

// configFilePath returns the config file from the flag or the user config
// dir.
func configFilePath() (string, error) {
	if p := config.App.Flags.Config; p != "" {
		return p, nil
	}

	p, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return p, nil
}

// openStore opens and initializes the store at the configured path. The
// caller must close it.
func openStore(ctx context.Context) (*db.SQLite, error) {
	cfg := config.App

	c, err := db.NewSQLiteCfg(cfg.Path.Database)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	c.Driver = cfg.File.Driver
	c.CaseSensitive = cfg.File.CaseSensitive

	r := db.New(c)
	if err := r.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return r, nil
}

func closeStore(r *db.SQLite) {
	if !r.IsOpen() {
		return
	}

	if err := r.Close(); err != nil {
		slog.Error("closing store", "name", r.Name(), "error", err)
	}
}

// PrettyVersion formats version in a pretty way.
func PrettyVersion() string {
	name := color.BrightBlue(config.App.Name).Bold().String()
	return fmt.Sprintf("%s v%s %s/%s", name, config.App.Version, runtime.GOOS, runtime.GOARCH)
}
