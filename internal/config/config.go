package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// version of the application.
var version = "0.1.0"

const (
	appName        string = "dejavu"          // Default name of the application
	command        string = "dv"              // Default name of the executable
	DefaultDBPath  string = "stack_memory.db" // Default database path, relative to the working dir
	configFilename string = "config.yml"      // Default config filename
)

type (
	AppConfig struct {
		Name    string      `json:"name"`    // Name of the application
		Cmd     string      `json:"cmd"`     // Name of the executable
		Version string      `json:"version"` // Version of the application
		Info    information `json:"info"`    // Application information
		Path    path        `json:"path"`    // Application paths
		Env     environment `json:"env"`     // Application environment variables
		Flags   *Flags      `json:"-"`       // Command line flags
		File    *ConfigFile `json:"config"`  // Values loaded from the config file
	}

	path struct {
		ConfigFile string `json:"config"` // Path to config file
		Database   string `json:"db"`     // Path to the database in use
	}

	information struct {
		URL  string `json:"url"`  // URL of the application
		Desc string `json:"desc"` // Description of the application
	}

	environment struct {
		NoColor string `json:"no_color"` // Environment variable disabling colors
	}
)

// Flags holds the command line flags shared across commands.
type Flags struct {
	DBPath   string // Database path override
	Config   string // Config file override
	ColorStr string // Color output [always|never]
	Color    bool   // Application color enable
	JSON     bool   // JSON output
	Copy     bool   // Copy top URL into clipboard
	Open     bool   // Open top URL in default browser
	Limit    int    // Max results shown by find
	Verbose  int    // Verbose flag
}

// App is the default application configuration.
var App = &AppConfig{
	Name:    appName,
	Cmd:     command,
	Version: version,
	Info: information{
		URL:  "https://github.com/mateconpizza/dejavu#readme",
		Desc: "Remember the solutions you have already found",
	},
	Env: environment{
		NoColor: "NO_COLOR",
	},
	Flags: &Flags{},
	File:  Defaults(),
}

// SetVerbosity sets the default logger level from the number of -v flags.
func SetVerbosity(verbose int) {
	levels := []slog.Level{
		slog.LevelError,
		slog.LevelWarn,
		slog.LevelInfo,
		slog.LevelDebug,
	}
	level := levels[min(max(verbose, 0), len(levels)-1)]

	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "source" {
					if source, ok := a.Value.Any().(*slog.Source); ok {
						dir, file := filepath.Split(source.File)
						source.File = filepath.Join(filepath.Base(filepath.Clean(dir)), file)

						return slog.Attr{Key: "source", Value: slog.AnyValue(source)}
					}
				}

				return a
			},
		}),
	)
	slog.SetDefault(logger)

	slog.Debug("logging", "level", level)
}
