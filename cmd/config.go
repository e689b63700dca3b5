package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/sys/files"
	"github.com/mateconpizza/dejavu/internal/ui/printer"
)

type configFlags struct {
	create bool
	force  bool
	json   bool
	path   bool
}

var cfgFlags = configFlags{}

func init() {
	f := configCmd.Flags()
	f.BoolVar(&cfgFlags.create, "create", false, "write the default config file")
	f.BoolVar(&cfgFlags.force, "force", false, "overwrite an existing config file")
	f.BoolVarP(&cfgFlags.json, "json", "j", false, "print the effective config in JSON format")
	f.BoolVarP(&cfgFlags.path, "path", "p", false, "print the config file path")
	configCmd.MarkFlagsMutuallyExclusive("create", "json", "path")
	Root.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.App
		w := cmd.OutOrStdout()

		switch {
		case cfgFlags.create:
			p := cfg.Path.ConfigFile
			if err := files.YamlWrite(p, config.Defaults(), cfgFlags.force); err != nil {
				return fmt.Errorf("%w", err)
			}
			fmt.Fprintf(w, "config file created: %s\n", p)

			return nil
		case cfgFlags.json:
			return printer.JSON(w, cfg)
		case cfgFlags.path:
			fmt.Fprintln(w, cfg.Path.ConfigFile)

			return nil
		}

		b, err := yaml.Marshal(cfg.File)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprint(w, string(b))

		return nil
	},
}
