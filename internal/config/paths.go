package config

import (
	"fmt"

	gap "github.com/muesli/go-app-paths"
)

// ConfigPath returns the path of the config file inside the user config dir.
func ConfigPath() (string, error) {
	scope := gap.NewScope(gap.User, appName)
	p, err := scope.ConfigPath(configFilename)
	if err != nil {
		return "", fmt.Errorf("getting config path: %w", err)
	}

	return p, nil
}
