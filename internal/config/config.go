// Package config resolves filesystem locations for soundcheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFile = "credentials.json"

// Dir returns the configuration directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/soundcheck.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "soundcheck"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "soundcheck"), nil
}

// DefaultCredentialsPath returns where OAuth2 credential material is expected
// by default. If the home directory cannot be determined the path degrades to
// a relative one; the existence check will simply report it as missing.
func DefaultCredentialsPath() string {
	d, err := Dir()
	if err != nil {
		return filepath.Join(".config", "soundcheck", credentialsFile)
	}
	return filepath.Join(d, credentialsFile)
}
