// Config loading for the lintel CLI. Configuration lives in
// .lintel/config.yaml at the tree root; a missing file is not an error.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lintel-tools/lintel/internal/paths"
	"github.com/lintel-tools/lintel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyKinds       = "kinds"
	cfgKeyResultsFile = "results_file"
)

// defaultConfigYAML is written to config.yaml by lintel init.
const defaultConfigYAML = `# Lintel configuration

# Map document prefixes to kinds (requirement, test, usecase, role).
# Unlisted prefixes classify as requirement.
kinds:
  TEST: test
  USECASE: usecase
  RISK: usecase
  ROLE: role

# Default test-result mapping file (optional; overridable by --results).
# results_file:
`

// loadConfig reads .lintel/config.yaml under root with Viper. A missing
// config file yields defaults.
func loadConfig(root string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(paths.ConfigDir(root))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// configKinds builds the prefix classification from .lintel/config.yaml,
// falling back to the defaults for a missing file or an absent kinds
// section. The kinds map is decoded straight from the file rather than
// through Viper, which folds map keys to lower case while document
// prefixes match case-sensitively. Unrecognized kind values are rejected
// rather than silently reclassified.
func configKinds(root string) (types.PrefixKinds, error) {
	path := filepath.Join(paths.ConfigDir(root), configFileName+"."+configFileType)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.DefaultPrefixKinds(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Kinds map[string]string `yaml:"kinds"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Kinds) == 0 {
		return types.DefaultPrefixKinds(), nil
	}

	kinds := types.PrefixKinds{}
	for prefix, kind := range cfg.Kinds {
		if !types.ValidKind(kind) {
			return nil, fmt.Errorf("config kinds: unknown kind %q for prefix %q", kind, prefix)
		}
		kinds[prefix] = kind
	}
	return kinds, nil
}

// writeDefaultConfig creates .lintel/config.yaml under root. Used by
// lintel init; refuses to overwrite an existing file.
func writeDefaultConfig(root string) error {
	dir := paths.ConfigDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	path := filepath.Join(dir, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
