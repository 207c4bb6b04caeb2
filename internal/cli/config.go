package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/officedesk/internal/paths"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeySeed     = "seed"
	cfgKeyLogLevel = "log_level"
	cfgKeyColor    = "color"

	// envPrefix lets OFFICEDESK_BACKEND and friends override config.yaml.
	envPrefix = "OFFICEDESK"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	Seed     bool   `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	Color    bool   `yaml:"color"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:  types.BackendMemory,
		Seed:     true,
		LogLevel: "warn",
		Color:    true,
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// loadConfig reads config.yaml from configDir using Viper, writing a default
// file first if none exists. Environment variables prefixed OFFICEDESK_ and
// the --backend / --no-color flags take precedence over the file.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("create config dir: %w", err)
	}
	if _, err := writeConfigIfMissing(filepath.Join(configDir, configFileExt)); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	def := defaultConfigFile()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyColor, def.Color)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags.backend != "" {
		v.Set(cfgKeyBackend, flags.backend)
	}
	if flags.noColor {
		v.Set(cfgKeyColor, false)
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		Seed:     v.GetBool(cfgKeySeed),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Color:    v.GetBool(cfgKeyColor),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. Reports whether it wrote the file.
func writeConfigIfMissing(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# officedesk configuration\n# backend: memory | sqlite (both in-memory, discarded on exit)\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}
