package store

import (
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the on-disk database lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .vita config file (current directory or
// VITA_CONFIG_PATH) and environment overrides.
func LoadConfig() (Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("path", filepath.Join(home, ".vita.db"))
	viper.SetConfigName(".vita") // .yaml is implicit
	viper.SetEnvPrefix("VITA")
	viper.AutomaticEnv()

	if override := os.Getenv("VITA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// FixedConfig pins the base path, used by tests and the --path flag.
type FixedConfig struct {
	Path string
}

func (f FixedConfig) BasePath() string {
	return f.Path
}
