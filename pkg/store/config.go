package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the location of the planner database.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .lotus config (yaml implicit) from the working
// directory or LOTUS_CONFIG_PATH, with LOTUS_* environment overrides. The
// database defaults to ~/.lotus.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lotus.db")
	viper.SetConfigName(".lotus")
	viper.SetEnvPrefix("LOTUS")
	viper.AutomaticEnv()

	if override := os.Getenv("LOTUS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand db path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
