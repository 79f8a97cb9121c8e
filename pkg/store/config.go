package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves the file locations the store works against.
type Config interface {
	DataPath() string
	BackupPath() string
	ExportPath() string
}

// LoadConfig reads .taskmaster config (current directory or
// TASKMASTER_CONFIG_PATH), with TASKMASTER_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("data", "taskmaster_data.json")
	viper.SetDefault("backups", "~/.taskmaster/backups")
	viper.SetDefault("export", "taskmaster_export.txt")
	viper.SetConfigName(".taskmaster") // .yaml is implicit
	viper.SetEnvPrefix("TASKMASTER")
	viper.AutomaticEnv()

	if override := os.Getenv("TASKMASTER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &fileConfig{
		Data:    viper.GetString("data"),
		Backups: viper.GetString("backups"),
		Export:  viper.GetString("export"),
	}
	for _, p := range []*string{&cfg.Data, &cfg.Backups, &cfg.Export} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, fmt.Errorf("store: expand path %q: %w", *p, err)
		}
		*p = expanded
	}
	return cfg, nil
}

type fileConfig struct {
	Data    string `json:"data"`
	Backups string `json:"backups"`
	Export  string `json:"export"`
}

func (f *fileConfig) DataPath() string   { return f.Data }
func (f *fileConfig) BackupPath() string { return f.Backups }
func (f *fileConfig) ExportPath() string { return f.Export }
