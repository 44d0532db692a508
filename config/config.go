package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/lixenwraith/tank-gunner/parameter"
)

// Config holds the user-tunable settings. Everything has a default so
// the game runs with no config file at all.
type Config struct {
	MasterVolume float64 `mapstructure:"master_volume"`
	Mute         bool    `mapstructure:"mute"`
	Seed         uint64  `mapstructure:"seed"` // 0 = seed from clock
	LogFile      string  `mapstructure:"log_file"`
	LogLevel     string  `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("master_volume", parameter.AudioMasterVolume)
	v.SetDefault("mute", false)
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

// Load reads TOML config from path, or the defaults when path is empty
// or the file does not exist. A malformed or unreadable file is an
// error; a missing one is not.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 {
		return Config{}, fmt.Errorf("master_volume %.2f out of range [0, 1]", cfg.MasterVolume)
	}
	return cfg, nil
}
