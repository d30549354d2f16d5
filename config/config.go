package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds everything the application needs at startup. It is loaded
// once in main and handed to the site; nothing reads viper after that.
type Config struct {
	Addr         string `mapstructure:"addr"`
	DatabasePath string `mapstructure:"database_path"`
	SiteName     string `mapstructure:"site_name"`
	PublicURL    string `mapstructure:"public_url"`
	Debug        bool   `mapstructure:"debug"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":5000")
	v.SetDefault("database_path", "posts.db")
	v.SetDefault("site_name", "Inkwell")
	v.SetDefault("public_url", "http://localhost:5000")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("INKWELL")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file is fine, defaults + env cover everything
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
