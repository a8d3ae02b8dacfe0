package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from the data directory. Every key has a
// viper.SetDefault fallback at server bootstrap, so a missing file is fine.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
