package config

import (
	"strings"

	"github.com/spf13/viper"
)

// New creates a new Viper instance with default configuration.
func New() *viper.Viper {
	v := viper.NewWithOptions(viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")))
	v.SetEnvPrefix("gitreview")
	v.AutomaticEnv() // read in environment variables that match

	setDefaults(v)

	return v
}
