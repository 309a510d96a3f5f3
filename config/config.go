// Package config wires application settings through viper: typed defaults, a
// TOML file under the cfmt config directory, and CFMT_-prefixed environment
// overrides.
package config

import (
	"strings"

	"github.com/cfmt-cli/cfmt/constant"
	"github.com/cfmt-cli/cfmt/filesystem"
	"github.com/cfmt-cli/cfmt/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted, dash-separated configuration keys onto
// environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Setup points viper at the cfmt config file, binds the exposed environment
// variables, and seeds the registered defaults. A missing config file is not
// an error; every field then keeps its default.
func Setup() error {
	viper.SetConfigName(constant.Cfmt)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Cfmt)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
