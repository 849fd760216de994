package config

import (
	"strings"

	"github.com/spf13/viper"
)

// InitEnv binds environment variables to viper keys. Nested keys such as
// "store.bucket" resolve from STORE_BUCKET, and a non empty prefix is
// prepended with an underscore. It is safe to call more than once.
func InitEnv(prefix string) {
	if prefix != "" {
		viper.SetEnvPrefix(strings.TrimSuffix(prefix, "_"))
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}
