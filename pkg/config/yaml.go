package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configType = "yaml"

var placeholder = regexp.MustCompile(`\${([^}]+)}`)

// Init loads a YAML document into viper, resolves ${ENV} placeholders and
// unmarshals the result into out. It panics on any error.
func Init(out any, reader io.Reader) {
	viper.SetConfigType(configType)
	if err := viper.ReadConfig(reader); err != nil {
		panic(fmt.Errorf("failed to read the configuration file: %w", err))
	}
	if err := replaceEnvVarPlaceholders(viper.GetViper()); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()
	if err := viper.Unmarshal(out); err != nil {
		panic(fmt.Errorf("failed to unmarshal configuration: %w", err))
	}
	log.Info().Msg("Viper initialized!")
}

// Load decodes a YAML document into out using its yaml tags, after
// resolving ${ENV} placeholders. Unlike Init it does not touch the global
// viper instance.
func Load(out any, reader io.Reader) error {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read the configuration: %w", err)
	}
	expanded, err := expand(string(raw))
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return nil
}

func replaceEnvVarPlaceholders(v *viper.Viper) error {
	for _, key := range v.AllKeys() {
		value, ok := v.Get(key).(string)
		if !ok || !strings.Contains(value, "${") {
			continue
		}
		expanded, err := expand(value)
		if err != nil {
			return err
		}
		v.Set(key, expanded)
	}
	return nil
}

func expand(value string) (string, error) {
	missed := make([]string, 0)
	out := placeholder.ReplaceAllStringFunc(value, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		envValue := os.Getenv(name)
		if len(envValue) == 0 {
			missed = append(missed, name)
		}
		return envValue
	})
	if len(missed) != 0 {
		return "", fmt.Errorf("missing environment variables: %s", strings.Join(missed, ","))
	}
	return out, nil
}
