package objectstore

import (
	"errors"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix prefixes every env key read by LoadConfig.
const DefaultEnvPrefix = "MODELSERVER_STORE_"

type Config struct {
	// Endpoint is host:port without a scheme, e.g. s3.amazonaws.com.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Prefix is the directory of the model store inside the bucket.
	Prefix string
	UseSSL bool
	// BucketLookup is one of auto, dns or path.
	BucketLookup string
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("object store config is nil")
	}
	if c.Endpoint == "" {
		return errors.New("object store endpoint is empty")
	}
	if c.Bucket == "" {
		return errors.New("object store bucket is empty")
	}
	return nil
}

// LoadConfig reads <prefix>ENDPOINT, ACCESS_KEY_ID, SECRET_ACCESS_KEY,
// REGION, BUCKET, MODEL_PREFIX, USE_SSL and BUCKET_LOOKUP from viper.
func LoadConfig(prefix string) (*Config, error) {
	viper.SetDefault(prefix+"USE_SSL", true)
	viper.SetDefault(prefix+"BUCKET_LOOKUP", "auto")
	conf := &Config{
		Endpoint:        viper.GetString(prefix + "ENDPOINT"),
		AccessKeyID:     viper.GetString(prefix + "ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString(prefix + "SECRET_ACCESS_KEY"),
		Region:          viper.GetString(prefix + "REGION"),
		Bucket:          viper.GetString(prefix + "BUCKET"),
		Prefix:          viper.GetString(prefix + "MODEL_PREFIX"),
		UseSSL:          viper.GetBool(prefix + "USE_SSL"),
		BucketLookup:    viper.GetString(prefix + "BUCKET_LOOKUP"),
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
