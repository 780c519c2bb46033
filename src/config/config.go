package config

import (
	"github.com/spf13/viper"
)

const (
	// DefaultEiopaBaseURL is the public host serving the EIOPA risk-free rate dataset.
	DefaultEiopaBaseURL = "https://mehdiechchelh.com/api"

	// DefaultTimeoutSeconds bounds every request issued against the API.
	DefaultTimeoutSeconds = 30
)

type Config struct {
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
}

type ExternalClientConfig struct {
	EIOPA EIOPAConfig `mapstructure:"eiopa"`
}

type EIOPAConfig struct {
	BaseURL        string `mapstructure:"baseUrl"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// LoadConfig reads appsettings.yaml from path. Missing keys fall back to the
// public EIOPA endpoint defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	v.SetDefault("externalClients.eiopa.baseUrl", DefaultEiopaBaseURL)
	v.SetDefault("externalClients.eiopa.timeoutSeconds", DefaultTimeoutSeconds)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no settings file is supplied:
// the public EIOPA endpoint with the default request timeout.
func Default() *Config {
	return &Config{
		ExternalClients: ExternalClientConfig{
			EIOPA: EIOPAConfig{
				BaseURL:        DefaultEiopaBaseURL,
				TimeoutSeconds: DefaultTimeoutSeconds,
			},
		},
	}
}
