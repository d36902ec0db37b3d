/*
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the chaincode process settings from an optional file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Chaincode ChaincodeConfig `mapstructure:"chaincode"`
	Log       LogConfig       `mapstructure:"log"`
}

// ChaincodeConfig selects how the chaincode reaches its peer. An empty ServerAddress makes the
// peer launch the chaincode; otherwise it runs as an external chaincode server.
type ChaincodeConfig struct {
	ID            string    `mapstructure:"id"`
	ServerAddress string    `mapstructure:"server_address"`
	TLS           TLSConfig `mapstructure:"tls"`
}

type TLSConfig struct {
	Disabled     bool   `mapstructure:"disabled"`
	KeyFile      string `mapstructure:"key_file"`
	CertFile     string `mapstructure:"cert_file"`
	ClientCAFile string `mapstructure:"client_ca_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads path, if set, then applies environment overrides such as CHAINCODE_SERVER_ADDRESS
// or LOG_LEVEL.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("chaincode.id", "")
	v.SetDefault("chaincode.server_address", "")
	v.SetDefault("chaincode.tls.disabled", true)
	v.SetDefault("chaincode.tls.key_file", "")
	v.SetDefault("chaincode.tls.cert_file", "")
	v.SetDefault("chaincode.tls.client_ca_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that an external chaincode server has what it needs to start.
func (c Config) Validate() error {
	if c.Chaincode.ServerAddress == "" {
		return nil
	}
	if c.Chaincode.ID == "" {
		return fmt.Errorf("chaincode.id is required when chaincode.server_address is set")
	}
	tls := c.Chaincode.TLS
	if !tls.Disabled && (tls.KeyFile == "" || tls.CertFile == "") {
		return fmt.Errorf("chaincode.tls.key_file and chaincode.tls.cert_file are required unless TLS is disabled")
	}
	return nil
}
