package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName   = "config"
	RegistryFlagName = "registry"
	KeyFlagName      = "key"
)

type Config struct {
	KeeperConfig KeeperConfig             `mapstructure:"keeper"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains"`
}

type KeeperConfig struct {
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	Env                       string `mapstructure:"env"`
	Id                        string `mapstructure:"id"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
	RegistryPath              string `mapstructure:"registryPath" default:"orders.db"`
	// seconds between condition evaluation cycles
	UpdateInterval uint64 `mapstructure:"updateInterval" default:"300"`
	// fee charged per keeper update, in wei of the chain's native asset
	FeePerUpdate string `mapstructure:"feePerUpdate" default:"2000000"`
}

type RawConfig struct {
	KeeperConfig KeeperConfig             `mapstructure:"keeper"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains"`
}

func (c *RawConfig) Validate() error {
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("required field chains empty")
	}
	for _, chain := range c.ChainConfigs {
		if chain["type"] == "" || chain["type"] == nil {
			return fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
	}
	return nil
}

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.json", "path to the configuration file or 'env'")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(RegistryFlagName, "", "path to the order registry database")
	_ = viper.BindPFlag(RegistryFlagName, rootCMD.PersistentFlags().Lookup(RegistryFlagName))

	rootCMD.PersistentFlags().String(KeyFlagName, "", "hex encoded keeper private key")
	_ = viper.BindPFlag(KeyFlagName, rootCMD.PersistentFlags().Lookup(KeyFlagName))
}

// GetConfigFromFile reads the configuration from the given file and merges
// it on top of the base configuration.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	rawConfig := RawConfig{}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return base, err
	}
	if err := v.Unmarshal(&rawConfig); err != nil {
		return base, err
	}

	if err := defaults.Set(&rawConfig); err != nil {
		return base, err
	}
	if err := rawConfig.Validate(); err != nil {
		return base, err
	}

	config := &Config{
		KeeperConfig: rawConfig.KeeperConfig,
		ChainConfigs: rawConfig.ChainConfigs,
	}
	if base == nil {
		return config, nil
	}

	if err := mergo.Merge(base, config, mergo.WithOverride); err != nil {
		return base, err
	}
	return base, nil
}

// GetConfigFromENV reads the configuration from environment variables
// prefixed with TRIGGERFI and merges it on top of the base configuration.
func GetConfigFromENV(base *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIGGERFI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rawConfig := RawConfig{}
	if err := v.Unmarshal(&rawConfig); err != nil {
		return base, err
	}
	if err := defaults.Set(&rawConfig); err != nil {
		return base, err
	}
	if err := rawConfig.Validate(); err != nil {
		return base, err
	}

	config := &Config{
		KeeperConfig: rawConfig.KeeperConfig,
		ChainConfigs: rawConfig.ChainConfigs,
	}
	if base == nil {
		return config, nil
	}

	if err := mergo.Merge(base, config, mergo.WithOverride); err != nil {
		return base, err
	}
	return base, nil
}
