package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

// Load sets defaults and binds the environment. The simulator keeps
// no config file on disk, so env vars are the whole surface.
func Load() error {
	viper.SetDefault("stage", StageDev)
	viper.SetDefault("logLevel", "info")

	if err := viper.BindEnv("stage", "STAGE"); err != nil {
		return fmt.Errorf("error binding env var: %v", err)
	}
	if err := viper.BindEnv("logLevel", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("error binding env var: %v", err)
	}

	stage := viper.GetString("stage")
	if stage != StageProd && stage != StageDev {
		return fmt.Errorf("invalid type of development stage: %s", stage)
	}

	return nil
}

// Stage returns the running stage, dev or prod.
func Stage() string {
	return viper.GetString("stage")
}

// LogLevel returns the configured zerolog level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}
