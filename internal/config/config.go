// Package config holds process-wide configuration, resolved from
// defaults, an optional config file, and environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

func init() {
	v = viper.New()

	v.SetDefault("output.dir", "generated_scripts")
	v.SetDefault("framework.default", "selenium")
	v.SetDefault("browser.timeout", 10*time.Second)
	v.SetDefault("browser.headless", false)
	v.SetDefault("browser.width", 1280)
	v.SetDefault("browser.height", 720)
	v.SetDefault("provider.name", "openai")
	v.SetDefault("provider.model", "")

	v.AutomaticEnv()
	v.BindEnv("output.dir", "WEBSCRIBE_OUTPUT_DIR")
	v.BindEnv("framework.default", "WEBSCRIBE_FRAMEWORK")
	v.BindEnv("browser.headless", "WEBSCRIBE_HEADLESS")
	v.BindEnv("provider.name", "WEBSCRIBE_PROVIDER")
	v.BindEnv("provider.model", "WEBSCRIBE_MODEL")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configPaths := []string{
		".",
		"$HOME/.webscribe",
	}
	for _, path := range configPaths {
		v.AddConfigPath(os.ExpandEnv(path))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Sprintf("Fatal error reading config file: %s", err))
		}
		// No config file; defaults and env apply.
	}
}

// GetOutputDir returns the directory generated scripts are written to.
func GetOutputDir() string {
	return v.GetString("output.dir")
}

// GetDefaultFramework returns the framework token used when none is given.
func GetDefaultFramework() string {
	return v.GetString("framework.default")
}

// GetBrowserTimeout returns the element wait timeout.
func GetBrowserTimeout() time.Duration {
	return v.GetDuration("browser.timeout")
}

// GetBrowserHeadless reports whether the browser runs headless.
func GetBrowserHeadless() bool {
	return v.GetBool("browser.headless")
}

// GetBrowserViewport returns the browser viewport size.
func GetBrowserViewport() (width, height int) {
	return v.GetInt("browser.width"), v.GetInt("browser.height")
}

// GetProviderName returns the configured AI provider.
func GetProviderName() string {
	return v.GetString("provider.name")
}

// GetProviderModel returns the model override, if any.
func GetProviderModel() string {
	return v.GetString("provider.model")
}
