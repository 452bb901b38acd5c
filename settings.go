package inkbridge

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the user-facing toggles read once at startup.
type Settings struct {
	// UseNativeDialogs controls whether interception is attempted at all,
	// independent of whether the native API is actually available.
	UseNativeDialogs bool
}

// LoadSettings reads settings from the config file and environment.
// Env var overrides use prefix INKBRIDGE_, e.g. INKBRIDGE_DIALOGS_NATIVE=false.
// A missing config file is not an error; defaults apply.
func LoadSettings() Settings {
	v := viper.New()

	v.SetDefault("dialogs.native", true)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("INKBRIDGE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "inkbridge"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INKBRIDGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	return Settings{
		UseNativeDialogs: v.GetBool("dialogs.native"),
	}
}
