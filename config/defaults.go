package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// UserDefaults holds per-user presets read from ~/.sprout.yaml. They seed
// prompt and flag defaults; the file is optional and read best-effort.
type UserDefaults struct {
	Author         string `mapstructure:"author"`
	PackageManager string `mapstructure:"packageManager"`
	SkipInstall    bool   `mapstructure:"skipInstall"`
}

// LoadUserDefaults reads the user defaults file if present. A missing or
// unreadable file yields empty defaults, never an error.
func LoadUserDefaults() *UserDefaults {
	defaults := &UserDefaults{}

	home, err := os.UserHomeDir()
	if err != nil {
		return defaults
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(home, ".sprout.yaml"))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return defaults
	}
	if err := v.Unmarshal(defaults); err != nil {
		return &UserDefaults{}
	}
	return defaults
}

// Apply overlays the user defaults onto options that are still unset
func (d *UserDefaults) Apply(o *Options) {
	if o.Author == "" {
		o.Author = d.Author
	}
	if d.PackageManager != "" {
		o.PackageManager = ParsePackageManager(d.PackageManager)
	}
	if d.SkipInstall {
		o.SkipInstall = true
	}
}
