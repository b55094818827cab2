package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
)

var cfgFile string

// InitConfig wires viper to the config file, environment and defaults.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "vibecbr")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VIBECBR")

	// Set defaults
	viper.SetDefault("library_root", filepath.Join(os.Getenv("HOME"), "comics"))
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "vibecbr"))
	viper.SetDefault("default_sort", string(browse.SortAlphaAsc))
	viper.SetDefault("show_nsfw", false)

	_ = viper.ReadInConfig()
}

// InitService builds the library service from the resolved configuration.
func InitService(log *logrus.Logger) (*library.Service, error) {
	config := &library.Config{
		LibraryRoot: viper.GetString("library_root"),
		DataDir:     viper.GetString("data_dir"),
		ShowNSFW:    viper.GetBool("show_nsfw"),
		DefaultSort: browse.Criterion(viper.GetString("default_sort")),
	}
	return library.New(config, log)
}

// AddGlobalFlags registers the flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vibecbr/config.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
