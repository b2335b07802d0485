package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/geosuite-io/gmaps-client/cmd/gmaps/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gmaps",
	Short: "Google Maps Platform CLI",
	Long: `A command-line interface for the Google Maps Platform web services.

Geocode addresses, sample elevations, resolve time zones, and search
places directly from the terminal. Requests are rate limited and retried
with the same policies the library applies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.gmaps/config.yml)")
	rootCmd.PersistentFlags().StringP("key", "k", "", "API key")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("base-url", "", "override the legacy endpoints base URL")
	rootCmd.PersistentFlags().String("places-base-url", "", "override the Places endpoints base URL")

	// Bind flags to viper
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("places-base-url", rootCmd.PersistentFlags().Lookup("places-base-url"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewGeocodeCommand())
	rootCmd.AddCommand(commands.NewReverseGeocodeCommand())
	rootCmd.AddCommand(commands.NewElevationCommand())
	rootCmd.AddCommand(commands.NewTimeZoneCommand())
	rootCmd.AddCommand(commands.NewPlacesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.gmaps/config.yml
		viper.AddConfigPath(filepath.Join(home, ".gmaps"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("GMAPS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
