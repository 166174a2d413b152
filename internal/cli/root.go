// Package cli implements the stark command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "stark",
	Short: "Stark energy curve calculation and storage",
	Long: "stark runs Stark energy sweeps for molecules in external electric fields\n" +
		"and manages the per-molecule curve storage files.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .stark.yaml)")
	rootCmd.PersistentFlags().String("store", "", "storage file path")
	rootCmd.PersistentFlags().String("codec", "", "storage codec: none, zstd or lz4")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("codec", rootCmd.PersistentFlags().Lookup("codec"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".stark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STARK")
	viper.AutomaticEnv()

	// Missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()
}
