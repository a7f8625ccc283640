// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rtorrent-webclient",
	Short: "HTTP front-end for a Transmission torrent daemon",
	Long: `rtorrent-webclient accepts magnet links over HTTP or on the command
line and hands them to a Transmission daemon, sorted into tv/ and film/
subdirectories of the download directory.

Delivery prefers the daemon's JSON-RPC interface and falls back to the
transmission-remote command-line tool when RPC is unavailable.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rtorrent-webclient.yaml)")
	rootCmd.PersistentFlags().String("daemon-host", "127.0.0.1", "transmission daemon host")
	rootCmd.PersistentFlags().Int("daemon-port", 9091, "transmission daemon RPC port")
	rootCmd.PersistentFlags().String("daemon-user", "", "transmission daemon username")
	rootCmd.PersistentFlags().String("daemon-pass", "", "transmission daemon password")
	rootCmd.PersistentFlags().String("download-dir", "/var/lib/transmission-daemon/downloads", "base download directory holding the tv/ and film/ subdirectories")
	rootCmd.PersistentFlags().Bool("rpc", true, "use the daemon's RPC interface when possible")

	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("daemon-host"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("daemon-port"))
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("daemon-user"))
	viper.BindPFlag("pass", rootCmd.PersistentFlags().Lookup("daemon-pass"))
	viper.BindPFlag("download_dir", rootCmd.PersistentFlags().Lookup("download-dir"))
	viper.BindPFlag("rpc_enabled", rootCmd.PersistentFlags().Lookup("rpc"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rtorrent-webclient")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
