// file: cmd/serve.go
// version: 1.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web API",
	Long:  `Start the HTTP API that accepts magnet deliveries and serves torrent listings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Transmission daemon: %s\n", config.AppConfig.Endpoint())
		if config.AppConfig.RPCEnabled {
			fmt.Println("Delivery channel: RPC with command-line fallback")
		} else {
			fmt.Println("Delivery channel: command-line only")
		}

		srv := server.NewServer()
		cfg := server.GetDefaultServerConfig()

		// Override with command line flags if provided
		if port := cmd.Flag("port").Value.String(); port != "" {
			cfg.Port = port
		}
		if host := cmd.Flag("host").Value.String(); host != "" {
			cfg.Host = host
		}
		if rt := cmd.Flag("read-timeout").Value.String(); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				cfg.ReadTimeout = d
			}
		}
		if wt := cmd.Flag("write-timeout").Value.String(); wt != "" {
			if d, err := time.ParseDuration(wt); err == nil {
				cfg.WriteTimeout = d
			}
		}
		if it := cmd.Flag("idle-timeout").Value.String(); it != "" {
			if d, err := time.ParseDuration(it); err == nil {
				cfg.IdleTimeout = d
			}
		}

		return srv.Start(cfg)
	},
}

func init() {
	serveCmd.Flags().String("port", "5000", "port to run the web API on")
	serveCmd.Flags().String("host", "0.0.0.0", "host to bind the web API to")
	serveCmd.Flags().String("read-timeout", "15s", "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("write-timeout", "15s", "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().String("idle-timeout", "60s", "idle timeout (e.g. 60s, 2m)")
}
