// file: cmd/add.go
// version: 1.0.0
// guid: 8c9d0e1f-2a3b-4c5d-6e7f-8a9b0c1d2e3f

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <magnet>",
	Short: "Deliver a magnet link to the daemon",
	Long: `Run the delivery pipeline once, outside the HTTP layer, and print the
outcome record as JSON. The destination is the film/ subdirectory unless --tv
is set, or an explicit directory given with --dir.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		magnet := args[0]
		if magnet == "" {
			return fmt.Errorf("magnet must not be empty")
		}

		tv, _ := cmd.Flags().GetBool("tv")
		dir, _ := cmd.Flags().GetString("dir")

		deliverer := transmission.NewDelivererFromConfig(&config.AppConfig)
		ctx := context.Background()

		var outcome transmission.DeliveryOutcome
		if dir != "" {
			outcome = deliverer.DeliverTo(ctx, magnet, dir)
		} else {
			cat := transmission.CategoryFilm
			if tv {
				cat = transmission.CategoryTV
			}
			outcome = deliverer.Deliver(ctx, magnet, cat)
		}

		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode outcome: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if !outcome.Success {
			// The outcome record already explains the failure.
			cmd.SilenceUsage = true
			return fmt.Errorf("delivery via %s failed: %s", outcome.Mechanism, outcome.Error)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().Bool("tv", false, "deliver into the tv/ subdirectory instead of film/")
	addCmd.Flags().String("dir", "", "explicit destination directory (overrides the category)")
}
