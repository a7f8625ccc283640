// file: cmd/doctor.go
// version: 1.0.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the deployment environment",
	Long: `Verify that the pieces a delivery needs are in place: the
transmission-remote binary, the daemon's RPC interface, and a writable
download directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := runDoctorChecks(cmd.OutOrStdout(), &config.AppConfig)
		if failed > 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runDoctorChecks(out io.Writer, cfg *config.Config) int {
	fmt.Fprintf(out, "Daemon endpoint:    %s\n", cfg.Endpoint())
	fmt.Fprintf(out, "Download directory: %s\n\n", cfg.DownloadDir)

	failed := 0

	// Command-line channel: binary on PATH.
	if path, err := exec.LookPath(cfg.RemoteBin); err != nil {
		fmt.Fprintf(out, "[FAIL] %s not found in PATH; install Transmission CLI tools\n", cfg.RemoteBin)
		failed++
	} else {
		fmt.Fprintf(out, "[ OK ] command-line channel: %s\n", path)
	}

	// Structured channel: RPC handshake with the daemon.
	switch {
	case !cfg.RPCEnabled:
		fmt.Fprintln(out, "[SKIP] structured channel disabled (rpc_enabled=false)")
	default:
		client := transmission.NewRPCClient(cfg)
		if client == nil {
			fmt.Fprintln(out, "[FAIL] structured channel could not be constructed")
			failed++
			break
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RPCTimeout)
		desc, err := client.Handshake(ctx)
		cancel()
		if err != nil {
			fmt.Fprintf(out, "[FAIL] structured channel: %v\n", err)
			failed++
		} else {
			fmt.Fprintf(out, "[ OK ] structured channel: %s\n", desc)
		}
	}

	// Destination: the base directory must accept writes.
	if err := checkWritable(cfg.DownloadDir); err != nil {
		fmt.Fprintf(out, "[FAIL] download directory not writable: %v\n", err)
		failed++
	} else {
		fmt.Fprintf(out, "[ OK ] download directory writable\n")
	}

	return failed
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
