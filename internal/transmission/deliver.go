// file: internal/transmission/deliver.go
// version: 1.2.0
// guid: 5386109c-7a8d-4b60-95a0-17d040390bd8

package transmission

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/metrics"
)

// Deliverer routes a magnet to the daemon: over the structured RPC channel
// when one is available, otherwise through the transmission-remote fallback.
type Deliverer struct {
	rpc     RPCAdder // nil means the structured channel is unavailable
	remote  RemoteRunner
	baseDir string
}

// NewDeliverer wires an orchestrator from its channels. Pass a nil rpc to
// force the command-line path.
func NewDeliverer(rpc RPCAdder, remote RemoteRunner, baseDir string) *Deliverer {
	return &Deliverer{rpc: rpc, remote: remote, baseDir: baseDir}
}

// NewDelivererFromConfig builds the orchestrator with both channels resolved
// from daemon settings.
func NewDelivererFromConfig(cfg *config.Config) *Deliverer {
	var rpc RPCAdder
	if client := NewRPCClient(cfg); client != nil {
		rpc = client
	}
	return NewDeliverer(rpc, NewRemote(cfg), cfg.DownloadDir)
}

// Deliver hands magnet to the daemon with the destination resolved from the
// media category under the base download directory.
func (d *Deliverer) Deliver(ctx context.Context, magnet string, cat Category) DeliveryOutcome {
	return d.DeliverTo(ctx, magnet, cat.Dir(d.baseDir))
}

// DeliverTo is Deliver with an explicit destination directory. Directory
// creation is best-effort; a failure is logged and the delivery proceeds so
// the channel itself reports whether the daemon accepts the path.
func (d *Deliverer) DeliverTo(ctx context.Context, magnet, dir string) DeliveryOutcome {
	if err := os.MkdirAll(dir, 0o775); err != nil {
		log.Printf("[WARN] could not create download directory %s: %v", dir, err)
	}

	start := time.Now()
	if d.rpc != nil {
		desc, err := d.rpc.AddMagnet(ctx, magnet, dir)
		if err != nil {
			// An available structured channel that fails is terminal;
			// the fallback only covers absence.
			return d.finish(DeliveryOutcome{Mechanism: MechanismRPC, Error: err.Error()}, start)
		}
		return d.finish(DeliveryOutcome{Mechanism: MechanismRPC, Success: true, Torrent: desc}, start)
	}

	res, err := d.remote.AddMagnet(ctx, magnet, dir)
	if err != nil {
		return d.finish(DeliveryOutcome{Mechanism: MechanismCLI, Error: err.Error()}, start)
	}
	return d.finish(DeliveryOutcome{Mechanism: MechanismCLI, Success: true, Command: res}, start)
}

func (d *Deliverer) finish(out DeliveryOutcome, start time.Time) DeliveryOutcome {
	metrics.IncDelivery(string(out.Mechanism), out.Success)
	metrics.ObserveDeliveryDuration(string(out.Mechanism), time.Since(start))
	if out.Success {
		log.Printf("[INFO] magnet delivered via %s", out.Mechanism)
	} else {
		log.Printf("[ERROR] delivery via %s failed: %s", out.Mechanism, out.Error)
	}
	return out
}
