// file: internal/transmission/rpc.go
// version: 1.1.0
// guid: 25c8716f-c57b-4212-94db-8b00dba64d05

package transmission

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	transmissionrpc "github.com/hekmon/transmissionrpc/v3"
)

// RPCAdder is the structured delivery channel the orchestrator needs.
type RPCAdder interface {
	AddMagnet(ctx context.Context, magnet, downloadDir string) (string, error)
}

// RPCClient delivers magnets over the daemon's JSON-RPC interface.
type RPCClient struct {
	client *transmissionrpc.Client
}

var _ RPCAdder = (*RPCClient)(nil)

// NewRPCClient builds the structured channel from daemon settings. It returns
// nil when the channel is disabled or cannot be constructed; a nil client
// means delivery falls through to the command-line channel.
func NewRPCClient(cfg *config.Config) *RPCClient {
	if !cfg.RPCEnabled {
		return nil
	}

	endpoint := &url.URL{
		Scheme: "http",
		Host:   cfg.Endpoint(),
		Path:   "/transmission/rpc",
	}
	if cfg.User != "" {
		endpoint.User = url.UserPassword(cfg.User, cfg.Pass)
	}

	client, err := transmissionrpc.New(endpoint, &transmissionrpc.Config{
		CustomClient: &http.Client{Timeout: cfg.RPCTimeout},
	})
	if err != nil {
		log.Printf("[WARN] transmission RPC channel unavailable: %v", err)
		return nil
	}
	return &RPCClient{client: client}
}

// AddMagnet issues torrent-add with the magnet URI and download directory and
// returns a one-line description of the torrent the daemon accepted.
func (c *RPCClient) AddMagnet(ctx context.Context, magnet, downloadDir string) (string, error) {
	torrent, err := c.client.TorrentAdd(ctx, transmissionrpc.TorrentAddPayload{
		Filename:    &magnet,
		DownloadDir: &downloadDir,
	})
	if err != nil {
		return "", fmt.Errorf("torrent-add: %w", err)
	}
	return describeTorrent(torrent), nil
}

// Handshake negotiates the RPC protocol version with the daemon. Used by the
// doctor command to verify reachability and compatibility.
func (c *RPCClient) Handshake(ctx context.Context) (string, error) {
	ok, serverVersion, serverMinimum, err := c.client.RPCVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("rpc handshake: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("daemon rpc version %d requires at least client version %d", serverVersion, serverMinimum)
	}
	return fmt.Sprintf("rpc version %d (daemon minimum %d)", serverVersion, serverMinimum), nil
}

func describeTorrent(t transmissionrpc.Torrent) string {
	var id int64 = -1
	if t.ID != nil {
		id = *t.ID
	}
	name := ""
	if t.Name != nil {
		name = *t.Name
	}
	hash := ""
	if t.HashString != nil {
		hash = *t.HashString
	}
	return fmt.Sprintf("id=%d hash=%s name=%q", id, hash, name)
}
