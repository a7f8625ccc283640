// file: internal/transmission/types.go
// version: 1.1.0
// guid: 2bbb674e-85a8-42bd-8824-f64f1ee7f856

package transmission

import (
	"fmt"
	"path/filepath"
)

// Category classifies a delivery as television or film content. The category
// name doubles as the subdirectory name under the base download directory.
type Category string

const (
	CategoryTV   Category = "tv"
	CategoryFilm Category = "film"
)

// ParseCategory validates a media type string and returns its Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTV, CategoryFilm:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown media category %q (want %q or %q)", s, CategoryTV, CategoryFilm)
	}
}

// Dir resolves the category's download directory under base.
func (c Category) Dir(base string) string {
	return filepath.Join(base, string(c))
}

// Mechanism identifies which channel carried a delivery to the daemon.
type Mechanism string

const (
	// MechanismRPC is the daemon's JSON-RPC interface.
	MechanismRPC Mechanism = "rpc"
	// MechanismCLI is the transmission-remote command-line fallback.
	MechanismCLI Mechanism = "cli"
)

// CommandResult captures the observable output of a completed
// transmission-remote invocation.
type CommandResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// DeliveryOutcome reports how a magnet delivery went. Mechanism and Success
// are always set. Torrent is set on RPC success, Command on CLI success, and
// Error whenever Success is false. A failed delivery is a value, not a Go
// error; callers decide how to surface it.
type DeliveryOutcome struct {
	Mechanism Mechanism      `json:"mechanism"`
	Success   bool           `json:"success"`
	Torrent   string         `json:"torrent,omitempty"`
	Command   *CommandResult `json:"command,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// TorrentRecord is one row of transmission-remote's --list table. All nine
// fields keep the display strings the tool printed; nothing is parsed into
// numbers or durations.
type TorrentRecord struct {
	ID     string `json:"id"`
	Done   string `json:"done"`
	Have   string `json:"have"`
	ETA    string `json:"eta"`
	Up     string `json:"up"`
	Down   string `json:"down"`
	Ratio  string `json:"ratio"`
	Status string `json:"status"`
	Name   string `json:"name"`
}
