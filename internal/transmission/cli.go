// file: internal/transmission/cli.go
// version: 1.2.0
// guid: 42cdb576-b2cc-481b-890f-cf37077e7c14

package transmission

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"time"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
)

// RemoteRunner is the command-line delivery channel the orchestrator needs.
type RemoteRunner interface {
	AddMagnet(ctx context.Context, magnet, downloadDir string) (*CommandResult, error)
}

// Remote invokes the transmission-remote binary. The binary is resolved from
// PATH on every call so an install or removal takes effect without a restart.
type Remote struct {
	bin         string
	endpoint    string
	listTimeout time.Duration
}

var _ RemoteRunner = (*Remote)(nil)

// NewRemote constructs a Remote from daemon settings.
func NewRemote(cfg *config.Config) *Remote {
	return &Remote{
		bin:         cfg.RemoteBin,
		endpoint:    cfg.Endpoint(),
		listTimeout: cfg.ListTimeout,
	}
}

// AddMagnet runs `transmission-remote --add <magnet> --download-dir <dir>`.
// The invocation relies on the tool's default endpoint, matching how the
// daemon is reached when no host argument is given.
func (r *Remote) AddMagnet(ctx context.Context, magnet, downloadDir string) (*CommandResult, error) {
	return r.run(ctx, "--add", magnet, "--download-dir", downloadDir)
}

// List runs `transmission-remote <host:port> --list` under the configured
// deadline and returns raw stdout. A deadline hit surfaces as
// context.DeadlineExceeded, distinct from every other failure.
func (r *Remote) List(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.listTimeout)
	defer cancel()

	res, err := r.run(ctx, r.endpoint, "--list")
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func (r *Remote) run(ctx context.Context, args ...string) (*CommandResult, error) {
	log.Printf("[DEBUG] running %s %v", r.bin, args)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &CommandResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: 0}, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return nil, ErrToolNotFound
	}
	// The process is killed when the deadline fires; report the deadline,
	// not the kill signal.
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%s timed out: %w", r.bin, context.DeadlineExceeded)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
	}
	return nil, fmt.Errorf("running %s: %w", r.bin, err)
}
