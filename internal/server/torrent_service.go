// file: internal/server/torrent_service.go
// version: 1.0.0
// guid: 3e4f5a6b-7c8d-9e0f-1a2b-3c4d5e6f7a8b

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/metrics"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/server/middleware"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// MagnetDeliverer runs the delivery pipeline for one magnet.
type MagnetDeliverer interface {
	Deliver(ctx context.Context, magnet string, cat transmission.Category) transmission.DeliveryOutcome
}

// TorrentLister returns the daemon's raw torrent table.
type TorrentLister interface {
	List(ctx context.Context) (string, error)
}

// TorrentService implements the HTTP handlers over the delivery orchestrator
// and the command-line listing channel.
type TorrentService struct {
	deliverer MagnetDeliverer
	lister    TorrentLister
}

// NewTorrentService creates the handler service from its two collaborators.
func NewTorrentService(deliverer MagnetDeliverer, lister TorrentLister) *TorrentService {
	return &TorrentService{deliverer: deliverer, lister: lister}
}

// HandleAdd accepts a magnet plus media category and hands it to the
// orchestrator. Any outcome the orchestrator returns, failed deliveries
// included, is a 200; only request validation produces a 4xx here.
func (ts *TorrentService) HandleAdd(c *gin.Context) {
	opLog := NewOperationLogger("HandleAdd", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
	opLog.LogStart()

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		opLog.LogError(http.StatusBadRequest, err)
		RespondWithBadRequest(c, "Request body must be JSON")
		return
	}

	magnet, err := ValidateMagnet(body["magnet"])
	if err != nil {
		opLog.LogError(http.StatusBadRequest, err)
		RespondWithBadRequest(c, "Missing or invalid 'magnet' field")
		return
	}

	cat, err := ResolveCategory(body)
	if err != nil {
		opLog.LogError(http.StatusBadRequest, err)
		RespondWithBadRequest(c, "media_type must be 'tv' or 'film'")
		return
	}

	opLog.LogDetail("category", cat)
	outcome := ts.deliverer.Deliver(c.Request.Context(), magnet, cat)

	opLog.LogSuccess(http.StatusOK)
	RespondWithResult(c, outcome)
}

// HandleList queries the daemon's torrent table through the command-line
// channel and returns it parsed. Unlike delivery there is no partial-success
// shape: every failure maps to an HTTP error status, with timeouts kept
// distinct so callers can tell a slow daemon from a rejecting one.
func (ts *TorrentService) HandleList(c *gin.Context) {
	opLog := NewOperationLogger("HandleList", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
	opLog.LogStart()

	raw, err := ts.lister.List(c.Request.Context())
	if err != nil {
		metrics.IncListing(false)
		ts.respondListError(c, opLog, err)
		return
	}

	records := transmission.ParseListing(raw)
	metrics.IncListing(true)
	metrics.SetListedTorrents(len(records))

	opLog.LogSuccess(http.StatusOK)
	RespondWithResult(c, ListingResult{Torrents: records})
}

func (ts *TorrentService) respondListError(c *gin.Context, opLog *OperationLogger, err error) {
	var exitErr *transmission.ExitError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		opLog.LogError(http.StatusGatewayTimeout, err)
		RespondWithTimeout(c, "Request timed out")
	case errors.Is(err, transmission.ErrToolNotFound):
		opLog.LogError(http.StatusInternalServerError, err)
		RespondWithInternalError(c, "transmission-remote not found; install Transmission CLI tools")
	case errors.As(err, &exitErr):
		opLog.LogError(http.StatusInternalServerError, err)
		RespondWithInternalError(c, fmt.Sprintf("Command failed: %s", strings.TrimSpace(exitErr.Stderr)))
	default:
		opLog.LogError(http.StatusInternalServerError, err)
		RespondWithInternalError(c, fmt.Sprintf("Unexpected error: %v", err))
	}
}

// HandlePing answers the liveness probe with its fixed payload.
func (ts *TorrentService) HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{OK: true, Msg: "rtorrent-webclient API running"})
}
