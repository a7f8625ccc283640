// file: internal/server/response_types.go
// version: 1.1.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/server/middleware"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// Envelope is the response shape every endpoint uses: `{"ok": true,
// "result": ...}` on success, `{"ok": false, "error": "..."}` on failure.
type Envelope struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// PingResponse is the fixed liveness payload. The probe predates the
// envelope's result field and keeps its original `msg` key.
type PingResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// ListingResult wraps a listing snapshot for the /list response body.
type ListingResult struct {
	Torrents []transmission.TorrentRecord `json:"torrents"`
}

// RespondWithResult sends a 200 envelope carrying result. A delivery outcome
// with success=false still goes through here: a failed delivery is data, not
// an HTTP error.
func RespondWithResult(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Envelope{OK: true, Result: result})
}

// RespondWithError sends an error envelope and logs the failure with the
// request's correlation ID.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	log.Printf("[ERROR] %s %s -> %d: %s [request-id: %s]",
		c.Request.Method, c.Request.URL.Path, statusCode, message, middleware.GetRequestID(c))
	c.JSON(statusCode, Envelope{OK: false, Error: message})
}

// RespondWithBadRequest sends a 400 error envelope
func RespondWithBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message)
}

// RespondWithInternalError sends a 500 error envelope
func RespondWithInternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, message)
}

// RespondWithTimeout sends a 504 error envelope
func RespondWithTimeout(c *gin.Context, message string) {
	RespondWithError(c, http.StatusGatewayTimeout, message)
}
