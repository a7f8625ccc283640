// file: internal/metrics/metrics.go
// version: 1.1.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	deliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rtorrent_webclient",
		Name:      "deliveries_total",
		Help:      "Total number of magnet deliveries by mechanism and outcome",
	}, []string{"mechanism", "outcome"})
	deliveryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rtorrent_webclient",
		Name:      "delivery_duration_seconds",
		Help:      "Histogram of magnet delivery durations in seconds by mechanism",
		Buckets:   prometheus.ExponentialBuckets(0.05, 1.6, 10), // ~50ms up to several seconds/minutes
	}, []string{"mechanism"})
	listingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rtorrent_webclient",
		Name:      "listings_total",
		Help:      "Total number of torrent listing requests by outcome",
	}, []string{"outcome"})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rtorrent_webclient",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	torrentsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rtorrent_webclient",
		Name:      "listed_torrents",
		Help:      "Number of torrents reported by the most recent listing",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(deliveriesTotal, deliveryDuration, listingsTotal, httpRequestsTotal,
			torrentsGauge)
	})
}

// Delivery lifecycle helpers
func IncDelivery(mechanism string, success bool) {
	deliveriesTotal.WithLabelValues(mechanism, outcomeLabel(success)).Inc()
}
func ObserveDeliveryDuration(mechanism string, d time.Duration) {
	deliveryDuration.WithLabelValues(mechanism).Observe(d.Seconds())
}
func IncListing(success bool) { listingsTotal.WithLabelValues(outcomeLabel(success)).Inc() }
func IncHTTPRequest(method, path string, status int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Gauges
func SetListedTorrents(n int) { torrentsGauge.Set(float64(n)) }

func outcomeLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
