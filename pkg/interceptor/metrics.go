// Yannick Kuete 2026

package interceptor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ymkuete/streamsock/pkg/protocol"
)

var (
	exchangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamsock_exchanges_total",
			Help: "Total number of handled exchanges",
		},
		[]string{"status"},
	)
	exchangeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "streamsock_exchange_duration_seconds",
			Help:    "Duration of handled exchanges in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(exchangesTotal)
	prometheus.MustRegister(exchangeDuration)
}

func Metrics() Interceptor {
	return func(ctx context.Context, msg *protocol.Message, invoker Invoker) (*protocol.Message, error) {
		start := time.Now()

		reply, err := invoker(ctx, msg)

		duration := time.Since(start).Seconds()

		status := "success"
		if err != nil {
			status = "error"
		}

		exchangesTotal.WithLabelValues(status).Inc()
		exchangeDuration.Observe(duration)

		return reply, err
	}
}
