// Yannick Kuete 2026

// Package metrics counts the messages and bytes the transports move.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamsock_messages_total",
			Help: "Total number of messages transferred",
		},
		[]string{"direction"},
	)
	bytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamsock_bytes_total",
			Help: "Total number of wire bytes transferred, terminators included",
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(messagesTotal)
	prometheus.MustRegister(bytesTotal)
}

func AddSent(n int) {
	messagesTotal.WithLabelValues("sent").Inc()
	bytesTotal.WithLabelValues("sent").Add(float64(n))
}

func AddReceived(n int) {
	messagesTotal.WithLabelValues("received").Inc()
	bytesTotal.WithLabelValues("received").Add(float64(n))
}
