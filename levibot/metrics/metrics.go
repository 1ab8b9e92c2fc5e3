// Package metrics exposes the bot's Prometheus counters.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is nil-safe: every method on a nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	MessagesReceived prometheus.Counter
	Commands         *prometheus.CounterVec
	CommandLatency   *prometheus.HistogramVec
	Spawns           *prometheus.CounterVec
	Catches          *prometheus.CounterVec
	Battles          *prometheus.CounterVec
	Trades           *prometheus.CounterVec
	CoinsMinted      *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		MessagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Total number of chat messages received",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands executed by name and status",
		}, []string{"command", "status"}),
		CommandLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_latency_seconds",
			Help:      "Command processing latency",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"command"}),
		Spawns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawns_total",
			Help:      "Wild cards spawned",
		}, []string{"rarity", "forced"}),
		Catches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catches_total",
			Help:      "Wild cards caught",
		}, []string{"rarity"}),
		Battles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battles_total",
			Help:      "Battles by final status",
		}, []string{"status"}),
		Trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Trades by final status",
		}, []string{"status"}),
		CoinsMinted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_minted_total",
			Help:      "Coins created by rewards",
		}, []string{"source"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.MessagesReceived,
		m.Commands,
		m.CommandLatency,
		m.Spawns,
		m.Catches,
		m.Battles,
		m.Trades,
		m.CoinsMinted,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Metrics endpoint listening", slog.String("type", "sys"), slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *Metrics) IncMessagesReceived() {
	if m == nil {
		return
	}
	m.MessagesReceived.Inc()
}

func (m *Metrics) ObserveCommand(name, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(name, status).Inc()
	m.CommandLatency.WithLabelValues(name).Observe(took.Seconds())
}

func (m *Metrics) IncSpawn(rarity string, forced bool) {
	if m == nil {
		return
	}
	m.Spawns.WithLabelValues(rarity, strconv.FormatBool(forced)).Inc()
}

func (m *Metrics) IncCatch(rarity string) {
	if m == nil {
		return
	}
	m.Catches.WithLabelValues(rarity).Inc()
}

func (m *Metrics) IncBattle(status string) {
	if m == nil {
		return
	}
	m.Battles.WithLabelValues(status).Inc()
}

func (m *Metrics) IncTrade(status string) {
	if m == nil {
		return
	}
	m.Trades.WithLabelValues(status).Inc()
}

func (m *Metrics) AddCoins(source string, amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.CoinsMinted.WithLabelValues(source).Add(float64(amount))
}
