package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WebhookMetrics Webhook処理の計測器群。
type WebhookMetrics struct {
	EventsTotal  *prometheus.CounterVec // label: type（message / follow / join / other）
	ParseTotal   *prometheus.CounterVec // label: result（ok / no_match / no_trigger）
	RepliesTotal *prometheus.CounterVec // label: status（ok / error）
	ReplyLatency prometheus.Histogram
}

// New は計測器を組み立てて reg へ登録します。reg が nil ならグローバルレジストリ。
// テストからは prometheus.NewRegistry() を渡すと二重登録の panic を避けられる。
func New(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salon",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Total number of webhook events received.",
	}, []string{"type"})
	parses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salon",
		Subsystem: "webhook",
		Name:      "parse_total",
		Help:      "Order-text parse attempts by result.",
	}, []string{"result"})
	replies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salon",
		Subsystem: "webhook",
		Name:      "replies_total",
		Help:      "Reply API calls by status.",
	}, []string{"status"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "salon",
		Subsystem: "webhook",
		Name:      "reply_duration_ms",
		Help:      "Reply API latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})

	reg.MustRegister(events, parses, replies, latency)
	return &WebhookMetrics{
		EventsTotal:  events,
		ParseTotal:   parses,
		RepliesTotal: replies,
		ReplyLatency: latency,
	}
}

// Handler は /metrics に載せる素のHTTPハンドラを返します。
func Handler() http.Handler {
	return promhttp.Handler()
}
