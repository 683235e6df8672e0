// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// バッチワーカーから利用する。
type MetricsCollector interface {
	RecordRunSuccess()
	RecordRunFailure(reason string)
	RecordRunDuration(duration time.Duration)
	SetEligibleUsers(count int)
	RecordPerkAssigned(perk string, count int)
	RecordRowsWritten(count int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	runSuccess    prometheus.Counter
	runFail       *prometheus.CounterVec
	runDuration   prometheus.Histogram
	eligibleUsers prometheus.Gauge
	perkAssigned  *prometheus.CounterVec
	rowsWritten   prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traveltide_batch_run_success_total",
			Help: "バッチ実行成功の合計数",
		}),
		runFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "traveltide_batch_run_fail_total",
			Help: "失敗理由別のバッチ実行失敗数",
		}, []string{"reason"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "traveltide_batch_run_duration_seconds",
			Help:    "バッチ実行の所要時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		eligibleUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "traveltide_eligible_users",
			Help: "直近のバッチ実行における適格ユーザー数",
		}),
		perkAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "traveltide_perk_assigned_total",
			Help: "特典別の付与数",
		}, []string{"perk"}),
		rowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traveltide_rows_written_total",
			Help: "書き込まれた付与結果行の合計数",
		}),
	}

	reg.MustRegister(
		c.runSuccess,
		c.runFail,
		c.runDuration,
		c.eligibleUsers,
		c.perkAssigned,
		c.rowsWritten,
	)

	return c
}

// RecordRunSuccess はバッチ実行成功を記録する。
func (c *Collector) RecordRunSuccess() {
	c.runSuccess.Inc()
}

// RecordRunFailure はバッチ実行失敗を記録する。
func (c *Collector) RecordRunFailure(reason string) {
	c.runFail.WithLabelValues(reason).Inc()
}

// RecordRunDuration はバッチ実行の所要時間を記録する。
func (c *Collector) RecordRunDuration(duration time.Duration) {
	c.runDuration.Observe(duration.Seconds())
}

// SetEligibleUsers は直近の実行の適格ユーザー数を記録する。
func (c *Collector) SetEligibleUsers(count int) {
	c.eligibleUsers.Set(float64(count))
}

// RecordPerkAssigned は特典別の付与数を記録する。
func (c *Collector) RecordPerkAssigned(perk string, count int) {
	c.perkAssigned.WithLabelValues(perk).Add(float64(count))
}

// RecordRowsWritten は書き込まれた付与結果行数を記録する。
func (c *Collector) RecordRowsWritten(count int) {
	c.rowsWritten.Add(float64(count))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
