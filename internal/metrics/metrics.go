// Package metrics はPrometheusメトリクスの収集と出力を提供する。
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/formacao/internal/track"
)

// Collector は登録操作のメトリクスを収集する実装。
// enrollment.MetricsRecorder を満たす。
type Collector struct {
	outcomes   *prometheus.CounterVec
	rosterSize prometheus.Gauge
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formacao_enrollment_outcomes_total",
			Help: "登録・削除操作の結果種別ごとの合計数",
		}, []string{"outcome"}),
		rosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "formacao_roster_size",
			Help: "現在の登録ユーザー数",
		}),
	}

	reg.MustRegister(
		c.outcomes,
		c.rosterSize,
	)

	return c
}

// RecordOutcome は操作結果を1件記録する。
func (c *Collector) RecordOutcome(kind track.OutcomeKind) {
	c.outcomes.WithLabelValues(kind.String()).Inc()
}

// SetRosterSize は現在のロスターサイズを記録する。
func (c *Collector) SetRosterSize(n int) {
	c.rosterSize.Set(float64(n))
}

// WriteTextfile はnode_exporterのtextfileコレクタ形式でメトリクスをファイルに書き出す。
// ネットワーク経由で公開しないCLIのため、終了時のスナップショットとして使う。
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
