// Package enrollment はトラックへの登録管理のサービス層を提供する。
package enrollment

import (
	"context"
	"log/slog"

	"github.com/hitoshi/formacao/internal/model"
	"github.com/hitoshi/formacao/internal/track"
)

// MetricsRecorder は登録操作の結果を記録するインターフェース。
type MetricsRecorder interface {
	RecordOutcome(kind track.OutcomeKind)
	SetRosterSize(n int)
}

// Service は登録管理のサービス層。
// トラックの状態遷移はtrack.Trackに委譲し、結果のログ出力とメトリクス記録を担う。
type Service struct {
	track   *track.Track
	metrics MetricsRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsがnilの場合はメトリクスを記録しない。
func NewService(t *track.Track, metrics MetricsRecorder) *Service {
	return &Service{
		track:   t,
		metrics: metrics,
	}
}

// Track は管理対象のトラックを返す。
func (s *Service) Track() *track.Track {
	return s.track
}

// Enroll はユーザーを順に登録し、入力順の結果を返す。
func (s *Service) Enroll(users []model.User) []track.Outcome {
	outcomes := s.track.Enroll(users)
	for _, o := range outcomes {
		s.observe(o)
	}
	s.recordRosterSize()
	return outcomes
}

// Remove はユーザーの登録を解除する。
func (s *Service) Remove(user model.User) track.Outcome {
	o := s.track.Remove(user)
	s.observe(o)
	s.recordRosterSize()
	return o
}

// Contents はトラックの教材列を返す。
func (s *Service) Contents() []model.EducationalContent {
	return s.track.Contents()
}

// Enrolled は登録済みユーザーのスナップショットを返す。
func (s *Service) Enrolled() []model.User {
	return s.track.Enrolled()
}

func (s *Service) observe(o track.Outcome) {
	level := slog.LevelInfo
	if !o.Changed() {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "enrollment outcome",
		slog.String("track_id", s.track.ID()),
		slog.String("user", o.User.Name),
		slog.String("outcome", o.Kind.String()),
	)

	if s.metrics != nil {
		s.metrics.RecordOutcome(o.Kind)
	}
}

func (s *Service) recordRosterSize() {
	if s.metrics != nil {
		s.metrics.SetRosterSize(s.track.Len())
	}
}
