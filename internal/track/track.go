// Package track はトラック（教材と受講者ロスターを束ねる集約）を提供する。
package track

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/hitoshi/formacao/internal/model"
)

// Track は固定の教材列と可変の受講者ロスターを持つ集約。
//
// 不変条件:
//   - 名前は空白のみにならない
//   - 教材名はすべて空白のみにならない
//   - ロスターに同じ名前キーのユーザーは2人以上存在しない
//   - 教材列は構築後に変化しない
//
// 並行アクセスは想定しないため、ロックは持たない。
type Track struct {
	id       string
	name     string
	level    model.Level
	contents []model.EducationalContent
	roster   []model.User
}

// New はTrackを生成する。
// 名前または教材名のいずれかが空白のみの場合、または未知のレベルの場合は
// *model.ValidationError を返す。レベルが空の場合はLevelBasicとする。
// 教材は0件でもよい。
func New(name string, level model.Level, contents []model.EducationalContent) (*Track, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewBlankTrackNameError()
	}
	for i, c := range contents {
		if strings.TrimSpace(c.Name) == "" {
			return nil, model.NewBlankContentNameError(i)
		}
	}
	if level == "" {
		level = model.LevelBasic
	}
	if !level.Valid() {
		return nil, model.NewInvalidLevelError(string(level))
	}

	return &Track{
		id:       uuid.NewString(),
		name:     name,
		level:    level,
		contents: slices.Clone(contents),
		roster:   []model.User{},
	}, nil
}

// ID はトラックの識別子を返す。
func (t *Track) ID() string { return t.id }

// Name はトラック名を返す。
func (t *Track) Name() string { return t.name }

// Level はトラックの難易度を返す。
func (t *Track) Level() model.Level { return t.level }

// Enroll はユーザーを渡された順に登録する。
// 登録済み（同じバッチ内で先に登録されたユーザーを含む）の場合はOutcomeAlreadyEnrolledを、
// それ以外はロスター末尾に追加してOutcomeEnrolledを返す。
// 途中で中断することはなく、入力1件につき1件のOutcomeを入力順で返す。
func (t *Track) Enroll(users []model.User) []Outcome {
	outcomes := make([]Outcome, 0, len(users))
	for _, u := range users {
		if t.IsEnrolled(u) {
			outcomes = append(outcomes, t.outcome(OutcomeAlreadyEnrolled, u))
			continue
		}
		t.roster = append(t.roster, u)
		outcomes = append(outcomes, t.outcome(OutcomeEnrolled, u))
	}
	return outcomes
}

// Remove はユーザーの登録を解除する。
// 未登録の場合はロスターを変更せずOutcomeNotEnrolledを返す。
func (t *Track) Remove(user model.User) Outcome {
	i := t.indexOf(user)
	if i < 0 {
		return t.outcome(OutcomeNotEnrolled, user)
	}
	removed := t.roster[i]
	t.roster = slices.Delete(t.roster, i, i+1)
	return t.outcome(OutcomeRemoved, removed)
}

// IsEnrolled はユーザーが登録済みかどうかを返す。
func (t *Track) IsEnrolled(user model.User) bool {
	return t.indexOf(user) >= 0
}

// Contents は教材列のコピーを構築時の順序で返す。
func (t *Track) Contents() []model.EducationalContent {
	return slices.Clone(t.contents)
}

// Enrolled は現在のロスターのスナップショットを登録順で返す。
// 返されたスライスを変更してもトラックには影響しない。
func (t *Track) Enrolled() []model.User {
	return slices.Clone(t.roster)
}

// Len は登録済みユーザー数を返す。
func (t *Track) Len() int {
	return len(t.roster)
}

// TotalDuration は教材の所要時間の合計（分）を返す。
func (t *Track) TotalDuration() int {
	total := 0
	for _, c := range t.contents {
		total += c.Duration
	}
	return total
}

// indexOf はロスターを線形探索し、名前キーが一致する位置を返す。見つからなければ-1。
func (t *Track) indexOf(user model.User) int {
	key := user.Key()
	return slices.IndexFunc(t.roster, func(u model.User) bool {
		return u.Key() == key
	})
}

func (t *Track) outcome(kind OutcomeKind, u model.User) Outcome {
	return Outcome{Kind: kind, User: u, TrackName: t.name}
}
