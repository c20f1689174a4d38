package track

import "github.com/hitoshi/formacao/internal/model"

// OutcomeKind は登録・削除操作の結果種別を表す。
type OutcomeKind int

const (
	// OutcomeEnrolled は新規に登録されたことを示す。
	OutcomeEnrolled OutcomeKind = iota + 1
	// OutcomeAlreadyEnrolled は既に登録済みのため何もしなかったことを示す。
	OutcomeAlreadyEnrolled
	// OutcomeRemoved は登録を解除したことを示す。
	OutcomeRemoved
	// OutcomeNotEnrolled は未登録のため何もしなかったことを示す。
	OutcomeNotEnrolled
)

// String はメトリクスのラベルやログ属性に使う名前を返す。
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEnrolled:
		return "enrolled"
	case OutcomeAlreadyEnrolled:
		return "already_enrolled"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotEnrolled:
		return "not_enrolled"
	default:
		return "unknown"
	}
}

// Outcome は1ユーザーに対する操作結果の通知。
// エラーではなく、呼び出し側が表示や記録に使う観測可能な結果として返す。
type Outcome struct {
	Kind      OutcomeKind
	User      model.User
	TrackName string
}

// Changed はロスターが変化した場合にtrueを返す。
func (o Outcome) Changed() bool {
	return o.Kind == OutcomeEnrolled || o.Kind == OutcomeRemoved
}
