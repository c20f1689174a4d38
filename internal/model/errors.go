// Package model はドメインモデルを定義する。
package model

import "fmt"

// ValidationError はドメイン値の検証失敗を表す。
// トラック構築時など、処理を継続できない入力エラーにのみ使用する。
// 重複登録や未登録ユーザーの削除はエラーではなく track.Outcome として扱う。
type ValidationError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
	Field   string // 検証に失敗したフィールド
	Action  string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeTrackNameBlank   = "TRACK_NAME_BLANK"
	ErrCodeContentNameBlank = "CONTENT_NAME_BLANK"
	ErrCodeInvalidLevel     = "INVALID_LEVEL"
)

// NewBlankTrackNameError はトラック名が空の場合のエラーを生成する。
func NewBlankTrackNameError() *ValidationError {
	return &ValidationError{
		Code:    ErrCodeTrackNameBlank,
		Message: "トラック名を空にすることはできません。",
		Field:   "name",
		Action:  "空白以外の文字を含むトラック名を指定してください。",
	}
}

// NewBlankContentNameError はコンテンツ名が空の場合のエラーを生成する。
// indexは構築時に渡されたコンテンツ列での位置（0始まり）。
func NewBlankContentNameError(index int) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeContentNameBlank,
		Message: fmt.Sprintf("コンテンツ名を空にすることはできません: contents[%d]", index),
		Field:   fmt.Sprintf("contents[%d].name", index),
		Action:  "すべてのコンテンツに名前を指定してください。",
	}
}

// NewInvalidLevelError は未知のレベル指定に対するエラーを生成する。
func NewInvalidLevelError(value string) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeInvalidLevel,
		Message: fmt.Sprintf("無効なレベルです: %s", value),
		Field:   "level",
		Action:  "レベルには basic、intermediate、advanced のいずれかを指定してください。",
	}
}
