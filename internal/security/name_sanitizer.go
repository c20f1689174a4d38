// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizer はコンソールから入力されたユーザー名を表示・記録前に無害化する。
// bluemondayのStrictPolicyですべてのタグを除去し、プレーンテキストとして扱う。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizerService は入力された名前のサニタイズ機能のインターフェースを定義する。
type NameSanitizerService interface {
	// Sanitize はマークアップを除去し、連続する空白を1つにまとめた名前を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// nameSanitizer はNameSanitizerServiceの実装。
type nameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerServiceの新しいインスタンスを生成する。
func NewNameSanitizer() *nameSanitizer {
	return &nameSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// maxSanitizePasses はエンティティの多重エンコードを剥がす回数の上限。
const maxSanitizePasses = 16

// Sanitize は名前をサニタイズする。
// アンエスケープでタグが復元されることがあるため、出力が変化しなくなるまで
// タグ除去とアンエスケープを繰り返す。上限回数内に収束しない入力は空文字列とする。
func (s *nameSanitizer) Sanitize(raw string) string {
	current := raw
	for i := 0; i < maxSanitizePasses; i++ {
		next := s.pass(current)
		if next == current {
			return next
		}
		current = next
	}
	return ""
}

func (s *nameSanitizer) pass(in string) string {
	stripped := html.UnescapeString(s.policy.Sanitize(in))
	return strings.Join(strings.Fields(stripped), " ")
}
