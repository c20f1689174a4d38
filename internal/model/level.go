package model

import "strings"

// Level はトラックの難易度を表す。
type Level string

const (
	// LevelBasic は基礎レベル。
	LevelBasic Level = "basic"
	// LevelIntermediate は中級レベル。
	LevelIntermediate Level = "intermediate"
	// LevelAdvanced は上級レベル。
	LevelAdvanced Level = "advanced"
)

// ParseLevel は文字列からLevelを解析する。
// 空文字列はLevelBasicとして扱う。大文字小文字は区別しない。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return LevelBasic, nil
	case "intermediate":
		return LevelIntermediate, nil
	case "advanced":
		return LevelAdvanced, nil
	default:
		return "", NewInvalidLevelError(s)
	}
}

// Valid は定義済みのレベルかどうかを返す。
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}
