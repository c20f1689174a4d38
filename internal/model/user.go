// Package model はドメインモデルを定義する。
package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// User はトラックに登録される受講者を表す。
//
// ユーザーの同一性は名前キー（Key）で判定する。
// 別々に生成された User でも名前キーが一致すれば同一ユーザーとみなす。
type User struct {
	Name string
}

// NewUser はUserの新しいインスタンスを生成する。
// 表示名は入力されたまま保持する。
func NewUser(name string) User {
	return User{Name: name}
}

// Key はユーザーの同一性判定に使う名前キーを返す。
// 前後の空白を除去し、連続する空白を1つにまとめ、NFC正規化したうえでケースフォールディングする。
func (u User) Key() string {
	return NameKey(u.Name)
}

// Equal は名前キーが一致する場合にtrueを返す。
func (u User) Equal(other User) bool {
	return u.Key() == other.Key()
}

// NameKey は名前から同一性判定用のキーを生成する。
func NameKey(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return cases.Fold().String(norm.NFC.String(collapsed))
}
