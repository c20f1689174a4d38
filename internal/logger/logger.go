// Package logger はアプリケーション全体で使うJSON構造化ログを組み立てる。
//
// 標準出力はメニューの表示に使うため、ログの出力先は呼び出し側が決める。
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// appName はすべてのログ行に付与するアプリケーション名。
const appName = "formacao"

// New はlevel以上のレコードをwへJSONで書き出すロガーを返す。
// levelに*slog.LevelVarを渡すと、生成後にしきい値を変更できる。
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("app", appName))
}

// Install はNewで組み立てたロガーをslogのデフォルトに設定して返す。
// wがnilならos.Stderrを使う。
func Install(w io.Writer, level slog.Leveler) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := New(w, level)
	slog.SetDefault(l)
	return l
}

// ParseLevel はLOG_LEVELの値をslog.Levelに変換する。
// 大文字小文字は区別せず、"warning" はWARNとして扱う。空文字列はINFO。
func ParseLevel(s string) (slog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
