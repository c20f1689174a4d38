package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_LOCALE", "pt-BR")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("TRACK_NAME", "")
	t.Setenv("TRACK_LEVEL", "")
	t.Setenv("METRICS_TEXTFILE", "")
}

func TestInit_WithValidConfig_Succeeds(t *testing.T) {
	setTestEnv(t)

	var buf bytes.Buffer
	cfg, err := Init(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Locale != "pt-BR" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "pt-BR")
	}

	// Verify that slog global logger is configured for JSON output
	slog.Default().Info("init test")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log output, got error: %v\nraw: %s", err, buf.String())
	}
	if entry["msg"] != "init test" {
		t.Errorf("msg = %q, want %q", entry["msg"], "init test")
	}
}

func TestInit_WithInvalidConfig_ReturnsError(t *testing.T) {
	setTestEnv(t)
	t.Setenv("TRACK_LEVEL", "expert")

	var buf bytes.Buffer
	cfg, err := Init(&buf)
	if err == nil {
		t.Fatal("expected error for invalid env vars, got nil")
	}
	if cfg != nil {
		t.Error("expected nil config on error")
	}
}

// TestRun_DemoCommand は6人の受講者を登録したロスターと教材が表示されることを検証する。
func TestRun_DemoCommand(t *testing.T) {
	setTestEnv(t)

	var out, logs bytes.Buffer
	err := Run(IO{In: strings.NewReader(""), Out: &out, Log: &logs}, []string{"demo"})
	if err != nil {
		t.Fatalf("Run(demo) returned error: %v", err)
	}

	output := out.String()
	want := []string{
		"Teresvaldo matriculado com sucesso na formação Desenvolvimento Kotlin.",
		"Alunos matriculados na formação Desenvolvimento Kotlin: [Alice, Bob, Charlie, Diana, Eva, Teresvaldo]",
		"Conteúdos da formação Desenvolvimento Kotlin: [Introdução ao Kotlin (60 min), Programação Orientada a Objetos (90 min)]",
		"Duração total da formação Desenvolvimento Kotlin: 150 min",
	}
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output should contain %q, got:\n%s", w, output)
		}
	}
}

// TestRun_MenuCommand は標準入力からメニューを操作できることを検証する。
func TestRun_MenuCommand(t *testing.T) {
	setTestEnv(t)

	var out, logs bytes.Buffer
	in := strings.NewReader("1\nAlice\n3\n5\n")
	if err := Run(IO{In: in, Out: &out, Log: &logs}, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Alunos matriculados na formação Desenvolvimento Kotlin: [Alice]") {
		t.Errorf("output should list [Alice], got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Saindo do programa.") {
		t.Errorf("output should contain exit message")
	}
}

// TestRun_BlankTrackName_ReportsAndSucceeds はトラック構築失敗が通知され、エラーにならないことを検証する。
func TestRun_BlankTrackName_ReportsAndSucceeds(t *testing.T) {
	setTestEnv(t)
	t.Setenv("TRACK_NAME", "   ")

	var out, logs bytes.Buffer
	err := Run(IO{In: strings.NewReader("5\n"), Out: &out, Log: &logs}, []string{"demo"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Erro ao matricular: Nome da formação não pode ser vazio.") {
		t.Errorf("output should contain validation message, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "TRACK_NAME_BLANK") {
		t.Errorf("logs should contain error code, got %q", logs.String())
	}
}

func TestRun_WithInvalidEnv_ReturnsError(t *testing.T) {
	setTestEnv(t)
	t.Setenv("APP_LOCALE", "!!")

	var out, logs bytes.Buffer
	err := Run(IO{In: strings.NewReader(""), Out: &out, Log: &logs}, []string{"demo"})
	if err == nil {
		t.Fatal("Run with invalid env should return error")
	}
}

// TestRun_WritesMetricsTextfile はMETRICS_TEXTFILE指定時にメトリクスが書き出されることを検証する。
func TestRun_WritesMetricsTextfile(t *testing.T) {
	setTestEnv(t)
	path := filepath.Join(t.TempDir(), "formacao.prom")
	t.Setenv("METRICS_TEXTFILE", path)

	var out, logs bytes.Buffer
	if err := Run(IO{In: strings.NewReader(""), Out: &out, Log: &logs}, []string{"demo"}); err != nil {
		t.Fatalf("Run(demo) returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics textfile: %v", err)
	}
	if !strings.Contains(string(data), `formacao_enrollment_outcomes_total{outcome="enrolled"} 6`) {
		t.Errorf("metrics should count 6 enrollments, got:\n%s", data)
	}
	if !strings.Contains(string(data), "formacao_roster_size 6") {
		t.Errorf("metrics should report roster size 6, got:\n%s", data)
	}
}
