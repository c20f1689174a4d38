package i18n

import (
	"errors"
	"strings"
	"testing"

	"github.com/hitoshi/formacao/internal/model"
	"github.com/hitoshi/formacao/internal/track"
)

func mustPrinter(t *testing.T, locale string) *Printer {
	t.Helper()
	p, err := NewPrinter(locale)
	if err != nil {
		t.Fatalf("NewPrinter(%q) returned error: %v", locale, err)
	}
	return p
}

// TestNewPrinter_ResolvesLocale はロケールの解決を検証する。
func TestNewPrinter_ResolvesLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "ja"},
		{"ja", "ja"},
		{"ja-JP", "ja"},
		{"pt-BR", "pt-BR"},
		{"en", "en"},
		{"en-US", "en"},
	}

	for _, tt := range tests {
		p := mustPrinter(t, tt.locale)
		if got := p.Locale(); got != tt.want {
			t.Errorf("NewPrinter(%q).Locale() = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestNewPrinter_InvalidLocale(t *testing.T) {
	for _, locale := range []string{"not a locale!!", "xx-invalid-999999"} {
		if _, err := NewPrinter(locale); err == nil {
			t.Errorf("NewPrinter(%q) expected error, got nil", locale)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("pt-BR") {
		t.Error("Supported(pt-BR) = false, want true")
	}
	if Supported("!!") {
		t.Error("Supported(!!) = true, want false")
	}
}

// TestOutcome_Portuguese は元の文言（pt-BR）での通知を検証する。
func TestOutcome_Portuguese(t *testing.T) {
	p := mustPrinter(t, "pt-BR")
	alice := model.NewUser("Alice")

	tests := []struct {
		kind track.OutcomeKind
		want string
	}{
		{track.OutcomeEnrolled, "Alice matriculado com sucesso na formação Dev."},
		{track.OutcomeAlreadyEnrolled, "Alice já está matriculado nesta formação."},
		{track.OutcomeRemoved, "Alice removido da formação Dev."},
		{track.OutcomeNotEnrolled, "Alice não está matriculado nesta formação."},
	}

	for _, tt := range tests {
		got := p.Outcome(track.Outcome{Kind: tt.kind, User: alice, TrackName: "Dev"})
		if got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestOutcome_Japanese(t *testing.T) {
	p := mustPrinter(t, "ja")

	got := p.Outcome(track.Outcome{Kind: track.OutcomeEnrolled, User: model.NewUser("Alice"), TrackName: "Dev"})
	if got != "Alice をトラック Dev に登録しました。" {
		t.Errorf("Outcome = %q", got)
	}
}

// TestAllLocalesDefineSameKeys は全ロケールが同じキー集合を持つことを検証する。
func TestAllLocalesDefineSameKeys(t *testing.T) {
	base := messages[supported[0]]
	for _, tag := range supported[1:] {
		msgs := messages[tag]
		if len(msgs) != len(base) {
			t.Errorf("%s: %d messages, want %d", tag, len(msgs), len(base))
		}
		for key := range base {
			if _, ok := msgs[key]; !ok {
				t.Errorf("%s: missing key %q", tag, key)
			}
		}
	}
}

func TestMenu(t *testing.T) {
	p := mustPrinter(t, "pt-BR")

	lines := p.Menu("Dev")
	if len(lines) != 6 {
		t.Fatalf("expected 6 menu lines, got %d", len(lines))
	}
	if lines[0] != "=== Dev ===" {
		t.Errorf("lines[0] = %q, want %q", lines[0], "=== Dev ===")
	}
	if lines[5] != "5. Sair" {
		t.Errorf("lines[5] = %q, want %q", lines[5], "5. Sair")
	}
}

func TestEnrolledList(t *testing.T) {
	p := mustPrinter(t, "en")

	got := p.EnrolledList("Dev", []model.User{model.NewUser("Alice"), model.NewUser("Bob")})
	if got != "Students enrolled in track Dev: [Alice, Bob]" {
		t.Errorf("EnrolledList = %q", got)
	}

	got = p.EnrolledList("Dev", nil)
	if got != "Students enrolled in track Dev: []" {
		t.Errorf("EnrolledList(empty) = %q", got)
	}
}

func TestContentList(t *testing.T) {
	p := mustPrinter(t, "en")
	contents := []model.EducationalContent{
		model.NewContent("Intro"),
		model.NewContentWithDuration("OOP", 90),
	}

	if got := p.ContentList("Dev", contents, false); got != "Contents of track Dev: [Intro, OOP]" {
		t.Errorf("ContentList = %q", got)
	}
	if got := p.ContentList("Dev", contents, true); got != "Contents of track Dev: [Intro (60 min), OOP (90 min)]" {
		t.Errorf("ContentList(withDuration) = %q", got)
	}
}

// TestValidationFailure は検証エラーの表示を検証する。
func TestValidationFailure(t *testing.T) {
	p := mustPrinter(t, "pt-BR")

	got := p.ValidationFailure(model.NewBlankTrackNameError())
	if got != "Erro ao matricular: Nome da formação não pode ser vazio." {
		t.Errorf("ValidationFailure = %q", got)
	}

	got = p.ValidationFailure(model.NewInvalidLevelError("expert"))
	if !strings.Contains(got, "expert") {
		t.Errorf("ValidationFailure should fall back to error message, got %q", got)
	}

	got = p.ValidationFailure(errors.New("boom"))
	if got != "Erro ao matricular: boom" {
		t.Errorf("ValidationFailure = %q", got)
	}
}

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "Total duration of track Dev: 150 min"},
		{"pt-BR", "Duração total da formação Dev: 150 min"},
		{"ja", "トラック Dev の合計時間: 150分"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			p, err := NewPrinter(tt.locale)
			if err != nil {
				t.Fatalf("NewPrinter(%q) returned error: %v", tt.locale, err)
			}
			if got := p.TotalDuration("Dev", 150); got != tt.want {
				t.Errorf("TotalDuration = %q, want %q", got, tt.want)
			}
		})
	}
}
