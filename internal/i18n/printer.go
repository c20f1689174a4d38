// Package i18n は操作結果やメニューの表示文言を提供する。
//
// 文言はgolang.org/x/text/messageのカタログで管理し、ja（デフォルト）、pt-BR、enに対応する。
// ドメイン層はtrack.Outcomeを返すだけで、表示はこのパッケージが担う。
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hitoshi/formacao/internal/model"
	"github.com/hitoshi/formacao/internal/track"
)

var matcher = language.NewMatcher(supported)

// Printer はロケールに応じた文言を生成する。
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter は指定ロケールのPrinterを生成する。
// 空文字列はDefaultLocaleとして扱う。未対応のロケールはエラーを返す。
func NewPrinter(locale string) (*Printer, error) {
	tag, err := resolve(locale)
	if err != nil {
		return nil, err
	}
	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build message catalog: %w", err)
	}
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// Supported はロケールが対応済みかどうかを返す。
func Supported(locale string) bool {
	_, err := resolve(locale)
	return err == nil
}

// resolve はロケール文字列を対応済みのタグに解決する。
// 拡張サブタグを含むタグを避けるため、Matchの返すインデックスでsupportedから取り出す。
func resolve(locale string) (language.Tag, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported locale: %s", locale)
	}
	return supported[idx], nil
}

// Locale は解決済みのロケールを返す。
func (p *Printer) Locale() string {
	return p.tag.String()
}

// Outcome は操作結果の通知文を返す。
func (p *Printer) Outcome(o track.Outcome) string {
	switch o.Kind {
	case track.OutcomeEnrolled:
		return p.p.Sprintf(keyOutcomeEnrolled, o.User.Name, o.TrackName)
	case track.OutcomeAlreadyEnrolled:
		return p.p.Sprintf(keyOutcomeAlreadyEnrolled, o.User.Name)
	case track.OutcomeRemoved:
		return p.p.Sprintf(keyOutcomeRemoved, o.User.Name, o.TrackName)
	case track.OutcomeNotEnrolled:
		return p.p.Sprintf(keyOutcomeNotEnrolled, o.User.Name)
	default:
		return o.Kind.String()
	}
}

// Menu はメニューの各行を返す。
func (p *Printer) Menu(trackName string) []string {
	return []string{
		p.p.Sprintf(keyMenuTitle, trackName),
		p.p.Sprintf(keyMenuEnroll),
		p.p.Sprintf(keyMenuRemove),
		p.p.Sprintf(keyMenuListEnrolled),
		p.p.Sprintf(keyMenuListContents),
		p.p.Sprintf(keyMenuExit),
	}
}

// PromptChoice は選択肢の入力プロンプトを返す。
func (p *Printer) PromptChoice() string { return p.p.Sprintf(keyPromptChoice) }

// PromptEnroll は登録する受講者名の入力プロンプトを返す。
func (p *Printer) PromptEnroll() string { return p.p.Sprintf(keyPromptEnroll) }

// PromptRemove は削除する受講者名の入力プロンプトを返す。
func (p *Printer) PromptRemove() string { return p.p.Sprintf(keyPromptRemove) }

// InvalidOption は無効な選択肢に対する通知文を返す。
func (p *Printer) InvalidOption() string { return p.p.Sprintf(keyInvalidOption) }

// InvalidName は空の受講者名に対する通知文を返す。
func (p *Printer) InvalidName() string { return p.p.Sprintf(keyInvalidName) }

// Exit は終了時のメッセージを返す。
func (p *Printer) Exit() string { return p.p.Sprintf(keyExit) }

// EnrolledList は登録済み受講者の一覧を返す。
func (p *Printer) EnrolledList(trackName string, users []model.User) string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return p.p.Sprintf(keyListEnrolled, trackName, strings.Join(names, ", "))
}

// ContentList は教材名の一覧を返す。
// withDurationがtrueの場合は所要時間を併記する。
func (p *Printer) ContentList(trackName string, contents []model.EducationalContent, withDuration bool) string {
	items := make([]string, len(contents))
	for i, c := range contents {
		if withDuration {
			items[i] = p.p.Sprintf(keyContentItem, c.Name, c.Duration)
		} else {
			items[i] = c.Name
		}
	}
	return p.p.Sprintf(keyListContents, trackName, strings.Join(items, ", "))
}

// TotalDuration は教材の合計所要時間（分）を返す。
func (p *Printer) TotalDuration(trackName string, minutes int) string {
	return p.p.Sprintf(keyContentTotal, trackName, minutes)
}

// ValidationFailure はトラック構築失敗などの検証エラーを表示用に整形する。
// 既知のエラーコードは翻訳済みの文言を使い、それ以外はエラーメッセージをそのまま使う。
func (p *Printer) ValidationFailure(err error) string {
	detail := err.Error()
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		detail = ve.Message
		if _, ok := messages[p.tag][validationKeyPrefix+ve.Code]; ok {
			detail = p.p.Sprintf(validationKeyPrefix + ve.Code)
		}
	}
	return p.p.Sprintf(keyValidationFailed, detail)
}
