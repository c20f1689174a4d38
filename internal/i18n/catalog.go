package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// メッセージキー
const (
	keyMenuTitle        = "menu.title"
	keyMenuEnroll       = "menu.enroll"
	keyMenuRemove       = "menu.remove"
	keyMenuListEnrolled = "menu.list_enrolled"
	keyMenuListContents = "menu.list_contents"
	keyMenuExit         = "menu.exit"

	keyPromptChoice = "prompt.choice"
	keyPromptEnroll = "prompt.enroll"
	keyPromptRemove = "prompt.remove"

	keyOutcomeEnrolled        = "outcome.enrolled"
	keyOutcomeAlreadyEnrolled = "outcome.already_enrolled"
	keyOutcomeRemoved         = "outcome.removed"
	keyOutcomeNotEnrolled     = "outcome.not_enrolled"

	keyInvalidOption = "invalid.option"
	keyInvalidName   = "invalid.name"

	keyListEnrolled = "list.enrolled"
	keyListContents = "list.contents"
	keyContentItem  = "content.item"
	keyContentTotal = "content.total"

	keyValidationFailed = "validation.failed"
	keyExit             = "exit"
)

// validationKeyPrefix に ValidationError.Code を連結したキーで検証エラーの翻訳を引く。
const validationKeyPrefix = "validation."

// DefaultLocale はロケール未指定時に使うロケール。
const DefaultLocale = "ja"

var supported = []language.Tag{
	language.Japanese,
	language.BrazilianPortuguese,
	language.English,
}

var messages = map[language.Tag]map[string]string{
	language.Japanese: {
		keyMenuTitle:        "=== %s ===",
		keyMenuEnroll:       "1. 受講者を登録",
		keyMenuRemove:       "2. 受講者を削除",
		keyMenuListEnrolled: "3. 登録済み受講者を表示",
		keyMenuListContents: "4. トラックの教材を表示",
		keyMenuExit:         "5. 終了",

		keyPromptChoice: "選択してください: ",
		keyPromptEnroll: "登録する受講者名を入力してください: ",
		keyPromptRemove: "削除する受講者名を入力してください: ",

		keyOutcomeEnrolled:        "%s をトラック %s に登録しました。",
		keyOutcomeAlreadyEnrolled: "%s はこのトラックに登録済みです。",
		keyOutcomeRemoved:         "%s をトラック %s から削除しました。",
		keyOutcomeNotEnrolled:     "%s はこのトラックに登録されていません。",

		keyInvalidOption: "無効な選択です。もう一度お試しください。",
		keyInvalidName:   "受講者名を入力してください。",

		keyListEnrolled: "トラック %s の登録済み受講者: [%s]",
		keyListContents: "トラック %s の教材: [%s]",
		keyContentItem:  "%s（%d分）",
		keyContentTotal: "トラック %s の合計時間: %d分",

		keyValidationFailed: "登録処理でエラーが発生しました: %s",
		keyExit:             "プログラムを終了します。",

		validationKeyPrefix + "TRACK_NAME_BLANK":   "トラック名を空にすることはできません。",
		validationKeyPrefix + "CONTENT_NAME_BLANK": "コンテンツ名を空にすることはできません。",
	},
	language.BrazilianPortuguese: {
		keyMenuTitle:        "=== %s ===",
		keyMenuEnroll:       "1. Matricular aluno",
		keyMenuRemove:       "2. Remover aluno",
		keyMenuListEnrolled: "3. Exibir alunos matriculados",
		keyMenuListContents: "4. Exibir conteúdos da formação",
		keyMenuExit:         "5. Sair",

		keyPromptChoice: "Escolha uma opção: ",
		keyPromptEnroll: "Digite o nome do aluno a ser matriculado: ",
		keyPromptRemove: "Digite o nome do aluno a ser removido: ",

		keyOutcomeEnrolled:        "%s matriculado com sucesso na formação %s.",
		keyOutcomeAlreadyEnrolled: "%s já está matriculado nesta formação.",
		keyOutcomeRemoved:         "%s removido da formação %s.",
		keyOutcomeNotEnrolled:     "%s não está matriculado nesta formação.",

		keyInvalidOption: "Opção inválida. Tente novamente.",
		keyInvalidName:   "Informe o nome do aluno.",

		keyListEnrolled: "Alunos matriculados na formação %s: [%s]",
		keyListContents: "Conteúdos da formação %s: [%s]",
		keyContentItem:  "%s (%d min)",
		keyContentTotal: "Duração total da formação %s: %d min",

		keyValidationFailed: "Erro ao matricular: %s",
		keyExit:             "Saindo do programa.",

		validationKeyPrefix + "TRACK_NAME_BLANK":   "Nome da formação não pode ser vazio.",
		validationKeyPrefix + "CONTENT_NAME_BLANK": "Nome do conteúdo não pode ser vazio.",
	},
	language.English: {
		keyMenuTitle:        "=== %s ===",
		keyMenuEnroll:       "1. Enroll student",
		keyMenuRemove:       "2. Remove student",
		keyMenuListEnrolled: "3. Show enrolled students",
		keyMenuListContents: "4. Show track contents",
		keyMenuExit:         "5. Exit",

		keyPromptChoice: "Choose an option: ",
		keyPromptEnroll: "Enter the name of the student to enroll: ",
		keyPromptRemove: "Enter the name of the student to remove: ",

		keyOutcomeEnrolled:        "%s successfully enrolled in track %s.",
		keyOutcomeAlreadyEnrolled: "%s is already enrolled in this track.",
		keyOutcomeRemoved:         "%s removed from track %s.",
		keyOutcomeNotEnrolled:     "%s is not enrolled in this track.",

		keyInvalidOption: "Invalid option. Try again.",
		keyInvalidName:   "Please enter a student name.",

		keyListEnrolled: "Students enrolled in track %s: [%s]",
		keyListContents: "Contents of track %s: [%s]",
		keyContentItem:  "%s (%d min)",
		keyContentTotal: "Total duration of track %s: %d min",

		keyValidationFailed: "Enrollment error: %s",
		keyExit:             "Exiting.",

		validationKeyPrefix + "TRACK_NAME_BLANK":   "Track name cannot be blank.",
		validationKeyPrefix + "CONTENT_NAME_BLANK": "Content name cannot be blank.",
	},
}

// newCatalog はmessagesからx/textのカタログを構築する。
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.Japanese))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
