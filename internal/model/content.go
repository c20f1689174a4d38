package model

// DefaultContentDuration はコンテンツの所要時間（分）のデフォルト値。
const DefaultContentDuration = 60

// EducationalContent はトラックを構成する教材を表す。
// 生成後は変更しない値オブジェクトとして扱う。
type EducationalContent struct {
	Name     string
	Duration int // 所要時間（分）
}

// NewContent はデフォルトの所要時間（60分）でコンテンツを生成する。
func NewContent(name string) EducationalContent {
	return NewContentWithDuration(name, DefaultContentDuration)
}

// NewContentWithDuration は所要時間を指定してコンテンツを生成する。
func NewContentWithDuration(name string, minutes int) EducationalContent {
	return EducationalContent{Name: name, Duration: minutes}
}
