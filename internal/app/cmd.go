package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandRun は対話メニューで起動することを示す。
	CommandRun Command = "run"
	// CommandDemo は固定の受講者を登録して結果を表示するデモを実行することを示す。
	CommandDemo Command = "demo"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandRunを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandRun
	}

	switch args[0] {
	case "run":
		return CommandRun
	case "demo":
		return CommandDemo
	default:
		return CommandRun
	}
}
