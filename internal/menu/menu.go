// Package menu はトラック操作のテキストメニューを提供する。
//
// 入力の解析と表示のみを担い、状態遷移はenrollment.Serviceに委譲する。
// 終了選択時はプロセスを終了せず、SignalExitを呼び出し元に返す。
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hitoshi/formacao/internal/enrollment"
	"github.com/hitoshi/formacao/internal/i18n"
	"github.com/hitoshi/formacao/internal/model"
	"github.com/hitoshi/formacao/internal/security"
)

// Choice はメニューの選択肢を表す。
type Choice int

const (
	ChoiceEnroll       Choice = 1
	ChoiceRemove       Choice = 2
	ChoiceListEnrolled Choice = 3
	ChoiceListContents Choice = 4
	ChoiceExit         Choice = 5
)

// Signal はメニューループを継続するかどうかを表す。
type Signal int

const (
	// SignalContinue はループを継続することを示す。
	SignalContinue Signal = iota
	// SignalExit はループを終了することを示す。
	SignalExit
)

// ParseChoice は入力行を選択肢に変換する。
// 数値として解釈できない入力は0（無効な選択肢）とする。
func ParseChoice(line string) Choice {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return Choice(n)
}

// Driver はメニューループを駆動する。
type Driver struct {
	in        *bufio.Scanner
	out       io.Writer
	svc       *enrollment.Service
	printer   *i18n.Printer
	sanitizer security.NameSanitizerService
}

// NewDriver はDriverの新しいインスタンスを生成する。
func NewDriver(
	in io.Reader,
	out io.Writer,
	svc *enrollment.Service,
	printer *i18n.Printer,
	sanitizer security.NameSanitizerService,
) *Driver {
	return &Driver{
		in:        bufio.NewScanner(in),
		out:       out,
		svc:       svc,
		printer:   printer,
		sanitizer: sanitizer,
	}
}

// Run はSignalExitまたは入力の終端までメニューを繰り返す。
// 入力の終端は終了選択と同じ扱いにする。
func (d *Driver) Run() error {
	for {
		for _, line := range d.printer.Menu(d.svc.Track().Name()) {
			d.println(line)
		}
		d.print(d.printer.PromptChoice())

		line, ok := d.readLine()
		if !ok {
			d.println("")
			d.println(d.printer.Exit())
			return d.in.Err()
		}

		if d.Step(ParseChoice(line)) == SignalExit {
			return nil
		}
	}
}

// Step は1回分の選択を処理する。
func (d *Driver) Step(choice Choice) Signal {
	switch choice {
	case ChoiceEnroll:
		user, ok := d.promptUser(d.printer.PromptEnroll())
		if !ok {
			return SignalContinue
		}
		for _, o := range d.svc.Enroll([]model.User{user}) {
			d.println(d.printer.Outcome(o))
		}
	case ChoiceRemove:
		user, ok := d.promptUser(d.printer.PromptRemove())
		if !ok {
			return SignalContinue
		}
		d.println(d.printer.Outcome(d.svc.Remove(user)))
	case ChoiceListEnrolled:
		d.println(d.printer.EnrolledList(d.svc.Track().Name(), d.svc.Enrolled()))
	case ChoiceListContents:
		d.println(d.printer.ContentList(d.svc.Track().Name(), d.svc.Contents(), false))
	case ChoiceExit:
		d.println(d.printer.Exit())
		return SignalExit
	default:
		d.println(d.printer.InvalidOption())
	}
	return SignalContinue
}

// promptUser は受講者名を読み取り、サニタイズしたUserを返す。
// 入力が空の場合は通知を出してfalseを返す。入力が終端に達した場合は何も出さずにfalseを返す。
func (d *Driver) promptUser(prompt string) (model.User, bool) {
	d.print(prompt)
	line, ok := d.readLine()
	if !ok {
		return model.User{}, false
	}
	name := d.sanitizer.Sanitize(line)
	if name == "" {
		d.println(d.printer.InvalidName())
		return model.User{}, false
	}
	return model.NewUser(name), true
}

func (d *Driver) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return d.in.Text(), true
}

func (d *Driver) print(s string) {
	fmt.Fprint(d.out, s)
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}
