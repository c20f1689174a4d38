package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/formacao/internal/config"
	"github.com/hitoshi/formacao/internal/enrollment"
	"github.com/hitoshi/formacao/internal/i18n"
	"github.com/hitoshi/formacao/internal/logger"
	"github.com/hitoshi/formacao/internal/menu"
	"github.com/hitoshi/formacao/internal/metrics"
	"github.com/hitoshi/formacao/internal/model"
	"github.com/hitoshi/formacao/internal/security"
	"github.com/hitoshi/formacao/internal/track"
)

// IO はアプリケーションの入出力先を保持する。
// Outにはメニューと通知、LogにはJSON構造化ログを出力する。
type IO struct {
	In  io.Reader
	Out io.Writer
	Log io.Writer
}

// demoStudents はdemoコマンドで登録する受講者。
var demoStudents = []string{"Alice", "Bob", "Charlie", "Diana", "Eva", "Teresvaldo"}

// defaultContents はトラックに収録する教材。
func defaultContents() []model.EducationalContent {
	return []model.EducationalContent{
		model.NewContent("Introdução ao Kotlin"),
		model.NewContentWithDuration("Programação Orientada a Objetos", 90),
	}
}

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	var level slog.LevelVar
	logger.Install(w, &level)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 3. 設定されたログレベルに切り替える
	level.Set(cfg.LogLevel)

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
//
// トラックの構築に失敗した場合は通知を表示してnilを返す（終了コード0）。
// 設定や入出力のエラーのみをエラーとして返す。
func Run(stdio IO, args []string) error {
	cmd := ParseCommand(args)

	cfg, err := Init(stdio.Log)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("locale", cfg.Locale),
		slog.String("track_name", cfg.TrackName),
	)

	printer, err := i18n.NewPrinter(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to create printer: %w", err)
	}

	t, err := track.New(cfg.TrackName, cfg.TrackLevel, defaultContents())
	if err != nil {
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("failed to create track: %w", err)
		}
		slog.Error("track validation failed",
			slog.String("code", ve.Code),
			slog.String("field", ve.Field),
		)
		fmt.Fprintln(stdio.Out, printer.ValidationFailure(err))
		return nil
	}

	slog.Info("track created",
		slog.String("track_id", t.ID()),
		slog.String("level", string(t.Level())),
		slog.Int("total_duration", t.TotalDuration()),
	)

	reg := prometheus.NewRegistry()
	svc := enrollment.NewService(t, metrics.NewCollector(reg))

	switch cmd {
	case CommandDemo:
		runDemo(stdio.Out, svc, printer)
	default:
		if err := runMenu(stdio, svc, printer); err != nil {
			return err
		}
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			return err
		}
		slog.Info("metrics written", slog.String("path", cfg.MetricsTextfile))
	}

	slog.Info("application stopped", slog.Int("roster_size", t.Len()))
	return nil
}

// runMenu は対話メニューを起動する。
func runMenu(stdio IO, svc *enrollment.Service, printer *i18n.Printer) error {
	driver := menu.NewDriver(stdio.In, stdio.Out, svc, printer, security.NewNameSanitizer())
	if err := driver.Run(); err != nil {
		return fmt.Errorf("failed to read menu input: %w", err)
	}
	return nil
}

// runDemo は固定の受講者を一括登録し、ロスターと教材を表示する。
func runDemo(out io.Writer, svc *enrollment.Service, printer *i18n.Printer) {
	users := make([]model.User, len(demoStudents))
	for i, name := range demoStudents {
		users[i] = model.NewUser(name)
	}

	for _, o := range svc.Enroll(users) {
		fmt.Fprintln(out, printer.Outcome(o))
	}

	name := svc.Track().Name()
	fmt.Fprintln(out, printer.EnrolledList(name, svc.Enrolled()))
	fmt.Fprintln(out, printer.ContentList(name, svc.Contents(), true))
	fmt.Fprintln(out, printer.TotalDuration(name, svc.Track().TotalDuration()))
}
