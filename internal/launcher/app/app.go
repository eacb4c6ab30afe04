// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/natulte/go-dinocity/internal/launcher/config"
	"github.com/natulte/go-dinocity/internal/launcher/emulator"
	"github.com/natulte/go-dinocity/internal/launcher/fileutil"
	"github.com/natulte/go-dinocity/internal/launcher/interfaces"
	"github.com/natulte/go-dinocity/internal/launcher/models"
	"github.com/natulte/go-dinocity/pkg/snesrom"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger *config.DebugLogger
	fs     interfaces.FileSystem
	finder interfaces.RomFinder
	parser interfaces.RomParser
	runner interfaces.Runner
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Finder     interfaces.RomFinder
	Parser     interfaces.RomParser
	Runner     interfaces.Runner
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのRomFinderを設定
	finder := opts.Finder
	if finder == nil {
		finder = fileutil.NewRomFileFinder(fs)
	}

	// デフォルトのRomParserを設定
	parser := opts.Parser
	if parser == nil {
		parser = &snesromParser{}
	}

	// デフォルトのRunnerを設定
	runner := opts.Runner
	if runner == nil {
		runner = emulator.NewRunner(cfg.EmulatorPath, logger)
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
		finder: finder,
		parser: parser,
		runner: runner,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// ROMディレクトリの検索
	romFiles, err := a.finder.FindAll(a.config.RomDir)
	if err != nil {
		return err
	}
	if len(romFiles) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRomsFound, a.config.RomDir)
	}
	a.logger.Printf("%s から %d 件のROMファイルを検出しました\n", a.config.RomDir, len(romFiles))

	// 各ROMのヘッダーを解析してゲーム一覧を組み立てる
	games, err := a.loadGames(ctx, romFiles)
	if err != nil {
		return err
	}

	// 一覧の出力
	fmt.Print(a.generateListing(games))

	// ゲームが指定されている場合はエミュレーターを起動
	if a.config.RunGame != "" {
		return a.launch(ctx, games)
	}

	return nil
}

// loadGames は各ROMファイルのヘッダーを解析してGameを組み立てます。
// 解析に失敗したROMは警告を表示して読み飛ばします。
func (a *App) loadGames(ctx context.Context, romFiles []string) ([]*models.Game, error) {
	var games []*models.Game

	for _, romPath := range romFiles {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rom, err := a.parser.Parse(romPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "警告: %s を読み飛ばします: %v\n", romPath, err)
			continue
		}

		name := fileutil.GameName(romPath)
		games = append(games, &models.Game{
			Name:      name,
			RomPath:   romPath,
			CoverPath: fileutil.CoverPath(a.fs, a.config.CoverDir, name),
			Rom:       rom,
		})
		a.logger.Printf("%s を読み込みました（%s）\n", rom.Title, rom.Info())
	}

	return games, nil
}

// generateListing はゲーム一覧の表示内容を生成します
func (a *App) generateListing(games []*models.Game) string {
	var builder strings.Builder

	if len(games) == 1 {
		builder.WriteString("1 ROM found\n")
	} else {
		builder.WriteString(fmt.Sprintf("%d ROMs found\n", len(games)))
	}

	for _, game := range games {
		builder.WriteString(fmt.Sprintf("%s\n", game.Rom.Title))
		builder.WriteString(fmt.Sprintf("    %s (%s)\n", game.RomPath, game.Rom.Info()))
	}

	return builder.String()
}

// launch は指定された名前のゲームをエミュレーターで起動します
func (a *App) launch(ctx context.Context, games []*models.Game) error {
	for _, game := range games {
		if game.Name == a.config.RunGame {
			return a.runner.Run(ctx, game.RomPath)
		}
	}
	return fmt.Errorf("%w: %s", ErrGameNotFound, a.config.RunGame)
}

// snesromParser はpkg/snesromを使用するデフォルトのRomParser実装
type snesromParser struct{}

// Parse はROMイメージのヘッダーを解析します
func (p *snesromParser) Parse(path string) (*snesrom.Rom, error) {
	return snesrom.Parse(path)
}
