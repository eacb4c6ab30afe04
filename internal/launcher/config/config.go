// Package config はdinocityコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"os"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	RomDir       string
	CoverDir     string
	EmulatorPath string
	RunGame      string
	DebugMode    bool
	ShowVersion  bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --roms string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing .smc/.sfc ROM images (default \"roms\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -r string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing .smc/.sfc ROM images (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --covers string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing cover art images (default \"covers\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -c string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory containing cover art images (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --emulator string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \temulator command used to play a game (default \"snes9x-gtk\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -e string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \temulator command used to play a game (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --run string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tname of the game to launch after listing")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// ROMディレクトリ
	flag.StringVar(&config.RomDir, "roms", "roms", "directory containing .smc/.sfc ROM images")
	flag.StringVar(&config.RomDir, "r", "roms", "directory containing .smc/.sfc ROM images (shorthand)")

	// カバーアートディレクトリ
	flag.StringVar(&config.CoverDir, "covers", "covers", "directory containing cover art images")
	flag.StringVar(&config.CoverDir, "c", "covers", "directory containing cover art images (shorthand)")

	// エミュレーターコマンド
	flag.StringVar(&config.EmulatorPath, "emulator", "snes9x-gtk", "emulator command used to play a game")
	flag.StringVar(&config.EmulatorPath, "e", "snes9x-gtk", "emulator command used to play a game (shorthand)")

	// 起動するゲーム
	flag.StringVar(&config.RunGame, "run", "", "name of the game to launch after listing")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("dinocity version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
