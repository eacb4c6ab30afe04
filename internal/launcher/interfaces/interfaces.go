// Package interfaces はdinocityコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/natulte/go-dinocity/pkg/snesrom"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadDir(dirname string) ([]DirEntry, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// RomParser はROMイメージのヘッダーを解析するインターフェース
type RomParser interface {
	Parse(path string) (*snesrom.Rom, error)
}

// RomFinder はディレクトリからROMファイルを検索するインターフェース
type RomFinder interface {
	FindAll(dir string) ([]string, error)
}

// Runner は外部のエミュレーターを起動するインターフェース
type Runner interface {
	Run(ctx context.Context, romPath string) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
