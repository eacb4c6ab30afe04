// Package models はdinocityコマンドで使用するデータモデルを定義します
package models

import "github.com/natulte/go-dinocity/pkg/snesrom"

// Game はROMファイルとカバーアートの組を表します
type Game struct {
	Name      string       // 表示名（拡張子を除いたファイル名）
	RomPath   string       // ROMファイルのパス
	CoverPath string       // カバーアート画像のパス
	Rom       *snesrom.Rom // 解析済みのヘッダー情報
}
