package app

import "errors"

var (
	// ErrNoRomsFound はROMディレクトリにROMファイルが無い場合のエラー
	ErrNoRomsFound = errors.New("ROMファイルが見つかりませんでした")

	// ErrGameNotFound は指定された名前のゲームが無い場合のエラー
	ErrGameNotFound = errors.New("指定されたゲームが見つかりませんでした")
)
