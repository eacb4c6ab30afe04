package emulator

import "errors"

var (
	// ErrEmulatorFailed はエミュレーターの起動または実行に失敗した場合のエラー
	ErrEmulatorFailed = errors.New("エミュレーターの実行に失敗しました")
)
