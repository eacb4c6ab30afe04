package snesrom

import "errors"

var (
	// ErrInvalidRom はROMファイルが無効またはサポートされていない場合のエラー
	ErrInvalidRom = errors.New("ROMファイルが無効またはサポートされていません")

	// errInvalidHeader は候補オフセットでSNESヘッダーを解読できなかった場合の
	// 内部エラー。locateHeaderのフォールバック処理の中でのみ使用され、
	// 呼び出し元には返されません。
	errInvalidHeader = errors.New("SNESヘッダーを解読できませんでした")
)
