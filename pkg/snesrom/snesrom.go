// Package snesrom はスーパーファミコンのROMイメージ（.smc/.sfcファイル）の
// ヘッダーを解析するためのパッケージです。
//
// ROMイメージの先頭には、コピー機器が付加した512バイトのSMCヘッダーが
// 存在する場合があります。SMCヘッダーの有無はファイルサイズを1024で
// 割った余りから判定します（0なら無し、512なら有り、それ以外は無効）。
//
// SNESヘッダーはLoROMイメージでは0x7fc0、HiROMイメージでは0xffc0に
// 配置されます。SMCヘッダーが存在する場合、これらのオフセットは
// 512バイトずれます（それぞれ0x81c0と0x101c0）。
// ヘッダーの各フィールドについては
// http://romhack.wikia.com/wiki/SNES_header を参照してください。
//
// 基本的な使い方:
//
//	rom, err := snesrom.Parse("chrono_trigger.smc")
//	if err != nil {
//	    // ...
//	}
//	fmt.Printf("%s (%s)\n", rom.Title, rom.Info())
package snesrom

import (
	"fmt"
	"os"
)

// Rom は解析済みROMイメージのヘッダー情報を保持します。
// Parseが返した後は変更されません。
type Rom struct {
	// Path は解析したROMファイルのパス
	Path string

	// FileSize はROMファイル全体のサイズ（バイト）
	FileSize int64

	// HasSMCHeader はSMCヘッダーが存在するかどうか
	HasSMCHeader bool

	// SMCDumpSize はSMCヘッダーに記録されたダンプサイズ（バイト）。
	// SMCヘッダーが存在しない場合は0。
	SMCDumpSize int

	// SMCFlags はSMCヘッダーのレイアウト・セーブRAMフラグ。
	// SMCヘッダーが存在しない場合は0。
	SMCFlags byte

	// Title はSNESヘッダーから取得したゲームタイトル
	// （空白のトリムとタイトルケース変換済み）
	Title string

	// Layout はROMのメモリマッピング方式
	Layout Layout

	// CartridgeType はカートリッジの種別
	CartridgeType CartridgeType

	// RomSize はROMサイズ（kB）
	RomSize int

	// RamSize はRAMサイズ（kB）。CartridgeTypeがCartridgeSaveRamの
	// 場合のみ意味を持ちます。
	RamSize int

	// HeaderOffset は採用したSNESヘッダーのファイル先頭からのオフセット
	HeaderOffset int64
}

// Parse はROMファイルを開き、SMCヘッダーの判定とSNESヘッダーの解析を
// 行います。ファイルハンドルは解析の成否にかかわらず関数終了時に
// 閉じられます。ROM本体をメモリに読み込むことはありません。
func Parse(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()

	hasSMC, err := detectSMCHeader(size)
	if err != nil {
		return nil, err
	}

	rom := &Rom{
		Path:         path,
		FileSize:     size,
		HasSMCHeader: hasSMC,
	}

	if hasSMC {
		dumpSize, flags, err := parseSMCHeader(f)
		if err != nil {
			return nil, err
		}
		rom.SMCDumpSize = dumpSize
		rom.SMCFlags = flags
	}

	fields, offset, err := locateHeader(f, hasSMC)
	if err != nil {
		return nil, err
	}

	rom.Title = normalizeTitle(fields.title[:])
	rom.Layout = classifyLayout(fields.layout)
	rom.CartridgeType = classifyCartridgeType(fields.cartridgeType)
	rom.RomSize = 1 << fields.romSize
	rom.RamSize = 1 << fields.ramSize
	rom.HeaderOffset = offset

	return rom, nil
}

// detectSMCHeader はファイルサイズからSMCヘッダーの有無を判定します。
// サイズを1024で割った余りが0ならヘッダー無し、512なら有り、
// それ以外のファイルはROMイメージとして無効です。
func detectSMCHeader(size int64) (bool, error) {
	switch size % 1024 {
	case 0:
		return false, nil
	case 512:
		return true, nil
	default:
		return false, fmt.Errorf("%w: ファイルサイズが不正です（%dバイト）", ErrInvalidRom, size)
	}
}

// Info はROMの容量と機能を表す表示用の文字列を返します。
// 例: "16kB HiROM, RomOnly"、"32kB LoROM, with 8kB SaveRam"
func (r *Rom) Info() string {
	info := fmt.Sprintf("%dkB %s", r.RomSize, r.Layout)
	if r.CartridgeType == CartridgeSaveRam {
		return fmt.Sprintf("%s, with %dkB %s", info, r.RamSize, r.CartridgeType)
	}
	return fmt.Sprintf("%s, %s", info, r.CartridgeType)
}
