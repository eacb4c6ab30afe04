package snesrom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SNESヘッダーの構造:
//
//	オフセット  サイズ（バイト）  内容
//	----------------------------------------------------------------
//	0          21               スペース詰めASCIIのゲームタイトル
//	21         1                ROMレイアウト（LoROM / HiROM / FastROM）
//	22         1                カートリッジ種別（ROMのみ / セーブRAM付き）
//	23         1                ROMサイズ
//	24         1                RAMサイズ
//	...以降のフィールドは未解析。
const (
	// HeaderOffsetLoROM はLoROMイメージのSNESヘッダーオフセット
	HeaderOffsetLoROM = 0x7fc0

	// HeaderOffsetHiROM はHiROMイメージのSNESヘッダーオフセット
	HeaderOffsetHiROM = 0xffc0

	headerParsedSize = 25
	titleSize        = 21
)

// ROMレイアウトのコード値
const (
	layoutCodeLoROM   = 0x20
	layoutCodeHiROM   = 0x21
	layoutCodeFastROM = 0x10
)

// カートリッジ種別のコード値
const (
	cartridgeCodeRomOnly = 0x00
	cartridgeCodeSaveRam = 0x02
)

// Layout はROMのメモリマッピング方式を表します
type Layout int

const (
	// LayoutUnknown は未知のレイアウト
	LayoutUnknown Layout = iota

	// LayoutLoROM はLoROMレイアウト
	LayoutLoROM

	// LayoutHiROM はHiROMレイアウト
	LayoutHiROM

	// LayoutFastROM はFastROMレイアウト
	LayoutFastROM
)

// String は表示用のレイアウト名を返します
func (l Layout) String() string {
	switch l {
	case LayoutLoROM:
		return "LoROM"
	case LayoutHiROM:
		return "HiROM"
	case LayoutFastROM:
		return "FastROM"
	default:
		return "Unknown"
	}
}

// CartridgeType はカートリッジの種別を表します
type CartridgeType int

const (
	// CartridgeUnknown は未知のカートリッジ種別
	CartridgeUnknown CartridgeType = iota

	// CartridgeRomOnly はセーブRAMを持たないROMのみのカートリッジ
	CartridgeRomOnly

	// CartridgeSaveRam は電池バックアップのセーブRAMを持つカートリッジ
	CartridgeSaveRam
)

// String は表示用のカートリッジ種別名を返します
func (c CartridgeType) String() string {
	switch c {
	case CartridgeRomOnly:
		return "RomOnly"
	case CartridgeSaveRam:
		return "SaveRam"
	default:
		return "Unknown"
	}
}

// classifyLayout はレイアウトのコード値をLayoutに変換します。
// 未知のコード値はLayoutUnknownになります（エラーにはなりません）。
func classifyLayout(code byte) Layout {
	switch code {
	case layoutCodeLoROM:
		return LayoutLoROM
	case layoutCodeHiROM:
		return LayoutHiROM
	case layoutCodeFastROM:
		return LayoutFastROM
	default:
		return LayoutUnknown
	}
}

// classifyCartridgeType はカートリッジ種別のコード値をCartridgeTypeに
// 変換します。未知のコード値はCartridgeUnknownになります。
func classifyCartridgeType(code byte) CartridgeType {
	switch code {
	case cartridgeCodeRomOnly:
		return CartridgeRomOnly
	case cartridgeCodeSaveRam:
		return CartridgeSaveRam
	default:
		return CartridgeUnknown
	}
}

// headerFields はSNESヘッダーから読み出した生の値を保持します
type headerFields struct {
	title         [titleSize]byte
	layout        byte
	cartridgeType byte
	romSize       byte
	ramSize       byte
}

// locateHeader はLoROMオフセット、続いてHiROMオフセットの順でSNESヘッダーの
// 解読を試みます。SMCヘッダーが存在する場合は両方のオフセットを512バイト
// ずらします。最初に解読できた候補をそのまま採用し、内容の妥当性による
// 選び直しは行いません。どちらのオフセットでも解読できなかった場合は
// ErrInvalidRomを返します。
func locateHeader(r io.ReaderAt, hasSMC bool) (*headerFields, int64, error) {
	var shift int64
	if hasSMC {
		shift = SMCHeaderSize
	}

	candidates := []int64{
		HeaderOffsetLoROM + shift,
		HeaderOffsetHiROM + shift,
	}

	for _, offset := range candidates {
		fields, err := decodeHeader(r, offset)
		if err == nil {
			return fields, offset, nil
		}
		if !errors.Is(err, errInvalidHeader) {
			// 解読失敗ではなくI/Oエラー
			return nil, 0, err
		}
	}

	return nil, 0, fmt.Errorf("%w: どちらのオフセットにもSNESヘッダーが見つかりませんでした", ErrInvalidRom)
}

// decodeHeader は指定オフセットの25バイトをSNESヘッダーとして解読します。
// 必要なバイト数を読み取れない場合、またはタイトル欄が印字可能なASCIIで
// ない場合はerrInvalidHeaderを返します。
func decodeHeader(r io.ReaderAt, offset int64) (*headerFields, error) {
	buf := make([]byte, headerParsedSize)
	if _, err := r.ReadAt(buf, offset); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: オフセット0x%xで読み取りが不足しました", errInvalidHeader, offset)
		}
		return nil, err
	}

	fields := &headerFields{
		layout:        buf[21],
		cartridgeType: buf[22],
		romSize:       buf[23],
		ramSize:       buf[24],
	}
	copy(fields.title[:], buf[:titleSize])

	// タイトル欄はスペース詰めのASCIIと定義されている。
	// 印字可能なASCII以外のバイトが含まれる場合はヘッダーではないとみなす。
	for _, b := range fields.title {
		if b < 0x20 || b > 0x7e {
			return nil, fmt.Errorf("%w: オフセット0x%xのタイトル欄がASCIIではありません", errInvalidHeader, offset)
		}
	}

	return fields, nil
}

// normalizeTitle はタイトル欄の前後の空白を取り除き、タイトルケースに
// 変換します（例: "CHRONO TRIGGER" → "Chrono Trigger"）。
func normalizeTitle(raw []byte) string {
	title := strings.TrimSpace(string(raw))
	return cases.Title(language.Und).String(title)
}
