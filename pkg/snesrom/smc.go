package snesrom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// SMCヘッダーの構造:
//
//	オフセット  サイズ（バイト）  内容
//	----------------------------------------------------------------
//	0          2                ダンプサイズ（8kB単位、リトルエンディアン）
//	2          1                ROMレイアウトとセーブRAMサイズのフラグ
//	3          509              すべてゼロ
const (
	// SMCHeaderSize はSMCヘッダーのサイズ（バイト）
	SMCHeaderSize = 512

	smcHeaderParsedSize = 3
)

// SMCヘッダーのフラグ値
const (
	// SMCLayoutLoROM はSMCヘッダー側のLoROMフラグ
	SMCLayoutLoROM = 0x00

	// SMCLayoutHiROM はSMCヘッダー側のHiROMフラグ
	SMCLayoutHiROM = 0x30

	// SMCSaveRam32KB は32kBのセーブRAMを示すフラグ
	SMCSaveRam32KB = 0x00

	// SMCSaveRam8KB は8kBのセーブRAMを示すフラグ
	SMCSaveRam8KB = 0x04

	// SMCSaveRam4KB は4kBのセーブRAMを示すフラグ
	SMCSaveRam4KB = 0x08

	// SMCSaveRamNone はセーブRAM無しを示すフラグ
	SMCSaveRamNone = 0x0c
)

// parseSMCHeader はファイル先頭のSMCヘッダーからダンプサイズ（バイト）と
// フラグを読み取ります
func parseSMCHeader(r io.ReaderAt) (int, byte, error) {
	buf := make([]byte, smcHeaderParsedSize)
	if _, err := r.ReadAt(buf, 0); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, 0, fmt.Errorf("%w: SMCヘッダーを読み取れませんでした", ErrInvalidRom)
		}
		return 0, 0, err
	}

	dumpSize := int(binary.LittleEndian.Uint16(buf)) * 8 * 1024
	flags := buf[2]

	return dumpSize, flags, nil
}
