package snesrom

import (
	"bytes"
	"errors"
	"testing"
)

func TestClassifyLayout(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want Layout
	}{
		{name: "LoROM", code: 0x20, want: LayoutLoROM},
		{name: "HiROM", code: 0x21, want: LayoutHiROM},
		{name: "FastROM", code: 0x10, want: LayoutFastROM},
		{name: "未知のコード値", code: 0x42, want: LayoutUnknown},
		{name: "ゼロ", code: 0x00, want: LayoutUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLayout(tt.code); got != tt.want {
				t.Errorf("classifyLayout(0x%02x) = %s; want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyCartridgeType(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want CartridgeType
	}{
		{name: "ROMのみ", code: 0x00, want: CartridgeRomOnly},
		{name: "セーブRAM付き", code: 0x02, want: CartridgeSaveRam},
		{name: "未知のコード値", code: 0x05, want: CartridgeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyCartridgeType(tt.code); got != tt.want {
				t.Errorf("classifyCartridgeType(0x%02x) = %s; want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "大文字のタイトル", input: "CHRONO TRIGGER       ", want: "Chrono Trigger"},
		{name: "小文字のタイトル", input: "zelda                ", want: "Zelda"},
		{name: "前後に空白がある場合", input: "  SPACED OUT   ", want: "Spaced Out"},
		{name: "空白のみの場合", input: "                     ", want: ""},
		{name: "数字を含む場合", input: "FINAL FANTASY 6      ", want: "Final Fantasy 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTitle([]byte(tt.input)); got != tt.want {
				t.Errorf("normalizeTitle(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRomInfo(t *testing.T) {
	tests := []struct {
		name string
		rom  Rom
		want string
	}{
		{
			name: "ROMのみのカートリッジ",
			rom:  Rom{Layout: LayoutHiROM, CartridgeType: CartridgeRomOnly, RomSize: 16},
			want: "16kB HiROM, RomOnly",
		},
		{
			name: "セーブRAM付きのカートリッジ",
			rom:  Rom{Layout: LayoutLoROM, CartridgeType: CartridgeSaveRam, RomSize: 512, RamSize: 8},
			want: "512kB LoROM, with 8kB SaveRam",
		},
		{
			name: "未知のレイアウトと種別",
			rom:  Rom{Layout: LayoutUnknown, CartridgeType: CartridgeUnknown, RomSize: 32},
			want: "32kB Unknown, Unknown",
		},
		{
			name: "FastROM",
			rom:  Rom{Layout: LayoutFastROM, CartridgeType: CartridgeRomOnly, RomSize: 64},
			want: "64kB FastROM, RomOnly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rom.Info(); got != tt.want {
				t.Errorf("Info() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeHeader(t *testing.T) {
	valid := make([]byte, headerParsedSize)
	copy(valid, "TEST TITLE           ")
	valid[21] = 0x21
	valid[22] = 0x02
	valid[23] = 4
	valid[24] = 3

	t.Run("正常なヘッダーの場合", func(t *testing.T) {
		fields, err := decodeHeader(bytes.NewReader(valid), 0)
		if err != nil {
			t.Fatalf("decodeHeader failed: %v", err)
		}
		if string(fields.title[:]) != "TEST TITLE           " {
			t.Errorf("Unexpected title field: %q", fields.title)
		}
		if fields.layout != 0x21 || fields.cartridgeType != 0x02 {
			t.Errorf("Unexpected codes: layout=0x%02x type=0x%02x", fields.layout, fields.cartridgeType)
		}
		if fields.romSize != 4 || fields.ramSize != 3 {
			t.Errorf("Unexpected sizes: rom=%d ram=%d", fields.romSize, fields.ramSize)
		}
	})

	t.Run("読み取りが不足する場合", func(t *testing.T) {
		_, err := decodeHeader(bytes.NewReader(valid[:10]), 0)
		if !errors.Is(err, errInvalidHeader) {
			t.Errorf("Expected errInvalidHeader, got %v", err)
		}
	})

	t.Run("オフセットがファイル末尾を越える場合", func(t *testing.T) {
		_, err := decodeHeader(bytes.NewReader(valid), 100)
		if !errors.Is(err, errInvalidHeader) {
			t.Errorf("Expected errInvalidHeader, got %v", err)
		}
	})

	t.Run("タイトル欄がASCIIではない場合", func(t *testing.T) {
		garbage := bytes.Repeat([]byte{0xff}, headerParsedSize)
		_, err := decodeHeader(bytes.NewReader(garbage), 0)
		if !errors.Is(err, errInvalidHeader) {
			t.Errorf("Expected errInvalidHeader, got %v", err)
		}
	})
}

func TestParseSMCHeader(t *testing.T) {
	data := make([]byte, SMCHeaderSize)
	data[0] = 0x00
	data[1] = 0x01 // ダンプサイズ = 0x0100 * 8kB
	data[2] = SMCSaveRam8KB

	dumpSize, flags, err := parseSMCHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parseSMCHeader failed: %v", err)
	}
	if dumpSize != 0x0100*8*1024 {
		t.Errorf("Expected dump size %d, got %d", 0x0100*8*1024, dumpSize)
	}
	if flags != SMCSaveRam8KB {
		t.Errorf("Expected flags 0x%02x, got 0x%02x", SMCSaveRam8KB, flags)
	}
}
