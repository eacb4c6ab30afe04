package mocks

import (
	"errors"

	"github.com/natulte/go-dinocity/pkg/snesrom"
)

// MockParser はテスト用のRomParserモック
type MockParser struct {
	Roms   map[string]*snesrom.Rom
	Errors map[string]error
	Calls  []string
}

// NewMockParser は新しいMockParserを作成します
func NewMockParser() *MockParser {
	return &MockParser{
		Roms:   make(map[string]*snesrom.Rom),
		Errors: make(map[string]error),
	}
}

// Parse は設定済みの結果を返します
func (p *MockParser) Parse(path string) (*snesrom.Rom, error) {
	p.Calls = append(p.Calls, path)
	if err, ok := p.Errors[path]; ok {
		return nil, err
	}
	if rom, ok := p.Roms[path]; ok {
		return rom, nil
	}
	return nil, errors.New("rom not configured")
}
