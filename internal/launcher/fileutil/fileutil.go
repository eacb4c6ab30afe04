// Package fileutil はROMファイルとカバーアートの検索を行います
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/natulte/go-dinocity/internal/launcher/interfaces"
)

var (
	// RomFilePattern は.smcと.sfcファイルのパターン
	RomFilePattern = regexp.MustCompile(`(?i)\.(smc|sfc)$`)
)

// MissingCoverName はカバーアートが無い場合に使用する画像のファイル名
const MissingCoverName = "_missing.png"

// GameName はROMファイルのパスから表示名（拡張子を除いたファイル名）を
// 生成します
func GameName(romPath string) string {
	baseName := filepath.Base(romPath)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}

// CoverPath はゲームのカバーアート画像のパスを返します。
// <name>.jpg が存在しない場合はプレースホルダー画像のパスを返します。
func CoverPath(fs interfaces.FileSystem, coverDir, name string) string {
	path := filepath.Join(coverDir, name+".jpg")
	if !fs.FileExists(path) {
		return filepath.Join(coverDir, MissingCoverName)
	}
	return path
}

// RomFileFinder はROMファイルの検索を行います
type RomFileFinder struct {
	fs interfaces.FileSystem
}

// NewRomFileFinder は新しいRomFileFinderを作成します
func NewRomFileFinder(fs interfaces.FileSystem) *RomFileFinder {
	return &RomFileFinder{fs: fs}
}

// FindAll は指定されたディレクトリ内のROMファイル（.smc/.sfc）を
// 名前順に返します
func (f *RomFileFinder) FindAll(dir string) ([]string, error) {
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	var romFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if RomFilePattern.MatchString(entry.Name()) {
			romFiles = append(romFiles, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(romFiles)
	return romFiles, nil
}
