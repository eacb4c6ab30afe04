package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/natulte/go-dinocity/internal/launcher/config"
	"github.com/natulte/go-dinocity/internal/launcher/mocks"
)

func TestApp_Run_ContextCancellation(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() (context.Context, context.CancelFunc)
		expectedError error
	}{
		{
			name: "即座にキャンセルされたコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // 即座にキャンセル
				return ctx, cancel
			},
			expectedError: context.Canceled,
		},
		{
			name: "タイムアウトコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
				time.Sleep(10 * time.Millisecond) // タイムアウトを確実に発生させる
				return ctx, cancel
			},
			expectedError: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.setupContext()
			defer cancel()

			fs := mocks.NewMockFileSystem()
			fs.Files[filepath.Join("roms", "alpha.smc")] = []byte("rom")

			parser := mocks.NewMockParser()
			parser.Roms[filepath.Join("roms", "alpha.smc")] = testRom("Alpha")

			cfg := &config.Config{RomDir: "roms", CoverDir: "covers"}
			app := NewWithOptions(cfg, Options{
				FileSystem: fs,
				Parser:     parser,
				Runner:     mocks.NewMockRunner(),
			})

			err := app.Run(ctx)
			if !errors.Is(err, tt.expectedError) {
				t.Errorf("Expected %v, got %v", tt.expectedError, err)
			}
		})
	}
}
