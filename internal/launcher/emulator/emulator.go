// Package emulator は外部エミュレーターの起動を行います
package emulator

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/natulte/go-dinocity/internal/launcher/interfaces"
)

// Runner は設定されたコマンドでエミュレーターを起動します
type Runner struct {
	command string
	logger  interfaces.Logger
}

// NewRunner は新しいRunnerを作成します
func NewRunner(command string, logger interfaces.Logger) *Runner {
	return &Runner{
		command: command,
		logger:  logger,
	}
}

// Run はエミュレーターでROMを起動し、終了を待ちます。
// エミュレーターの標準出力と標準エラー出力はそのまま引き継がれます。
func (r *Runner) Run(ctx context.Context, romPath string) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.logger.Printf("エミュレーター %s で %s を起動します\n", r.command, romPath)

	cmd := exec.CommandContext(ctx, r.command, romPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEmulatorFailed, r.command, err)
	}

	return nil
}
