package mocks

import "context"

// MockRunner はテスト用のRunnerモック
type MockRunner struct {
	Calls []string
	Error error
}

// NewMockRunner は新しいMockRunnerを作成します
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run は起動されたROMのパスを記録します
func (r *MockRunner) Run(ctx context.Context, romPath string) error {
	r.Calls = append(r.Calls, romPath)
	return r.Error
}
