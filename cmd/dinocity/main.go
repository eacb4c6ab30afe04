package main

import (
	"context"
	"fmt"
	"os"

	"github.com/natulte/go-dinocity/internal/launcher/app"
	"github.com/natulte/go-dinocity/internal/launcher/config"
)

func main() {
	// コマンドライン引数の解析
	cfg := config.ParseFlags()

	// バージョン表示の処理
	config.HandleVersion(cfg.ShowVersion)

	// アプリケーションの実行
	application := app.New(cfg)
	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}
